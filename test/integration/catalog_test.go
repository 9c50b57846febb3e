package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"niddle_backend/internal/models"
	"niddle_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRestaurantWithImages(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB)

	fields := map[string]string{
		"restaurant_name":  "Khinkalnaya",
		"kind":             "georgian",
		"description":      "khinkali and more",
		"restaurant_email": "khinkalnaya@test.com",
		"phone_number":     "+77009998877",
		"address":          "3 Food Street",
		"rating":           "4.8",
	}
	files := map[string][]byte{
		"logo":             []byte("logo-bytes"),
		"background_image": []byte("background-bytes"),
	}

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/restaurants/add_restaurant", token, fields, files)
	require.Equal(t, http.StatusCreated, res.StatusCode, "add restaurant: %s", body)

	var created struct {
		ID   uint   `json:"restaurant_id"`
		Logo string `json:"logo"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotZero(t, created.ID)
	assert.Contains(t, created.Logo, "logo_image_")

	// The stored files come back through the file endpoints.
	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/restaurants/get_logo/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "logo-bytes", body)

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/restaurants/get_background/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "background-bytes", body)
}

func TestAddRestaurantDuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB)

	fields := map[string]string{
		"restaurant_name":  "Khinkalnaya",
		"kind":             "georgian",
		"restaurant_email": "khinkalnaya@test.com",
		"phone_number":     "+77009998877",
		"address":          "3 Food Street",
	}

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/restaurants/add_restaurant", token, fields, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, "add restaurant: %s", body)

	fields["restaurant_name"] = "Another Khinkalnaya"
	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/restaurants/add_restaurant", token, fields, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, "reused email is a conflict: %s", body)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Restaurant{}).Where("email = ?", "khinkalnaya@test.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFoodCrudAndImage(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB)
	restaurant := helpers.CreateRestaurant(t, ts.DB, "Testaurant")

	fields := map[string]string{
		"food_name":   "Lagman",
		"kind":        "main",
		"price":       "2200",
		"cook_time":   "25",
		"description": "hand pulled noodles",
		"rating":      "4.6",
	}
	files := map[string][]byte{"image": []byte("food-image-bytes")}

	res, body := ts.SendMultipart(t, http.MethodPost, fmt.Sprintf("/api/v1/food/add_food/%d", restaurant.ID), token, fields, files)
	require.Equal(t, http.StatusCreated, res.StatusCode, "add food: %s", body)

	var created struct {
		ID uint `json:"food_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/food/get_food_image/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "food-image-bytes", body)

	// Replacing the image swaps the stored file.
	res, _ = ts.SendMultipart(t, http.MethodPut, fmt.Sprintf("/api/v1/food/update_image/%d", created.ID), token,
		nil, map[string][]byte{"image": []byte("new-image-bytes")})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/food/get_food_image/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "new-image-bytes", body)

	res, _ = ts.SendMultipart(t, http.MethodPut, fmt.Sprintf("/api/v1/food/update_food/%d", created.ID), token,
		map[string]string{"price": "2500"}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/food/delete_food/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/food/get_food_by_id/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestFoodListingPagination(t *testing.T) {
	ts := helpers.NewTestServer(t)
	restaurant := helpers.CreateRestaurant(t, ts.DB, "Testaurant")

	for i := 0; i < 25; i++ {
		helpers.CreateFood(t, ts.DB, restaurant.ID, fmt.Sprintf("Dish %02d", i), "main")
	}

	var listing struct {
		Foods []struct {
			ID uint `json:"food_id"`
		} `json:"foods"`
		Meta struct {
			Page       int   `json:"page"`
			TotalPages int   `json:"total_pages"`
			TotalCount int64 `json:"total_count"`
		} `json:"meta"`
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/food/get_all_foods?page=2", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Foods, 5)
	assert.Equal(t, 2, listing.Meta.Page)
	assert.Equal(t, 2, listing.Meta.TotalPages)
	assert.Equal(t, int64(25), listing.Meta.TotalCount)

	// Out-of-range pages clamp to the last page.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/food/get_all_foods?page=99", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Foods, 5)
	assert.Equal(t, 2, listing.Meta.Page)
}

func TestFoodListingByKind(t *testing.T) {
	ts := helpers.NewTestServer(t)
	restaurant := helpers.CreateRestaurant(t, ts.DB, "Testaurant")

	helpers.CreateFood(t, ts.DB, restaurant.ID, "Plov", "main")
	helpers.CreateFood(t, ts.DB, restaurant.ID, "Baursak", "dessert")
	helpers.CreateFood(t, ts.DB, restaurant.ID, "Manty", "main")

	var listing struct {
		Foods []struct {
			Kind string `json:"kind"`
		} `json:"foods"`
		Meta struct {
			TotalCount int64 `json:"total_count"`
		} `json:"meta"`
	}

	res, body := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/v1/restaurants/get_all_foods_by_kind/%d?kind=main", restaurant.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Foods, 2)
	for _, food := range listing.Foods {
		assert.Equal(t, "main", food.Kind)
	}
	assert.Equal(t, int64(2), listing.Meta.TotalCount)
}

func TestDrinkKindListings(t *testing.T) {
	ts := helpers.NewTestServer(t)
	restaurant := helpers.CreateRestaurant(t, ts.DB, "Testaurant")

	helpers.CreateDrink(t, ts.DB, restaurant.ID, "Cola", models.DrinkKindCarbonated)
	helpers.CreateDrink(t, ts.DB, restaurant.ID, "Kompot", models.DrinkKindNonCarbonated)
	helpers.CreateDrink(t, ts.DB, restaurant.ID, "Beer", models.DrinkKindAlcoholic)

	var listing struct {
		Drinks []struct {
			Name string `json:"drink_name"`
			Kind string `json:"kind"`
		} `json:"drinks"`
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/drinks/get_all_drinks", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Drinks, 3)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/drinks/get_all_carbonated_drinks", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Drinks, 1)
	assert.Equal(t, "Cola", listing.Drinks[0].Name)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/drinks/get_all_alcoholic_drinks", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Drinks, 1)
	assert.Equal(t, "Beer", listing.Drinks[0].Name)
}

func TestEmptyListingReturnsOK(t *testing.T) {
	ts := helpers.NewTestServer(t)

	var listing struct {
		Restaurants []json.RawMessage `json:"restaurants"`
		Meta        struct {
			Page       int `json:"page"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/restaurants/get_all_restaurants", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Empty(t, listing.Restaurants)
	assert.Equal(t, 1, listing.Meta.Page)
	assert.Equal(t, 0, listing.Meta.TotalPages)
}
