package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"niddle_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteFoodFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB)
	restaurant := helpers.CreateRestaurant(t, ts.DB, "Testaurant")
	food := helpers.CreateFood(t, ts.DB, restaurant.ID, "Plov", "main")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/favorite_foods/add_favorite_food", token,
		map[string]interface{}{"food_id": food.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// Re-adding is benign, not a conflict.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/favorite_foods/add_favorite_food", token,
		map[string]interface{}{"food_id": food.ID})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Already on your list")

	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/v1/favorite_foods/get_all_favorite_foods_by_user_id/%d", user.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing struct {
		Foods []struct {
			ID uint `json:"food_id"`
		} `json:"foods"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Foods, 1)
	assert.Equal(t, food.ID, listing.Foods[0].ID)

	res, _ = ts.SendRequest(t, http.MethodDelete,
		fmt.Sprintf("/api/v1/favorite_foods/delete_favorite_food/%d", food.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/v1/favorite_foods/get_all_favorite_foods_by_user_id/%d", user.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Empty(t, listing.Foods)
}

func TestFavoriteListingsAreOwnerOnly(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB)
	other := helpers.CreateUser(t, ts.DB, "Other User", "other@test.com", "password123")

	res, _ := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/v1/favorite_foods/get_all_favorite_foods_by_user_id/%d", other.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/v1/favorite_restaurants/get_all_favorite_restaurants_by_user_id/%d", other.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestFavoriteRestaurantFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB)
	restaurant := helpers.CreateRestaurant(t, ts.DB, "Testaurant")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/favorite_restaurants/add_favorite_restaurant", token,
		map[string]interface{}{"restaurant_id": restaurant.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/v1/favorite_restaurants/get_all_favorite_restaurants_by_user_id/%d", user.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing struct {
		Restaurants []struct {
			ID uint `json:"restaurant_id"`
		} `json:"restaurants"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Restaurants, 1)
	assert.Equal(t, restaurant.ID, listing.Restaurants[0].ID)
}
