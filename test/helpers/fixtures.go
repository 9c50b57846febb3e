package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"niddle_backend/internal/auth"
	"niddle_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a verified user, hashing the given raw password.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:        name,
		Email:       email,
		Password:    hashed,
		PhoneNumber: "+77001234567",
		Status:      true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateAndLoginUser inserts a verified user and logs in through the
// API, returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	t.Helper()

	email := fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	user := CreateUser(t, db, "Test User", email, "password123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: %s", body)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateRestaurant inserts a catalog restaurant with a unique email.
func CreateRestaurant(t *testing.T, db *gorm.DB, name string) *models.Restaurant {
	t.Helper()

	restaurant := &models.Restaurant{
		Name:        name,
		Kind:        "fast_food",
		Description: "test restaurant",
		Email:       fmt.Sprintf("rest_%d@test.com", time.Now().UnixNano()),
		PhoneNumber: "+77007654321",
		Address:     "1 Test Street",
		Rating:      4.5,
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

// CreateFood inserts a menu item for a restaurant.
func CreateFood(t *testing.T, db *gorm.DB, restaurantID uint, name, kind string) *models.Food {
	t.Helper()

	food := &models.Food{
		Name:         name,
		Kind:         kind,
		Price:        1500,
		CookTime:     20,
		Description:  "test food",
		Rating:       4.0,
		RestaurantID: restaurantID,
	}
	require.NoError(t, db.Create(food).Error)
	return food
}

// CreateDrink inserts a drink for a restaurant.
func CreateDrink(t *testing.T, db *gorm.DB, restaurantID uint, name, kind string) *models.Drink {
	t.Helper()

	drink := &models.Drink{
		Name:         name,
		Kind:         kind,
		Price:        700,
		Description:  "test drink",
		Rating:       4.2,
		RestaurantID: restaurantID,
	}
	require.NoError(t, db.Create(drink).Error)
	return drink
}
