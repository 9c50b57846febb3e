package dto

import "niddle_backend/internal/models"

type FavoriteFoodRequest struct {
	FoodID uint `json:"food_id" binding:"required"`
}

type FavoriteRestaurantRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

type FavoriteFoodListResponse struct {
	Foods []models.Food `json:"foods"`
	Meta  PageMeta      `json:"meta"`
}

type FavoriteRestaurantListResponse struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Meta        PageMeta            `json:"meta"`
}
