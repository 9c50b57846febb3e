package dto

import "niddle_backend/internal/models"

// Restaurant create/update bodies arrive as multipart form data so the
// logo and background images can travel with the fields.
type CreateRestaurantRequest struct {
	Name        string  `form:"restaurant_name" binding:"required"`
	Kind        string  `form:"kind" binding:"required"`
	Description string  `form:"description"`
	Email       string  `form:"restaurant_email" binding:"required,email"`
	PhoneNumber string  `form:"phone_number" binding:"required"`
	Address     string  `form:"address" binding:"required"`
	Rating      float64 `form:"rating" binding:"omitempty,min=0,max=5"`
}

type UpdateRestaurantRequest struct {
	Name        *string  `form:"restaurant_name"`
	Kind        *string  `form:"kind"`
	Description *string  `form:"description"`
	Email       *string  `form:"restaurant_email" binding:"omitempty,email"`
	PhoneNumber *string  `form:"phone_number"`
	Address     *string  `form:"address"`
	Rating      *float64 `form:"rating" binding:"omitempty,min=0,max=5"`
}

type WorkTimeRequest struct {
	DayOfWeek   string `json:"day_of_week" binding:"required"`
	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`
}

type RestaurantListResponse struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Meta        PageMeta            `json:"meta"`
}

// Food create/update bodies are multipart; the owning restaurant comes
// from the route path.
type CreateFoodRequest struct {
	Name        string  `form:"food_name" binding:"required"`
	Kind        string  `form:"kind" binding:"required"`
	Price       int     `form:"price" binding:"required,min=0"`
	CookTime    int     `form:"cook_time" binding:"omitempty,min=0"`
	Description string  `form:"description"`
	Rating      float64 `form:"rating" binding:"omitempty,min=0,max=5"`
}

type UpdateFoodRequest struct {
	Name        *string  `form:"food_name"`
	Kind        *string  `form:"kind"`
	Price       *int     `form:"price" binding:"omitempty,min=0"`
	CookTime    *int     `form:"cook_time" binding:"omitempty,min=0"`
	Description *string  `form:"description"`
	Rating      *float64 `form:"rating" binding:"omitempty,min=0,max=5"`
}

// FoodListQuery adds the optional kind filter on top of paging.
type FoodListQuery struct {
	PageQuery
	Kind string `form:"kind"`
}

type FoodListResponse struct {
	Foods []models.Food `json:"foods"`
	Meta  PageMeta      `json:"meta"`
}

type CreateDrinkRequest struct {
	Name        string  `form:"drink_name" binding:"required"`
	Kind        string  `form:"kind" binding:"required,oneof=carbonated non_carbonated alcoholic non_alcoholic"`
	Price       int     `form:"price" binding:"required,min=0"`
	Description string  `form:"description"`
	Rating      float64 `form:"rating" binding:"omitempty,min=0,max=5"`
}

type UpdateDrinkRequest struct {
	Name        *string  `form:"drink_name"`
	Kind        *string  `form:"kind" binding:"omitempty,oneof=carbonated non_carbonated alcoholic non_alcoholic"`
	Price       *int     `form:"price" binding:"omitempty,min=0"`
	Description *string  `form:"description"`
	Rating      *float64 `form:"rating" binding:"omitempty,min=0,max=5"`
}

type DrinkListResponse struct {
	Drinks []models.Drink `json:"drinks"`
	Meta   PageMeta       `json:"meta"`
}
