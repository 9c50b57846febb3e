package handlers

import (
	"niddle_backend/internal/services"
	"niddle_backend/internal/storage"
	"niddle_backend/internal/validator"
)

// AppHandlers groups every endpoint handler for route registration.
type AppHandlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Card       *CardHandler
	Restaurant *RestaurantHandler
	Food       *FoodHandler
	Drink      *DrinkHandler
	Favorite   *FavoriteHandler
}

func NewAppHandlers(svc *services.ServiceContainer, store storage.Storage) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:       NewAuthHandler(base, svc.Auth, svc.PasswordReset, svc.User),
		User:       NewUserHandler(base, svc.User, store),
		Card:       NewCardHandler(base, svc.Card),
		Restaurant: NewRestaurantHandler(base, svc.Restaurant, svc.Food, store),
		Food:       NewFoodHandler(base, svc.Food, store),
		Drink:      NewDrinkHandler(base, svc.Drink, store),
		Favorite:   NewFavoriteHandler(base, svc.Favorite),
	}
}
