package services

import (
	"niddle_backend/internal/email"
	"niddle_backend/internal/repositories"
	"niddle_backend/internal/storage"
)

// ServiceContainer wires repositories into services once at startup.
type ServiceContainer struct {
	Auth          AuthService
	PasswordReset PasswordResetService
	User          UserService
	Card          CardService
	Restaurant    RestaurantService
	Food          FoodService
	Drink         DrinkService
	Favorite      FavoriteService
}

func NewServiceContainer(store storage.Storage, mailer email.Provider) *ServiceContainer {
	users := repositories.NewUserRepository()
	resets := repositories.NewPasswordResetRepository()
	cards := repositories.NewCardRepository()
	restaurants := repositories.NewRestaurantRepository()
	foods := repositories.NewFoodRepository()
	drinks := repositories.NewDrinkRepository()
	favorites := repositories.NewFavoriteRepository()

	return &ServiceContainer{
		Auth:          NewAuthService(users, store, mailer),
		PasswordReset: NewPasswordResetService(users, resets, mailer),
		User:          NewUserService(users, store),
		Card:          NewCardService(cards),
		Restaurant:    NewRestaurantService(restaurants, store),
		Food:          NewFoodService(foods, restaurants, store),
		Drink:         NewDrinkService(drinks, restaurants, store),
		Favorite:      NewFavoriteService(favorites, foods, restaurants),
	}
}
