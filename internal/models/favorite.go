package models

// FavoriteFood links a user to a food they bookmarked. Uniqueness of the
// (user, food) pair is checked at request time.
type FavoriteFood struct {
	ID     uint `gorm:"primaryKey" json:"favorite_food_id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	FoodID uint `gorm:"index;not null" json:"food_id"`

	Food Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}

// FavoriteRestaurant links a user to a bookmarked restaurant.
type FavoriteRestaurant struct {
	ID           uint `gorm:"primaryKey" json:"favorite_restaurant_id"`
	UserID       uint `gorm:"index;not null" json:"user_id"`
	RestaurantID uint `gorm:"index;not null" json:"restaurant_id"`

	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}
