package models

// Order is part of the persistent schema but has no HTTP surface yet.
type Order struct {
	ID        uint   `gorm:"primaryKey" json:"order_id"`
	AddressTo string `gorm:"size:255;not null" json:"address_to"`
	UserID    uint   `gorm:"index" json:"user_id"`
	FoodID    uint   `gorm:"index" json:"food_id"`
	DrinkID   uint   `gorm:"index" json:"drink_id"`
}
