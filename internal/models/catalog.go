package models

// Restaurant is a catalog entity owned by no user.
type Restaurant struct {
	ID              uint    `gorm:"primaryKey" json:"restaurant_id"`
	Name            string  `gorm:"size:255;not null" json:"restaurant_name"`
	Kind            string  `gorm:"size:255;not null" json:"kind"`
	Description     string  `gorm:"size:255;not null" json:"description"`
	Email           string  `gorm:"size:255;uniqueIndex;not null" json:"restaurant_email"`
	PhoneNumber     string  `gorm:"size:255;not null" json:"phone_number"`
	Address         string  `gorm:"size:255;not null" json:"address"`
	Logo            string  `gorm:"size:255;not null" json:"logo"`
	BackgroundImage string  `gorm:"size:255;not null" json:"background_image"`
	Rating          float64 `gorm:"not null" json:"rating"`

	WorkTimes []WorkTime `gorm:"foreignKey:RestaurantID" json:"work_times,omitempty"`
}

// WorkTime is one opening-hours row for a restaurant.
type WorkTime struct {
	ID           uint   `gorm:"primaryKey" json:"work_time_id"`
	DayOfWeek    string `gorm:"size:255;not null" json:"day_of_week"`
	OpeningTime  string `gorm:"size:255;not null" json:"opening_time"`
	ClosingTime  string `gorm:"size:255;not null" json:"closing_time"`
	RestaurantID uint   `gorm:"index;not null" json:"restaurant_id"`
}

// Food is a menu item prepared by a restaurant.
type Food struct {
	ID           uint    `gorm:"primaryKey" json:"food_id"`
	Kind         string  `gorm:"size:255;not null" json:"kind"`
	Price        int     `gorm:"not null" json:"price"`
	CookTime     int     `gorm:"not null" json:"cook_time"`
	Image        string  `gorm:"size:255;not null" json:"image"`
	Name         string  `gorm:"size:255;not null" json:"food_name"`
	Description  string  `gorm:"size:255;not null" json:"description"`
	Rating       float64 `gorm:"not null" json:"rating"`
	RestaurantID uint    `gorm:"index" json:"restaurant_id"`
}

// Drink kinds used by the filtered listings.
const (
	DrinkKindCarbonated    = "carbonated"
	DrinkKindNonCarbonated = "non_carbonated"
	DrinkKindAlcoholic     = "alcoholic"
	DrinkKindNonAlcoholic  = "non_alcoholic"
)

// Drink is a beverage menu item.
type Drink struct {
	ID           uint    `gorm:"primaryKey" json:"drink_id"`
	Kind         string  `gorm:"size:255;not null" json:"kind"`
	Price        int     `gorm:"not null" json:"price"`
	Image        string  `gorm:"size:255;not null" json:"image"`
	Name         string  `gorm:"size:255;not null" json:"drink_name"`
	Description  string  `gorm:"size:255;not null" json:"description"`
	Rating       float64 `gorm:"not null" json:"rating"`
	RestaurantID uint    `gorm:"index" json:"restaurant_id"`
}
