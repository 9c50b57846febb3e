package models

// Card is a stored payment card. Main marks the card charged by default;
// at most one card per user may have it set.
type Card struct {
	ID        uint   `gorm:"primaryKey" json:"card_id"`
	Number    string `gorm:"size:255;not null" json:"card_number"`
	ValidThru string `gorm:"size:255;not null" json:"card_valid_thru"`
	Name      string `gorm:"size:255;not null" json:"card_name"`
	CVV       string `gorm:"size:255;not null" json:"card_cvv"`
	Main      bool   `gorm:"not null;default:false" json:"main"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`
}
