package dto

import "niddle_backend/internal/models"

type AddCardRequest struct {
	Number    string `json:"card_number" binding:"required,min=13,max=19"`
	ValidThru string `json:"card_valid_thru" binding:"required"`
	Name      string `json:"card_name" binding:"required"`
	CVV       string `json:"card_cvv" binding:"required,min=3,max=4"`
	Main      bool   `json:"main"`
}

// CardResponse omits the CVV; it is stored but never echoed back.
type CardResponse struct {
	ID        uint   `json:"card_id"`
	Number    string `json:"card_number"`
	ValidThru string `json:"card_valid_thru"`
	Name      string `json:"card_name"`
	Main      bool   `json:"main"`
}

func NewCardResponse(card *models.Card) CardResponse {
	return CardResponse{
		ID:        card.ID,
		Number:    card.Number,
		ValidThru: card.ValidThru,
		Name:      card.Name,
		Main:      card.Main,
	}
}

type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}
