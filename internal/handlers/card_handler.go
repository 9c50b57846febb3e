package handlers

import (
	"net/http"

	"niddle_backend/internal/services"
	"niddle_backend/internal/services/dto"
	"niddle_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	BaseHandler
	cards services.CardService
}

func NewCardHandler(base BaseHandler, cards services.CardService) *CardHandler {
	return &CardHandler{BaseHandler: base, cards: cards}
}

// RegisterRoutes mounts the card endpoints; all are owner-scoped to the
// authenticated caller.
func (h *CardHandler) RegisterRoutes(authed *gin.RouterGroup) {
	cards := authed.Group("/cards")
	cards.POST("/add-card", h.AddCard)
	cards.DELETE("/delete-card-by-id/:card_id", h.DeleteCard)
	cards.GET("/get-card-by-id/:card_id", h.GetCard)
	cards.GET("/get-all-cards-by-user", h.GetAllCards)
	cards.PUT("/change-main-card/:card_id", h.ChangeMainCard)
}

func (h *CardHandler) AddCard(c *gin.Context) {
	var req dto.AddCardRequest
	if !h.BindJSON(c, &req) {
		return
	}

	card, err := h.cards.Add(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCardResponse(card))
}

func (h *CardHandler) DeleteCard(c *gin.Context) {
	id, ok := h.ParamUint(c, "card_id")
	if !ok {
		return
	}

	if err := h.cards.Delete(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Card deleted"})
}

func (h *CardHandler) GetCard(c *gin.Context) {
	id, ok := h.ParamUint(c, "card_id")
	if !ok {
		return
	}

	card, err := h.cards.Get(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCardResponse(card))
}

func (h *CardHandler) GetAllCards(c *gin.Context) {
	cards, err := h.cards.List(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	resp := dto.CardListResponse{Cards: make([]dto.CardResponse, 0, len(cards))}
	for i := range cards {
		resp.Cards = append(resp.Cards, dto.NewCardResponse(&cards[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CardHandler) ChangeMainCard(c *gin.Context) {
	id, ok := h.ParamUint(c, "card_id")
	if !ok {
		return
	}

	if err := h.cards.SetMain(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Main card updated"})
}
