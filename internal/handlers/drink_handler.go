package handlers

import (
	"net/http"

	"niddle_backend/internal/models"
	"niddle_backend/internal/services"
	"niddle_backend/internal/services/dto"
	"niddle_backend/internal/storage"
	"niddle_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DrinkHandler struct {
	BaseHandler
	drinks  services.DrinkService
	storage storage.Storage
}

func NewDrinkHandler(base BaseHandler, drinks services.DrinkService, store storage.Storage) *DrinkHandler {
	return &DrinkHandler{BaseHandler: base, drinks: drinks, storage: store}
}

func (h *DrinkHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	d := public.Group("/drinks")
	d.GET("/get_drink_by_id/:drink_id", h.GetDrink)
	d.GET("/get_all_drinks", h.listByKind(""))
	d.GET("/get_all_carbonated_drinks", h.listByKind(models.DrinkKindCarbonated))
	d.GET("/get_all_non_carbonated_drinks", h.listByKind(models.DrinkKindNonCarbonated))
	d.GET("/get_all_alcoholic_drinks", h.listByKind(models.DrinkKindAlcoholic))
	d.GET("/get_all_non_alcoholic_drinks", h.listByKind(models.DrinkKindNonAlcoholic))
	d.GET("/get_drink_image/:drink_id", h.GetDrinkImage)

	da := authed.Group("/drinks")
	da.POST("/add_drink/:restaurant_id", h.AddDrink)
	da.PUT("/update_drink/:drink_id", h.UpdateDrink)
	da.PUT("/update_image/:drink_id", h.UpdateDrinkImage)
	da.DELETE("/delete_drink/:drink_id", h.DeleteDrink)
}

func (h *DrinkHandler) AddDrink(c *gin.Context) {
	restaurantID, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	var req dto.CreateDrinkRequest
	if !h.BindForm(c, &req) {
		return
	}

	image, ok := formFile(c, "image")
	if !ok {
		return
	}

	drink, err := h.drinks.Create(c.Request.Context(), h.GetDB(c), restaurantID, &req, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, drink)
}

func (h *DrinkHandler) UpdateDrink(c *gin.Context) {
	id, ok := h.ParamUint(c, "drink_id")
	if !ok {
		return
	}

	var req dto.UpdateDrinkRequest
	if !h.BindForm(c, &req) {
		return
	}

	drink, err := h.drinks.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, drink)
}

func (h *DrinkHandler) UpdateDrinkImage(c *gin.Context) {
	id, ok := h.ParamUint(c, "drink_id")
	if !ok {
		return
	}

	image, ok := requireFormFile(c, "image")
	if !ok {
		return
	}

	drink, err := h.drinks.UpdateImage(c.Request.Context(), h.GetDB(c), id, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, drink)
}

func (h *DrinkHandler) DeleteDrink(c *gin.Context) {
	id, ok := h.ParamUint(c, "drink_id")
	if !ok {
		return
	}

	if err := h.drinks.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Drink deleted"})
}

func (h *DrinkHandler) GetDrink(c *gin.Context) {
	id, ok := h.ParamUint(c, "drink_id")
	if !ok {
		return
	}

	drink, err := h.drinks.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, drink)
}

// listByKind builds a listing handler bound to one drink kind; the empty
// kind lists everything.
func (h *DrinkHandler) listByKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := h.Pagination(c)
		resp, err := h.drinks.List(c.Request.Context(), h.GetDB(c), 0, kind, page, pageSize)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func (h *DrinkHandler) GetDrinkImage(c *gin.Context) {
	id, ok := h.ParamUint(c, "drink_id")
	if !ok {
		return
	}

	drink, err := h.drinks.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.ServeStoredFile(c, h.storage, drink.Image)
}
