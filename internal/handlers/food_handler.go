package handlers

import (
	"net/http"

	"niddle_backend/internal/services"
	"niddle_backend/internal/services/dto"
	"niddle_backend/internal/storage"
	"niddle_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	BaseHandler
	foods   services.FoodService
	storage storage.Storage
}

func NewFoodHandler(base BaseHandler, foods services.FoodService, store storage.Storage) *FoodHandler {
	return &FoodHandler{BaseHandler: base, foods: foods, storage: store}
}

func (h *FoodHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	f := public.Group("/food")
	f.GET("/get_food_by_id/:food_id", h.GetFood)
	f.GET("/get_all_foods", h.GetAllFoods)
	f.GET("/get_food_image/:food_id", h.GetFoodImage)

	fa := authed.Group("/food")
	fa.POST("/add_food/:restaurant_id", h.AddFood)
	fa.PUT("/update_food/:food_id", h.UpdateFood)
	fa.PUT("/update_image/:food_id", h.UpdateFoodImage)
	fa.DELETE("/delete_food/:food_id", h.DeleteFood)
}

func (h *FoodHandler) AddFood(c *gin.Context) {
	restaurantID, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	var req dto.CreateFoodRequest
	if !h.BindForm(c, &req) {
		return
	}

	image, ok := formFile(c, "image")
	if !ok {
		return
	}

	food, err := h.foods.Create(c.Request.Context(), h.GetDB(c), restaurantID, &req, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, food)
}

func (h *FoodHandler) UpdateFood(c *gin.Context) {
	id, ok := h.ParamUint(c, "food_id")
	if !ok {
		return
	}

	var req dto.UpdateFoodRequest
	if !h.BindForm(c, &req) {
		return
	}

	food, err := h.foods.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) UpdateFoodImage(c *gin.Context) {
	id, ok := h.ParamUint(c, "food_id")
	if !ok {
		return
	}

	image, ok := requireFormFile(c, "image")
	if !ok {
		return
	}

	food, err := h.foods.UpdateImage(c.Request.Context(), h.GetDB(c), id, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id, ok := h.ParamUint(c, "food_id")
	if !ok {
		return
	}

	if err := h.foods.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Food deleted"})
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, ok := h.ParamUint(c, "food_id")
	if !ok {
		return
	}

	food, err := h.foods.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) GetAllFoods(c *gin.Context) {
	var query dto.PageQuery
	if !h.BindQuery(c, &query) {
		return
	}

	resp, err := h.foods.List(c.Request.Context(), h.GetDB(c), 0, "", query.Page, query.PageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FoodHandler) GetFoodImage(c *gin.Context) {
	id, ok := h.ParamUint(c, "food_id")
	if !ok {
		return
	}

	food, err := h.foods.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.ServeStoredFile(c, h.storage, food.Image)
}
