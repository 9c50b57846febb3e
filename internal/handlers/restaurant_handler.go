package handlers

import (
	"net/http"

	"niddle_backend/internal/services"
	"niddle_backend/internal/services/dto"
	"niddle_backend/internal/storage"
	"niddle_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	BaseHandler
	restaurants services.RestaurantService
	foods       services.FoodService
	storage     storage.Storage
}

func NewRestaurantHandler(base BaseHandler, restaurants services.RestaurantService, foods services.FoodService, store storage.Storage) *RestaurantHandler {
	return &RestaurantHandler{BaseHandler: base, restaurants: restaurants, foods: foods, storage: store}
}

func (h *RestaurantHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	r := public.Group("/restaurants")
	r.GET("/get_restaurant_by_id/:restaurant_id", h.GetRestaurant)
	r.GET("/get_all_restaurants", h.GetAllRestaurants)
	r.GET("/get_logo/:restaurant_id", h.GetLogo)
	r.GET("/get_background/:restaurant_id", h.GetBackground)
	r.GET("/get_all_foods_by_kind/:restaurant_id", h.GetFoodsByKind)

	ra := authed.Group("/restaurants")
	ra.POST("/add_restaurant", h.AddRestaurant)
	ra.PUT("/update_restaurant/:restaurant_id", h.UpdateRestaurant)
	ra.PUT("/update_logo/:restaurant_id", h.UpdateLogo)
	ra.PUT("/update_background/:restaurant_id", h.UpdateBackground)
	ra.POST("/add_work_time/:restaurant_id", h.AddWorkTime)
	ra.DELETE("/delete_restaurant/:restaurant_id", h.DeleteRestaurant)
}

func (h *RestaurantHandler) AddRestaurant(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if !h.BindForm(c, &req) {
		return
	}

	logo, ok := formFile(c, "logo")
	if !ok {
		return
	}
	background, ok := formFile(c, "background_image")
	if !ok {
		return
	}

	restaurant, err := h.restaurants.Create(c.Request.Context(), h.GetDB(c), &req, logo, background)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	var req dto.UpdateRestaurantRequest
	if !h.BindForm(c, &req) {
		return
	}

	restaurant, err := h.restaurants.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) UpdateLogo(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	image, ok := requireFormFile(c, "logo")
	if !ok {
		return
	}

	restaurant, err := h.restaurants.UpdateLogo(c.Request.Context(), h.GetDB(c), id, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) UpdateBackground(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	image, ok := requireFormFile(c, "background_image")
	if !ok {
		return
	}

	restaurant, err := h.restaurants.UpdateBackground(c.Request.Context(), h.GetDB(c), id, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) AddWorkTime(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	var req dto.WorkTimeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	workTime, err := h.restaurants.AddWorkTime(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workTime)
}

func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	if err := h.restaurants.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Restaurant deleted"})
}

func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	restaurant, err := h.restaurants.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) GetAllRestaurants(c *gin.Context) {
	page, pageSize := h.Pagination(c)
	resp, err := h.restaurants.List(c.Request.Context(), h.GetDB(c), page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RestaurantHandler) GetLogo(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	restaurant, err := h.restaurants.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.ServeStoredFile(c, h.storage, restaurant.Logo)
}

func (h *RestaurantHandler) GetBackground(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	restaurant, err := h.restaurants.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.ServeStoredFile(c, h.storage, restaurant.BackgroundImage)
}

// GetFoodsByKind lists one restaurant's menu filtered by the kind query
// parameter.
func (h *RestaurantHandler) GetFoodsByKind(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	var query dto.FoodListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	resp, err := h.foods.List(c.Request.Context(), h.GetDB(c), id, query.Kind, query.Page, query.PageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
