package handlers

import (
	"net/http"

	"niddle_backend/internal/services"
	"niddle_backend/internal/services/dto"
	"niddle_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	BaseHandler
	favorites services.FavoriteService
}

func NewFavoriteHandler(base BaseHandler, favorites services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{BaseHandler: base, favorites: favorites}
}

func (h *FavoriteHandler) RegisterRoutes(authed *gin.RouterGroup) {
	ff := authed.Group("/favorite_foods")
	ff.POST("/add_favorite_food", h.AddFavoriteFood)
	ff.DELETE("/delete_favorite_food/:food_id", h.DeleteFavoriteFood)
	ff.GET("/get_all_favorite_foods_by_user_id/:user_id", h.GetFavoriteFoods)

	fr := authed.Group("/favorite_restaurants")
	fr.POST("/add_favorite_restaurant", h.AddFavoriteRestaurant)
	fr.DELETE("/delete_favorite_restaurant/:restaurant_id", h.DeleteFavoriteRestaurant)
	fr.GET("/get_all_favorite_restaurants_by_user_id/:user_id", h.GetFavoriteRestaurants)
}

func (h *FavoriteHandler) AddFavoriteFood(c *gin.Context) {
	var req dto.FavoriteFoodRequest
	if !h.BindJSON(c, &req) {
		return
	}

	added, err := h.favorites.AddFood(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), req.FoodID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if !added {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Already on your list"})
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Added to favorites"})
}

func (h *FavoriteHandler) DeleteFavoriteFood(c *gin.Context) {
	id, ok := h.ParamUint(c, "food_id")
	if !ok {
		return
	}

	if err := h.favorites.RemoveFood(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Removed from favorites"})
}

func (h *FavoriteHandler) GetFavoriteFoods(c *gin.Context) {
	userID, ok := h.ParamUint(c, "user_id")
	if !ok {
		return
	}
	if userID != h.CurrentUserID(c) {
		apperrors.HandleError(c, apperrors.NewForbiddenError("You can only view your own favorites"))
		return
	}

	page, pageSize := h.Pagination(c)
	resp, err := h.favorites.ListFood(c.Request.Context(), h.GetDB(c), userID, page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FavoriteHandler) AddFavoriteRestaurant(c *gin.Context) {
	var req dto.FavoriteRestaurantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	added, err := h.favorites.AddRestaurant(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), req.RestaurantID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if !added {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Already on your list"})
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Added to favorites"})
}

func (h *FavoriteHandler) DeleteFavoriteRestaurant(c *gin.Context) {
	id, ok := h.ParamUint(c, "restaurant_id")
	if !ok {
		return
	}

	if err := h.favorites.RemoveRestaurant(c.Request.Context(), h.GetDB(c), h.CurrentUserID(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Removed from favorites"})
}

func (h *FavoriteHandler) GetFavoriteRestaurants(c *gin.Context) {
	userID, ok := h.ParamUint(c, "user_id")
	if !ok {
		return
	}
	if userID != h.CurrentUserID(c) {
		apperrors.HandleError(c, apperrors.NewForbiddenError("You can only view your own favorites"))
		return
	}

	page, pageSize := h.Pagination(c)
	resp, err := h.favorites.ListRestaurants(c.Request.Context(), h.GetDB(c), userID, page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
