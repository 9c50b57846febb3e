package handlers

import (
	"net/http"

	"niddle_backend/internal/services"
	"niddle_backend/internal/services/dto"
	"niddle_backend/internal/storage"
	"niddle_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	users   services.UserService
	storage storage.Storage
}

func NewUserHandler(base BaseHandler, users services.UserService, store storage.Storage) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users, storage: store}
}

func (h *UserHandler) RegisterRoutes(authed *gin.RouterGroup) {
	users := authed.Group("/users")
	users.GET("/:user_id", h.GetUser)
	users.DELETE("/:user_id", h.DeleteUser)
	users.GET("/:user_id/profile_image", h.GetProfileImage)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.ParamUint(c, "user_id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.ParamUint(c, "user_id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}

func (h *UserHandler) GetProfileImage(c *gin.Context) {
	id, ok := h.ParamUint(c, "user_id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.ServeStoredFile(c, h.storage, user.ProfileImage)
}
