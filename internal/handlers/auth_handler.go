package handlers

import (
	"net/http"

	"niddle_backend/internal/services"
	"niddle_backend/internal/services/dto"
	"niddle_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	auth   services.AuthService
	resets services.PasswordResetService
	users  services.UserService
}

func NewAuthHandler(base BaseHandler, auth services.AuthService, resets services.PasswordResetService, users services.UserService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, auth: auth, resets: resets, users: users}
}

// RegisterRoutes mounts the public auth endpoints on public and the
// account listing on authed.
func (h *AuthHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	auth := public.Group("/auth")
	auth.POST("/register", h.Register)
	auth.GET("/mail_verification/:email", h.VerifyMail)
	auth.POST("/login", h.Login)

	reset := public.Group("/password_reset")
	reset.POST("/request/:email", h.RequestPasswordReset)
	reset.POST("/reset", h.ResetPassword)

	authed.GET("/auth/get_all_users", h.GetAllUsers)
}

// Register creates an account from a multipart form with an optional
// profile image part.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindForm(c, &req) {
		return
	}

	image, ok := formFile(c, "profile_image")
	if !ok {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), h.GetDB(c), &req, image)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

func (h *AuthHandler) VerifyMail(c *gin.Context) {
	address := c.Param("email")
	if err := h.auth.VerifyEmail(c.Request.Context(), h.GetDB(c), address); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Email verified"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	address := c.Param("email")
	if err := h.resets.Request(c.Request.Context(), h.GetDB(c), address); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Reset code sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.resets.Reset(c.Request.Context(), h.GetDB(c), &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated"})
}

func (h *AuthHandler) GetAllUsers(c *gin.Context) {
	page, pageSize := h.Pagination(c)
	resp, err := h.users.List(c.Request.Context(), h.GetDB(c), page, pageSize)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
