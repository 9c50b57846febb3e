package routes

import (
	"niddle_backend/internal/handlers"
	"niddle_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine with the full middleware chain and
// every endpoint mounted under /api/v1.
func SetupRouter(db *gorm.DB, h *handlers.AppHandlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	public := router.Group("/api/v1")
	authed := router.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware())

	h.Auth.RegisterRoutes(public, authed)
	h.User.RegisterRoutes(authed)
	h.Card.RegisterRoutes(authed)
	h.Restaurant.RegisterRoutes(public, authed)
	h.Food.RegisterRoutes(public, authed)
	h.Drink.RegisterRoutes(public, authed)
	h.Favorite.RegisterRoutes(authed)

	return router
}
