package middleware

import (
	"net/http"
	"strings"

	"niddle_backend/internal/auth"
	"niddle_backend/internal/logger"
	"niddle_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user's ID.
const UserIDKey = "userID"

// AuthMiddleware validates the Bearer token and stores the caller's user
// ID in both the gin context and the logging context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Authorization header missing or invalid"),
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrInvalidToken})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// GetUserID extracts the authenticated user ID, 0 when absent.
func GetUserID(c *gin.Context) uint {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return 0
	}

	id, ok := val.(uint)
	if !ok {
		return 0
	}
	return id
}
