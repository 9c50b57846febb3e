package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope for every error reply.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a JSON error response. Unknown error types
// become a generic 500; the wrapped cause is logged, never sent to the
// client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error",
			"path", c.Request.URL.Path,
			"code", string(appErr.Code),
			"error", appErr.Unwrap(),
		)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
