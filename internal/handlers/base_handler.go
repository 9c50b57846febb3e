package handlers

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"niddle_backend/internal/middleware"
	"niddle_backend/internal/storage"
	"niddle_backend/internal/validator"
	"niddle_backend/pkg/apperrors"
	"niddle_backend/pkg/contextkeys"
	"niddle_backend/pkg/paging"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the helpers every endpoint handler shares.
type BaseHandler struct {
	validate *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validate: v}
}

// GetDB returns the request's database handle set by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	val, _ := c.Get(string(contextkeys.DBContextKey))
	db, _ := val.(*gorm.DB)
	return db
}

// CurrentUserID returns the authenticated caller's ID.
func (h *BaseHandler) CurrentUserID(c *gin.Context) uint {
	return middleware.GetUserID(c)
}

// BindJSON binds a JSON body and writes a 400 on failure.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}
	return true
}

// BindForm binds multipart or urlencoded form fields.
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}
	return true
}

// BindQuery binds query parameters and runs the validate tags gin's
// binding layer does not cover.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}
	if err := h.validate.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if apperrors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		}
		return false
	}
	return true
}

// ParamUint parses a numeric path parameter.
func (h *BaseHandler) ParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s", name)))
		return 0, false
	}
	return uint(id), true
}

// Pagination reads page and page_size query parameters. Out-of-range
// values fall back to the defaults; final clamping happens in the pager.
func (h *BaseHandler) Pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(paging.DefaultPageSize)))
	if pageSize < 1 {
		pageSize = paging.DefaultPageSize
	}
	if pageSize > paging.MaxPageSize {
		pageSize = paging.MaxPageSize
	}
	return page, pageSize
}

// ServeStoredFile streams an image file from storage.
func (h *BaseHandler) ServeStoredFile(c *gin.Context, store storage.Storage, path string) {
	if path == "" {
		apperrors.HandleError(c, apperrors.ErrNotFound(nil, "image", "Image not found"))
		return
	}

	reader, size, err := store.Open(path)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNotFound(err, "image", "Image not found"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}

// formFile returns the named upload, nil when the part is absent.
func formFile(c *gin.Context, name string) (*multipart.FileHeader, bool) {
	file, err := c.FormFile(name)
	if err != nil {
		if apperrors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file upload"))
		return nil, false
	}
	return file, true
}

// requireFormFile is formFile for endpoints where the upload is the
// point of the request.
func requireFormFile(c *gin.Context, name string) (*multipart.FileHeader, bool) {
	file, ok := formFile(c, name)
	if !ok {
		return nil, false
	}
	if file == nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError(fmt.Sprintf("Missing %s file", name)))
		return nil, false
	}
	return file, true
}
