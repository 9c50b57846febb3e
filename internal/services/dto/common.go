package dto

// PageQuery is the shared pagination query for listing endpoints.
type PageQuery struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// PageMeta describes the window a listing response covers.
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	TotalCount int64 `json:"total_count"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
