package dto

type Filter struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Q          string `query:"q"`
	CategoryID string `query:"category_id"`
	Status     string `query:"status"`
}

type PaginationMetadata struct {
	TotalCount uint64 `json:"total_count"`
	Page       uint64 `json:"page"`
	Limit      int    `json:"limit"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
