package models

// DataQuery holds the query parameters accepted by both data endpoints.
// Defaults apply only when the parameter is absent; out-of-bounds values
// are a validation error, never clamped.
type DataQuery struct {
	Page         int    `form:"page,default=1" binding:"min=1"`
	PageSize     int    `form:"page_size,default=10" binding:"min=1,max=100"`
	TotalRecords int    `form:"total_records,default=1000" binding:"min=1,max=10000"`
	Seed         *int64 `form:"seed"`
}

// Paginated wraps a page of generated items with pagination metadata.
type Paginated[T any] struct {
	Data        []T  `json:"data"`
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// FieldError describes a single invalid query parameter.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse is the standard error body returned for client errors.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// Endpoint describes one API endpoint in the catalog served by
// /api/endpoints, including its parameters and an example URL.
type Endpoint struct {
	Path          string          `json:"path"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Parameters    []EndpointParam `json:"parameters"`
	Example       string          `json:"example"`
	SpecialFields []string        `json:"special_fields,omitempty"`
}

type EndpointParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     int    `json:"default"`
	Description string `json:"description"`
}

type EndpointsResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
}
