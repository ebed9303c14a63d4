package dataset

import "dataserve/models"

const (
	minTotalRecords = 1
	maxTotalRecords = 10000
	minPageSize     = 1
	maxPageSize     = 100
)

// Params are the validated inputs to Paginate.
type Params struct {
	Page         int
	PageSize     int
	TotalRecords int
}

// ValidationError reports a parameter outside its declared bounds.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

// Validate checks every parameter against its declared bounds. Values are
// never clamped; the first out-of-bounds field is reported as a
// *ValidationError.
func (p Params) Validate() error {
	if p.TotalRecords < minTotalRecords || p.TotalRecords > maxTotalRecords {
		return &ValidationError{Field: "total_records", Reason: "must be between 1 and 10000"}
	}
	if p.PageSize < minPageSize || p.PageSize > maxPageSize {
		return &ValidationError{Field: "page_size", Reason: "must be between 1 and 100"}
	}
	if p.Page < 1 {
		return &ValidationError{Field: "page", Reason: "must be at least 1"}
	}
	return nil
}

// Paginate computes the page window over a virtual dataset of
// p.TotalRecords records and calls build for every id in the window, in
// ascending order. Performs the following steps:
//  1. Validates p (see Params.Validate)
//  2. total_pages = ceil(total_records / page_size)
//  3. start = (page-1)*page_size + 1, end = min(start+page_size-1, total_records)
//  4. Builds one item per id in [start, end]
//
// A page beyond total_pages yields an empty (non-nil) data slice with
// has_next=false and has_previous=page>1, not an error.
func Paginate[T any](p Params, build func(id int) T) (*models.Paginated[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	totalPages := (p.TotalRecords + p.PageSize - 1) / p.PageSize
	start := (p.Page-1)*p.PageSize + 1
	end := start + p.PageSize - 1
	if end > p.TotalRecords {
		end = p.TotalRecords
	}

	data := make([]T, 0, p.PageSize)
	for id := start; id <= end; id++ {
		data = append(data, build(id))
	}

	return &models.Paginated[T]{
		Data:        data,
		Total:       p.TotalRecords,
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalPages:  totalPages,
		HasNext:     p.Page < totalPages,
		HasPrevious: p.Page > 1,
	}, nil
}
