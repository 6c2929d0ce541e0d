package models

// Pagination carries page metadata alongside every list result
type Pagination struct {
	TotalCount  int  `json:"total_count"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// NewPagination computes pagination metadata for a 1-based page number
func NewPagination(totalCount, page, pageSize int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	totalPages := (totalCount + pageSize - 1) / pageSize

	return Pagination{
		TotalCount:  totalCount,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNext:     page < totalPages,
		HasPrev:     page > 1 && totalCount > 0,
	}
}
