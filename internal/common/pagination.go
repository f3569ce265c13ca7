package common

// RawPagination is the cursor envelope returned by the blob API.
type RawPagination struct {
	HasNext        bool    `json:"has_next"`
	HasPrevious    bool    `json:"has_previous"`
	ItemsPerPage   int     `json:"items_per_page"`
	NextCursor     *string `json:"next_cursor"`
	PreviousCursor *string `json:"previous_cursor"`
	TotalItems     int     `json:"total_items"`
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination synthesizes the page-based envelope, totalPages = ceil(totalItems / limit).
func NewPagination(page, limit, totalItems int) Pagination {
	totalPages := 0
	if limit > 0 && totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
	}
}
