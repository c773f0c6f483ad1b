package dto

type ProductFilters struct {
	SearchQuery   string
	CategoryID    string
	SubcategoryID string
	StockFilter   string // in_stock, out_of_stock, low_stock
	SortBy        string // name, price, stock, created_at
	SortOrder     string // asc, desc
	Page          int
	PageSize      int
}

type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// NewPagination derives the pagination block the clients render.
func NewPagination(page, pageSize, total int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: pageSize,
	}
}
