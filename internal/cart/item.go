package cart

// Item is one product line in a cart. The descriptive fields are snapshots
// taken when the product is added; they are not refreshed if the catalog
// changes afterwards.
type Item struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	Stock           int     `json:"stock"`
	ImageURL        *string `json:"image_url,omitempty"`
	CategoryName    *string `json:"category_name,omitempty"`
	SubcategoryName *string `json:"subcategory_name,omitempty"`
}

// Product is the upstream catalog shape consumed by Add.
type Product struct {
	ID              string
	Name            string
	Price           float64
	Stock           int
	ImageURL        *string
	CategoryName    *string
	SubcategoryName *string
}

// State is a point-in-time snapshot of a cart. TotalItems and TotalAmount
// are always derived from Items, never tracked incrementally.
type State struct {
	Items       []Item  `json:"items"`
	IsOpen      bool    `json:"is_open"`
	TotalItems  int     `json:"total_items"`
	TotalAmount float64 `json:"total_amount"`
}
