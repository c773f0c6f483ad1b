package model

type Product struct {
	BaseModel
	Name          string  `db:"name" json:"name"`
	Description   *string `db:"description" json:"description"`
	Price         float64 `db:"price" json:"price"`
	Stock         int     `db:"stock" json:"stock"`
	ImageURL      *string `db:"image_url" json:"image_url"`
	CategoryID    *string `db:"category_id" json:"category_id"`
	SubcategoryID *string `db:"subcategory_id" json:"subcategory_id"`

	// Joined data, populated by list/get queries.
	CategoryName    *string `db:"category_name" json:"category_name,omitempty"`
	SubcategoryName *string `db:"subcategory_name" json:"subcategory_name,omitempty"`
}
