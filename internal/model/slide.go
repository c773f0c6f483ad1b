package model

type Slide struct {
	BaseModel
	Title     *string `db:"title" json:"title"`
	Subtitle  *string `db:"subtitle" json:"subtitle"`
	ImageURL  string  `db:"image_url" json:"image_url"`
	Link      *string `db:"link" json:"link"`
	SortOrder int     `db:"sort_order" json:"sort_order"`
	IsActive  bool    `db:"is_active" json:"is_active"`
}
