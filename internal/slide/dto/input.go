package dto

type CreateSlideInput struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image_url"`
	Link      string `json:"link"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

type UpdateSlideInput struct {
	ID        string `json:"-"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image_url"`
	Link      string `json:"link"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

type SlideOrder struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

type ReorderInput struct {
	Slides []SlideOrder `json:"slides"`
}
