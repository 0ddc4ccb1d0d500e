package entity

import "time"

// Book is a published work owned by exactly one author. AuthorID is set on
// creation and never reassigned. AuthorPseudonym is denormalized by the store
// layer for responses.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CoverImagePath  *string   `json:"cover_image_path,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	AuthorID        string    `json:"author_id"`
	AuthorPseudonym string    `json:"author_pseudonym"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
