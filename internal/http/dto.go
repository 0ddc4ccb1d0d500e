package http

import "bookstore/internal/entity"

// BookResponse is the wire shape of a book. Author carries the owner's
// pseudonym, never the id or username.
type BookResponse struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CoverImagePath *string  `json:"coverImagePath"`
	Price          *float64 `json:"price"`
	Author         string   `json:"author"`
}

// PageResponse is the wire shape of a listing page.
type PageResponse struct {
	Content       []BookResponse `json:"content"`
	TotalElements int            `json:"totalElements"`
}

func toBookResponse(b entity.Book) BookResponse {
	return BookResponse{
		ID:             b.ID,
		Title:          b.Title,
		Description:    b.Description,
		CoverImagePath: b.CoverImagePath,
		Price:          b.Price,
		Author:         b.AuthorPseudonym,
	}
}

func toPageResponse(books []entity.Book, total int) PageResponse {
	content := make([]BookResponse, 0, len(books))
	for _, b := range books {
		content = append(content, toBookResponse(b))
	}
	return PageResponse{
		Content:       content,
		TotalElements: total,
	}
}
