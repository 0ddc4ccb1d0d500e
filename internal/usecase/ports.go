package usecase

import (
	"context"
	"io"

	"bookstore/internal/entity"
)

// BookRepository defines the contract for book storage.
type BookRepository interface {
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	// Search matches books where keyword is a case-sensitive substring of
	// title or description. An empty keyword matches everything. Returns the
	// page plus the total matching count.
	Search(ctx context.Context, keyword string, limit, offset int) ([]entity.Book, int, error)
	// SearchByAuthor is Search restricted to one author's books.
	SearchByAuthor(ctx context.Context, authorID, keyword string, limit, offset int) ([]entity.Book, int, error)
	// Create assigns the book's id and timestamps.
	Create(ctx context.Context, book *entity.Book) error
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the contract for the user directory.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

// CoverStorage defines the contract for the cover asset side store.
type CoverStorage interface {
	// Store writes the asset and returns the path it ends up at.
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
	// Remove deletes the asset at path. Removing a path that does not exist
	// is a no-op, not an error.
	Remove(ctx context.Context, path string) error
}
