package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"bookstore/internal/entity"
	"bookstore/internal/logger"
)

// ListParams carries keyword search and pagination for book listings.
// Page is zero-indexed.
type ListParams struct {
	Keyword string
	Page    int
	Size    int
}

// CoverUpload is an inbound cover image.
type CoverUpload struct {
	Filename string
	Data     io.Reader
}

// CreateBookParams carries the fields for publishing a new book. The author
// is never part of the params; it is bound to the requester.
type CreateBookParams struct {
	Title       string
	Description string
	Price       *float64
	Cover       *CoverUpload
}

// UpdateBookParams replaces a book's mutable fields wholesale. Omitted fields
// are cleared, not preserved.
type UpdateBookParams struct {
	Title          string
	Description    string
	Price          *float64
	CoverImagePath *string
}

// BookService implements ownership-scoped book CRUD. Every owner-scoped
// operation takes the authenticated username explicitly; the HTTP layer
// resolves it from the request and injects it.
type BookService struct {
	books  BookRepository
	users  UserRepository
	covers CoverStorage
	logger *logger.Logger
}

func NewBookService(books BookRepository, users UserRepository, covers CoverStorage, logger *logger.Logger) *BookService {
	return &BookService{
		books:  books,
		users:  users,
		covers: covers,
		logger: logger,
	}
}

// ListPublic returns a page of the published catalog. No identity required.
func (s *BookService) ListPublic(ctx context.Context, p ListParams) ([]entity.Book, int, error) {
	limit, offset := pageWindow(p)
	books, total, err := s.books.Search(ctx, p.Keyword, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search books: %w", err)
	}
	return books, total, nil
}

// ListMine returns a page of the requester's own books.
func (s *BookService) ListMine(ctx context.Context, username string, p ListParams) ([]entity.Book, int, error) {
	author, err := s.resolveAuthor(ctx, username)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := pageWindow(p)
	books, total, err := s.books.SearchByAuthor(ctx, author.ID, p.Keyword, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search books by author: %w", err)
	}
	return books, total, nil
}

// GetPublic returns a book by id with no ownership check.
func (s *BookService) GetPublic(ctx context.Context, id int64) (entity.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return entity.Book{}, ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}
	return book, nil
}

// GetOwned returns a book by id only to its author.
func (s *BookService) GetOwned(ctx context.Context, username string, id int64) (entity.Book, error) {
	_, book, err := s.resolveOwned(ctx, username, id)
	if err != nil {
		return entity.Book{}, err
	}
	return book, nil
}

// Create publishes a new book owned by the requester. If a cover is supplied
// the asset is stored first so the record never references a cover that
// failed to write; a failed insert deletes the stored asset again.
func (s *BookService) Create(ctx context.Context, username string, p CreateBookParams) (entity.Book, error) {
	author, err := s.resolveAuthor(ctx, username)
	if err != nil {
		return entity.Book{}, err
	}

	if err := validateBookParams(p.Title, p.Price); err != nil {
		return entity.Book{}, err
	}

	book := entity.Book{
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		AuthorID:        author.ID,
		AuthorPseudonym: author.Pseudonym,
	}

	if p.Cover != nil {
		path, err := s.covers.Store(ctx, p.Cover.Filename, p.Cover.Data)
		if err != nil {
			return entity.Book{}, fmt.Errorf("failed to store cover asset: %w", err)
		}
		book.CoverImagePath = &path
	}

	if err := s.books.Create(ctx, &book); err != nil {
		if book.CoverImagePath != nil {
			if rmErr := s.covers.Remove(ctx, *book.CoverImagePath); rmErr != nil {
				s.logger.Error("Failed to remove cover asset after failed insert", "error", rmErr)
			}
		}
		return entity.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

// Update replaces a book's title, description, price and cover path
// wholesale. The author field is never touched.
func (s *BookService) Update(ctx context.Context, username string, id int64, p UpdateBookParams) (entity.Book, error) {
	_, book, err := s.resolveOwned(ctx, username, id)
	if err != nil {
		return entity.Book{}, err
	}

	if err := validateBookParams(p.Title, p.Price); err != nil {
		return entity.Book{}, err
	}

	book.Title = p.Title
	book.Description = p.Description
	book.Price = p.Price
	book.CoverImagePath = p.CoverImagePath

	if err := s.books.Update(ctx, &book); err != nil {
		return entity.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	return book, nil
}

// ReplaceCover swaps a book's cover asset. The new asset is written before
// the record is updated, and the old asset is deleted last, so a failure
// part-way never loses the current cover.
func (s *BookService) ReplaceCover(ctx context.Context, username string, id int64, cover CoverUpload) (entity.Book, error) {
	_, book, err := s.resolveOwned(ctx, username, id)
	if err != nil {
		return entity.Book{}, err
	}

	newPath, err := s.covers.Store(ctx, cover.Filename, cover.Data)
	if err != nil {
		return entity.Book{}, fmt.Errorf("failed to store cover asset: %w", err)
	}

	oldPath := book.CoverImagePath
	book.CoverImagePath = &newPath

	if err := s.books.Update(ctx, &book); err != nil {
		if rmErr := s.covers.Remove(ctx, newPath); rmErr != nil {
			s.logger.Error("Failed to remove cover asset after failed update", "error", rmErr)
		}
		return entity.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	if oldPath != nil && *oldPath != newPath {
		if err := s.covers.Remove(ctx, *oldPath); err != nil {
			s.logger.Error("Failed to remove replaced cover asset", "path", *oldPath, "error", err)
		}
	}

	return book, nil
}

// Delete retracts a book and releases its cover asset.
func (s *BookService) Delete(ctx context.Context, username string, id int64) error {
	_, book, err := s.resolveOwned(ctx, username, id)
	if err != nil {
		return err
	}

	if err := s.books.Delete(ctx, book.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if book.CoverImagePath != nil {
		if err := s.covers.Remove(ctx, *book.CoverImagePath); err != nil {
			s.logger.Error("Failed to remove cover asset of deleted book", "path", *book.CoverImagePath, "error", err)
		}
	}

	return nil
}

// resolveAuthor turns the injected username into a user record. An empty
// username means the request carried no principal; a username without a
// backing record means the session points at a deleted account.
func (s *BookService) resolveAuthor(ctx context.Context, username string) (entity.User, error) {
	if username == "" {
		return entity.User{}, ErrUnauthenticated
	}
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return entity.User{}, ErrCurrentUserMissing
	}
	if err != nil {
		return entity.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// resolveOwned runs the full authorization procedure for an owner-scoped,
// id-addressed operation: resolve identity, resolve user, resolve book,
// compare ownership.
func (s *BookService) resolveOwned(ctx context.Context, username string, id int64) (entity.User, entity.Book, error) {
	user, err := s.resolveAuthor(ctx, username)
	if err != nil {
		return entity.User{}, entity.Book{}, err
	}

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return entity.User{}, entity.Book{}, ErrNotFound
		}
		return entity.User{}, entity.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	if book.AuthorID != user.ID {
		return entity.User{}, entity.Book{}, ErrForbidden
	}

	return user, book, nil
}

func validateBookParams(title string, price *float64) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

func pageWindow(p ListParams) (limit, offset int) {
	size := p.Size
	if size <= 0 || size > 100 {
		size = 10
	}
	page := p.Page
	if page < 0 {
		page = 0
	}
	return size, page * size
}
