package http

import (
	"context"
	"net/http"
	"strconv"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

// BookAccess is the handlers' view of the book access service. The username
// argument is the principal injected by the auth middleware; empty means
// anonymous.
type BookAccess interface {
	ListPublic(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error)
	ListMine(ctx context.Context, username string, p usecase.ListParams) ([]entity.Book, int, error)
	GetPublic(ctx context.Context, id int64) (entity.Book, error)
	GetOwned(ctx context.Context, username string, id int64) (entity.Book, error)
	Create(ctx context.Context, username string, p usecase.CreateBookParams) (entity.Book, error)
	Update(ctx context.Context, username string, id int64, p usecase.UpdateBookParams) (entity.Book, error)
	ReplaceCover(ctx context.Context, username string, id int64, cover usecase.CoverUpload) (entity.Book, error)
	Delete(ctx context.Context, username string, id int64) error
}

// listParamsFrom reads keyword/page/size query parameters. Page is
// zero-indexed; defaults are page 0, size 10, size capped at 100.
func listParamsFrom(r *http.Request) usecase.ListParams {
	p := usecase.ListParams{
		Keyword: r.URL.Query().Get("keyword"),
		Size:    10,
	}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if size, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && size > 0 && size <= 100 {
		p.Size = size
	}
	return p
}
