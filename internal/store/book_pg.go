package store

// BookRepository implementation (Postgres)

import (
	"context"
	"errors"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookColumns = `
	b.id, b.title, b.description, b.cover_image_path, b.price,
	b.author_id, u.pseudonym, b.created_at, b.updated_at
`

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
	SELECT ` + bookColumns + `
	FROM books b
	JOIN users u ON u.id = b.author_id
	WHERE b.id = $1
	LIMIT 1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.CoverImagePath, &b.Price,
		&b.AuthorID, &b.AuthorPseudonym, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

// Search matches books whose title or description contains keyword as a
// case-sensitive substring. An empty keyword matches everything. Results come
// back in id order with the total matching count.
func (r *BookPG) Search(ctx context.Context, keyword string, limit, offset int) ([]entity.Book, int, error) {
	const countQuery = `
	SELECT COUNT(*)
	FROM books b
	WHERE ($1 = '' OR b.title LIKE '%' || $1 || '%' OR b.description LIKE '%' || $1 || '%')
	`
	var total int
	if err := r.db.QueryRow(ctx, countQuery, keyword).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT ` + bookColumns + `
	FROM books b
	JOIN users u ON u.id = b.author_id
	WHERE ($1 = '' OR b.title LIKE '%' || $1 || '%' OR b.description LIKE '%' || $1 || '%')
	ORDER BY b.id
	LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, keyword, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books, err := scanBooks(rows)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// SearchByAuthor is Search restricted to one author's books.
func (r *BookPG) SearchByAuthor(ctx context.Context, authorID, keyword string, limit, offset int) ([]entity.Book, int, error) {
	const countQuery = `
	SELECT COUNT(*)
	FROM books b
	WHERE b.author_id = $1
	AND ($2 = '' OR b.title LIKE '%' || $2 || '%' OR b.description LIKE '%' || $2 || '%')
	`
	var total int
	if err := r.db.QueryRow(ctx, countQuery, authorID, keyword).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT ` + bookColumns + `
	FROM books b
	JOIN users u ON u.id = b.author_id
	WHERE b.author_id = $1
	AND ($2 = '' OR b.title LIKE '%' || $2 || '%' OR b.description LIKE '%' || $2 || '%')
	ORDER BY b.id
	LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, authorID, keyword, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books, err := scanBooks(rows)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookPG) Create(ctx context.Context, book *entity.Book) error {
	const query = `
	INSERT INTO books (title, description, cover_image_path, price, author_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		book.Title, book.Description, book.CoverImagePath, book.Price, book.AuthorID,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
}

// Update replaces the mutable fields. author_id is never part of the SET
// list, so ownership cannot move through this path.
func (r *BookPG) Update(ctx context.Context, book *entity.Book) error {
	const query = `
	UPDATE books
	SET title = $1, description = $2, cover_image_path = $3, price = $4, updated_at = NOW()
	WHERE id = $5
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		book.Title, book.Description, book.CoverImagePath, book.Price, book.ID,
	).Scan(&book.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *BookPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func scanBooks(rows pgx.Rows) ([]entity.Book, error) {
	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Description, &b.CoverImagePath, &b.Price,
			&b.AuthorID, &b.AuthorPseudonym, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
