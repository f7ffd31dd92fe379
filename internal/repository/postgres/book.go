package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/bookshelf-server/internal/model"
)

var _ model.BookStore = (*BookRepository)(nil)

type BookRepository struct {
	db *Connection
}

func NewBookRepository(db *Connection) *BookRepository {
	return &BookRepository{
		db: db,
	}
}

func (r *BookRepository) Create(ctx context.Context, book model.Book) (model.Book, error) {
	query := `INSERT INTO books (owner_id, title, author, content, content_key)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, owner_id, title, author, content, content_key, is_deleted, created_at, updated_at`

	var savedBook model.Book
	err := r.db.QueryRow(ctx, query,
		book.OwnerID, book.Title, book.Author, book.Content, book.ContentKey,
	).Scan(
		&savedBook.ID, &savedBook.OwnerID, &savedBook.Title, &savedBook.Author,
		&savedBook.Content, &savedBook.ContentKey, &savedBook.IsDeleted,
		&savedBook.CreatedAt, &savedBook.UpdatedAt,
	)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	return savedBook, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (model.Book, error) {
	query := `SELECT id, owner_id, title, author, content, content_key, is_deleted, created_at, updated_at
			  FROM books WHERE id = $1 AND NOT is_deleted`

	var book model.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&book.ID, &book.OwnerID, &book.Title, &book.Author,
		&book.Content, &book.ContentKey, &book.IsDeleted,
		&book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	return book, nil
}

// GetByOwner returns the owner's non-deleted books. A non-empty search
// narrows the list to title or author substring matches.
func (r *BookRepository) GetByOwner(ctx context.Context, ownerID int64, search string) ([]model.Book, error) {
	query := `SELECT id, owner_id, title, author, content_key, is_deleted, created_at, updated_at
			  FROM books
			  WHERE owner_id = $1 AND NOT is_deleted
			    AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR author ILIKE '%' || $2 || '%')
			  ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, ownerID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to get books by owner: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var book model.Book
		err := rows.Scan(
			&book.ID, &book.OwnerID, &book.Title, &book.Author,
			&book.ContentKey, &book.IsDeleted,
			&book.CreatedAt, &book.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *BookRepository) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE books SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1 AND NOT is_deleted`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete book: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
