package model

import (
	"context"
	"io"
	"time"
)

// BookStore defines persistence operations for books.
type BookStore interface {
	Create(ctx context.Context, book Book) (Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	GetByOwner(ctx context.Context, ownerID int64, search string) ([]Book, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Book represents a stored book entity. Content holds pasted text;
// ContentKey points at object storage for uploaded files. At most one
// of the two is set.
type Book struct {
	ID         int64
	OwnerID    int64
	Title      string
	Author     string
	Content    string
	ContentKey string
	IsDeleted  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateBookParams contains parameters to create a book.
type CreateBookParams struct {
	OwnerID int64
	Title   string
	Author  string
	Content string
	File    io.Reader
}
