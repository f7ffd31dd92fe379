package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// Book manages the book collection. Pasted text is stored inline;
// uploaded files go to object storage under a generated key.
type Book struct {
	bookStore model.BookStore
	access    *Access
	storage   model.Storage
	logger    *logger.Logger
}

func NewBook(
	bookStore model.BookStore,
	access *Access,
	storage model.Storage,
	logger *logger.Logger,
) *Book {
	return &Book{
		bookStore: bookStore,
		access:    access,
		storage:   storage,
		logger:    logger,
	}
}

func (s *Book) Create(ctx context.Context, params model.CreateBookParams) (model.Book, error) {
	s.logger.Debug("Book service: creating book", "owner_id", params.OwnerID, "title", params.Title)

	if params.Title == "" {
		return model.Book{}, model.NewValidationError("title is required")
	}
	if params.Content == "" && params.File == nil {
		return model.Book{}, model.NewValidationError("book text or file is required")
	}
	if params.Content != "" && params.File != nil {
		return model.Book{}, model.NewValidationError("provide either book text or file, not both")
	}

	book := model.Book{
		OwnerID: params.OwnerID,
		Title:   params.Title,
		Author:  params.Author,
		Content: params.Content,
	}

	if params.File != nil {
		key := s.generateContentKey(params.OwnerID)
		if err := s.storage.Upload(ctx, key, params.File); err != nil {
			s.logger.Error("Book service: failed to upload book file",
				"owner_id", params.OwnerID,
				"key", key,
				"error", err.Error())
			return model.Book{}, fmt.Errorf("failed to upload book file: %w", err)
		}
		book.ContentKey = key
	}

	book, err := s.bookStore.Create(ctx, book)
	if err != nil {
		s.logger.Error("Book service: failed to create book",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	s.logger.Info("Book service: book created", "book_id", book.ID, "owner_id", book.OwnerID)

	return book, nil
}

// Get returns a full book record. A book the requester is not
// authorized to read is reported as model.ErrNotFound, same as a
// missing book, so its existence is not confirmed.
func (s *Book) Get(ctx context.Context, requesterID, bookID int64) (model.Book, error) {
	book, err := s.bookStore.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	allowed, err := s.access.Authorize(ctx, book.OwnerID, requesterID)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to authorize read: %w", err)
	}
	if !allowed {
		return model.Book{}, model.ErrNotFound
	}

	if book.ContentKey != "" {
		reader, err := s.storage.Download(ctx, book.ContentKey)
		if err != nil {
			s.logger.Error("Book service: failed to download book file",
				"book_id", book.ID,
				"key", book.ContentKey,
				"error", err.Error())
			return model.Book{}, fmt.Errorf("failed to download book file: %w", err)
		}
		defer reader.Close()

		content, err := io.ReadAll(reader)
		if err != nil {
			return model.Book{}, fmt.Errorf("failed to read book file: %w", err)
		}
		book.Content = string(content)
	}

	return book, nil
}

// ListOwn returns the caller's non-deleted books, optionally filtered by
// a title/author substring.
func (s *Book) ListOwn(ctx context.Context, ownerID int64, search string) ([]model.Book, error) {
	books, err := s.bookStore.GetByOwner(ctx, ownerID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to get books by owner: %w", err)
	}

	return books, nil
}

// ListByOwner returns another user's books when the access policy
// authorizes the requester.
func (s *Book) ListByOwner(ctx context.Context, requesterID, ownerID int64) ([]model.Book, error) {
	allowed, err := s.access.Authorize(ctx, ownerID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize read: %w", err)
	}
	if !allowed {
		return nil, model.ErrAccessDenied
	}

	books, err := s.bookStore.GetByOwner(ctx, ownerID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get books by owner: %w", err)
	}

	return books, nil
}

// Delete soft-deletes a book. Only the owner may delete; anyone else
// sees model.ErrNotFound.
func (s *Book) Delete(ctx context.Context, requesterID, bookID int64) error {
	book, err := s.bookStore.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get book by id: %w", err)
	}

	if book.OwnerID != requesterID {
		return model.ErrNotFound
	}

	if err := s.bookStore.SoftDelete(ctx, bookID); err != nil {
		return fmt.Errorf("failed to soft delete book: %w", err)
	}

	s.logger.Info("Book service: book deleted", "book_id", bookID, "owner_id", requesterID)

	return nil
}

func (s *Book) generateContentKey(ownerID int64) string {
	return fmt.Sprintf("books/%d/%s", ownerID, uuid.New().String())
}
