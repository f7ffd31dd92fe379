package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/mocks"
	"github.com/dtroode/bookshelf-server/internal/model"
)

func newBookService(bookStore *mocks.BookStore, grantStore *mocks.GrantStore, storage *mocks.Storage) *Book {
	log := logger.New(0)
	access := NewAccess(grantStore, &mocks.UserStore{}, log)
	return NewBook(bookStore, access, storage, log)
}

func TestBook_Create_InlineText(t *testing.T) {
	bookStore := &mocks.BookStore{}
	storage := &mocks.Storage{}

	bookStore.On("Create", mock.Anything, model.Book{
		OwnerID: 1,
		Title:   "Dune",
		Author:  "Frank Herbert",
		Content: "text",
	}).Return(model.Book{ID: 10, OwnerID: 1, Title: "Dune", Author: "Frank Herbert", Content: "text"}, nil)

	s := newBookService(bookStore, &mocks.GrantStore{}, storage)

	book, err := s.Create(context.Background(), model.CreateBookParams{
		OwnerID: 1,
		Title:   "Dune",
		Author:  "Frank Herbert",
		Content: "text",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), book.ID)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestBook_Create_FileUpload(t *testing.T) {
	bookStore := &mocks.BookStore{}
	storage := &mocks.Storage{}

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "books/1/")
	}), mock.Anything).Return(nil)
	bookStore.On("Create", mock.Anything, mock.MatchedBy(func(b model.Book) bool {
		return b.OwnerID == 1 && b.Title == "Dune" && b.Content == "" && strings.HasPrefix(b.ContentKey, "books/1/")
	})).Return(model.Book{ID: 10, OwnerID: 1, Title: "Dune", ContentKey: "books/1/key"}, nil)

	s := newBookService(bookStore, &mocks.GrantStore{}, storage)

	book, err := s.Create(context.Background(), model.CreateBookParams{
		OwnerID: 1,
		Title:   "Dune",
		File:    strings.NewReader("file body"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, book.ContentKey)
}

func TestBook_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params model.CreateBookParams
	}{
		{
			name:   "missing title",
			params: model.CreateBookParams{OwnerID: 1, Content: "text"},
		},
		{
			name:   "missing content and file",
			params: model.CreateBookParams{OwnerID: 1, Title: "Dune"},
		},
		{
			name:   "both content and file",
			params: model.CreateBookParams{OwnerID: 1, Title: "Dune", Content: "text", File: strings.NewReader("x")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newBookService(&mocks.BookStore{}, &mocks.GrantStore{}, &mocks.Storage{})

			_, err := s.Create(context.Background(), tt.params)
			require.Error(t, err)
			var valErr *model.ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}

func TestBook_Create_UploadFailure(t *testing.T) {
	bookStore := &mocks.BookStore{}
	storage := &mocks.Storage{}
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket unavailable"))

	s := newBookService(bookStore, &mocks.GrantStore{}, storage)

	_, err := s.Create(context.Background(), model.CreateBookParams{
		OwnerID: 1,
		Title:   "Dune",
		File:    strings.NewReader("file body"),
	})
	require.Error(t, err)
	bookStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBook_Get_Owner(t *testing.T) {
	bookStore := &mocks.BookStore{}
	bookStore.On("GetByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, OwnerID: 1, Title: "Dune", Content: "text"}, nil)

	s := newBookService(bookStore, &mocks.GrantStore{}, &mocks.Storage{})

	book, err := s.Get(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "text", book.Content)
}

func TestBook_Get_Guest(t *testing.T) {
	bookStore := &mocks.BookStore{}
	grantStore := &mocks.GrantStore{}

	bookStore.On("GetByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, OwnerID: 1, Title: "Dune", Content: "text"}, nil)
	grantStore.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)

	s := newBookService(bookStore, grantStore, &mocks.Storage{})

	book, err := s.Get(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), book.ID)
}

func TestBook_Get_DeniedReadsAsMissing(t *testing.T) {
	bookStore := &mocks.BookStore{}
	grantStore := &mocks.GrantStore{}

	bookStore.On("GetByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, OwnerID: 1}, nil)
	grantStore.On("Exists", mock.Anything, int64(1), int64(3)).Return(false, nil)

	s := newBookService(bookStore, grantStore, &mocks.Storage{})

	_, err := s.Get(context.Background(), 3, 10)
	// denial is indistinguishable from a missing book
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestBook_Get_Missing(t *testing.T) {
	bookStore := &mocks.BookStore{}
	bookStore.On("GetByID", mock.Anything, int64(99)).Return(model.Book{}, model.ErrNotFound)

	s := newBookService(bookStore, &mocks.GrantStore{}, &mocks.Storage{})

	_, err := s.Get(context.Background(), 1, 99)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestBook_Get_StoredFile(t *testing.T) {
	bookStore := &mocks.BookStore{}
	storage := &mocks.Storage{}

	bookStore.On("GetByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, OwnerID: 1, Title: "Dune", ContentKey: "books/1/key"}, nil)
	storage.On("Download", mock.Anything, "books/1/key").Return(io.NopCloser(strings.NewReader("file body")), nil)

	s := newBookService(bookStore, &mocks.GrantStore{}, storage)

	book, err := s.Get(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "file body", book.Content)
}

func TestBook_ListOwn(t *testing.T) {
	bookStore := &mocks.BookStore{}
	bookStore.On("GetByOwner", mock.Anything, int64(1), "dune").Return([]model.Book{{ID: 10, OwnerID: 1, Title: "Dune"}}, nil)

	s := newBookService(bookStore, &mocks.GrantStore{}, &mocks.Storage{})

	books, err := s.ListOwn(context.Background(), 1, "dune")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestBook_ListByOwner_Granted(t *testing.T) {
	bookStore := &mocks.BookStore{}
	grantStore := &mocks.GrantStore{}

	grantStore.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)
	bookStore.On("GetByOwner", mock.Anything, int64(1), "").Return([]model.Book{{ID: 10, OwnerID: 1}}, nil)

	s := newBookService(bookStore, grantStore, &mocks.Storage{})

	books, err := s.ListByOwner(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestBook_ListByOwner_Denied(t *testing.T) {
	bookStore := &mocks.BookStore{}
	grantStore := &mocks.GrantStore{}
	grantStore.On("Exists", mock.Anything, int64(1), int64(3)).Return(false, nil)

	s := newBookService(bookStore, grantStore, &mocks.Storage{})

	_, err := s.ListByOwner(context.Background(), 3, 1)
	require.ErrorIs(t, err, model.ErrAccessDenied)
	bookStore.AssertNotCalled(t, "GetByOwner", mock.Anything, mock.Anything, mock.Anything)
}

func TestBook_Delete_Owner(t *testing.T) {
	bookStore := &mocks.BookStore{}
	bookStore.On("GetByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, OwnerID: 1}, nil)
	bookStore.On("SoftDelete", mock.Anything, int64(10)).Return(nil)

	s := newBookService(bookStore, &mocks.GrantStore{}, &mocks.Storage{})

	require.NoError(t, s.Delete(context.Background(), 1, 10))
}

func TestBook_Delete_GuestDenied(t *testing.T) {
	// read grants never extend to delete
	bookStore := &mocks.BookStore{}
	bookStore.On("GetByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, OwnerID: 1}, nil)

	s := newBookService(bookStore, &mocks.GrantStore{}, &mocks.Storage{})

	err := s.Delete(context.Background(), 2, 10)
	require.ErrorIs(t, err, model.ErrNotFound)
	bookStore.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestBook_Delete_Missing(t *testing.T) {
	bookStore := &mocks.BookStore{}
	bookStore.On("GetByID", mock.Anything, int64(99)).Return(model.Book{}, model.ErrNotFound)

	s := newBookService(bookStore, &mocks.GrantStore{}, &mocks.Storage{})

	require.ErrorIs(t, s.Delete(context.Background(), 1, 99), model.ErrNotFound)
}
