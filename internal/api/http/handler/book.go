package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// maxUploadSize caps multipart book uploads at 32 MiB.
const maxUploadSize = 32 << 20

// BookService defines book collection operations.
type BookService interface {
	Create(ctx context.Context, params model.CreateBookParams) (model.Book, error)
	Get(ctx context.Context, requesterID, bookID int64) (model.Book, error)
	ListOwn(ctx context.Context, ownerID int64, search string) ([]model.Book, error)
	ListByOwner(ctx context.Context, requesterID, ownerID int64) ([]model.Book, error)
	Delete(ctx context.Context, requesterID, bookID int64) error
}

// Book handles book collection endpoints.
type Book struct {
	bookService    BookService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewBook creates a new Book handler.
func NewBook(bookService BookService, contextManager model.ContextManager, logger *logger.Logger) *Book {
	return &Book{
		bookService:    bookService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createBookRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

type bookResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type bookEnvelope struct {
	Status string       `json:"status"`
	Book   bookResponse `json:"book"`
}

type bookListEnvelope struct {
	Status string         `json:"status"`
	Books  []bookResponse `json:"books"`
}

func toBookResponse(b model.Book, withContent bool) bookResponse {
	resp := bookResponse{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Title:     b.Title,
		Author:    b.Author,
		CreatedAt: b.CreatedAt,
	}
	if withContent {
		resp.Content = b.Content
	}
	return resp
}

// Create adds a book with pasted text (JSON body) or an uploaded file
// (multipart form with a file field).
func (h *Book) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthenticated)
		return
	}

	params := model.CreateBookParams{OwnerID: userID}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		params.Title = r.FormValue("title")
		params.Author = r.FormValue("author")

		file, _, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			params.File = file
		}
	} else {
		var req createBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
		params.Title = req.Title
		params.Author = req.Author
		params.Content = req.Content
	}

	book, err := h.bookService.Create(r.Context(), params)
	if err != nil {
		h.logger.Error("Book handler: failed to create book",
			"owner_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, bookEnvelope{
		Status: response.StatusSuccess,
		Book:   toBookResponse(book, false),
	})
}

// ListOwn returns the caller's books, optionally filtered by a search
// query over title and author.
func (h *Book) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthenticated)
		return
	}

	books, err := h.bookService.ListOwn(r.Context(), userID, r.URL.Query().Get("search"))
	if err != nil {
		h.logger.Error("Book handler: failed to list books",
			"owner_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, bookListEnvelope{
		Status: response.StatusSuccess,
		Books:  toBookList(books),
	})
}

// ListByOwner returns another user's books if the caller holds a grant
// from that user.
func (h *Book) ListByOwner(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthenticated)
		return
	}

	ownerID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	books, err := h.bookService.ListByOwner(r.Context(), userID, ownerID)
	if err != nil {
		h.logger.Error("Book handler: failed to list books by owner",
			"requester_id", userID,
			"owner_id", ownerID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, bookListEnvelope{
		Status: response.StatusSuccess,
		Books:  toBookList(books),
	})
}

// Get returns a single book with its full text.
func (h *Book) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthenticated)
		return
	}

	bookID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid book id")
		return
	}

	book, err := h.bookService.Get(r.Context(), userID, bookID)
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, bookEnvelope{
		Status: response.StatusSuccess,
		Book:   toBookResponse(book, true),
	})
}

// Delete soft-deletes the caller's book.
func (h *Book) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthenticated)
		return
	}

	bookID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid book id")
		return
	}

	if err := h.bookService.Delete(r.Context(), userID, bookID); err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("Book handler: book deleted", "book_id", bookID, "owner_id", userID)

	response.JSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: response.StatusSuccess})
}

func toBookList(books []model.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b, false))
	}
	return out
}
