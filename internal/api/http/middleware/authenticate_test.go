package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/bookshelf-server/internal/api/http/context"
	"github.com/dtroode/bookshelf-server/internal/mocks"
	"github.com/dtroode/bookshelf-server/internal/testutil"
)

func TestAuthenticate_BearerHeader(t *testing.T) {
	tokens := &mocks.TokenResolver{}
	tokens.On("ResolveToken", mock.Anything, "tok-1").Return(int64(7), true, nil)

	cm := httpcontext.NewManager()
	m := NewAuthenticate(tokens, cm, testutil.MakeNoopLogger())

	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = cm.UserID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, int64(7), gotID)
}

func TestAuthenticate_QueryFallback(t *testing.T) {
	tokens := &mocks.TokenResolver{}
	tokens.On("ResolveToken", mock.Anything, "tok-1").Return(int64(7), true, nil)

	cm := httpcontext.NewManager()
	m := NewAuthenticate(tokens, cm, testutil.MakeNoopLogger())

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/books?token=tok-1", nil)
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAuthenticate_HeaderTakesPrecedence(t *testing.T) {
	tokens := &mocks.TokenResolver{}
	tokens.On("ResolveToken", mock.Anything, "header-token").Return(int64(7), true, nil)

	m := NewAuthenticate(tokens, httpcontext.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/books?token=query-token", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	rec := httptest.NewRecorder()

	m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	tokens.AssertCalled(t, "ResolveToken", mock.Anything, "header-token")
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*http.Request, *mocks.TokenResolver)
	}{
		{
			name: "no token at all",
			setup: func(r *http.Request, tokens *mocks.TokenResolver) {
				tokens.On("ResolveToken", mock.Anything, "").Return(int64(0), false, nil)
			},
		},
		{
			name: "unknown token",
			setup: func(r *http.Request, tokens *mocks.TokenResolver) {
				r.Header.Set("Authorization", "Bearer unknown")
				tokens.On("ResolveToken", mock.Anything, "unknown").Return(int64(0), false, nil)
			},
		},
		{
			name: "malformed authorization header",
			setup: func(r *http.Request, tokens *mocks.TokenResolver) {
				r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
				tokens.On("ResolveToken", mock.Anything, "").Return(int64(0), false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &mocks.TokenResolver{}
			m := NewAuthenticate(tokens, httpcontext.NewManager(), testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			tt.setup(req, tokens)
			rec := httptest.NewRecorder()

			called := false
			m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
			assert.JSONEq(t, `{"status":"error","message":"missing or invalid token"}`, rec.Body.String())
		})
	}
}

func TestAuthenticate_ResolverError(t *testing.T) {
	tokens := &mocks.TokenResolver{}
	tokens.On("ResolveToken", mock.Anything, "tok-1").Return(int64(0), false, errors.New("connection refused"))

	m := NewAuthenticate(tokens, httpcontext.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()

	m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
