package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "dune herbert", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": "vol-1",
					"volumeInfo": {
						"title": "Dune",
						"authors": ["Frank Herbert"],
						"description": "A desert planet."
					}
				},
				{
					"id": "vol-2",
					"volumeInfo": {}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	items, err := c.Search(context.Background(), "dune herbert")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "vol-1", items[0].ExternalID)
	assert.Equal(t, "Dune", items[0].Title)
	assert.Equal(t, []string{"Frank Herbert"}, items[0].Authors)
	assert.Equal(t, "A desert planet.", items[0].Description)

	assert.Equal(t, "Untitled", items[1].Title)
	assert.NotNil(t, items[1].Authors)
	assert.Empty(t, items[1].Authors)
}

func TestClient_Search_NoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	items, err := c.Search(context.Background(), "no such book")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_Search_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.Search(context.Background(), "dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Search_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Search(ctx, "dune")
	require.Error(t, err)
}
