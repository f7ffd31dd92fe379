package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dtroode/bookshelf-server/internal/model"
)

// httpDoer is the subset of http.Client the catalog client uses.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the Google Books volumes API.
type Client struct {
	baseURL string
	http    httpDoer
}

// NewClient returns a catalog client for the volumes API at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type volumesResponse struct {
	Items []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
}

// Search runs a full-text query against the volumes API and maps the
// response to catalog items. Volumes without a title are kept with a
// placeholder so result counts match the upstream response.
func (c *Client) Search(ctx context.Context, query string) ([]model.CatalogItem, error) {
	u, err := url.Parse(c.baseURL + "/volumes")
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog url: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	items := make([]model.CatalogItem, 0, len(payload.Items))
	for _, v := range payload.Items {
		item := model.CatalogItem{
			ExternalID:  v.ID,
			Title:       v.VolumeInfo.Title,
			Authors:     v.VolumeInfo.Authors,
			Description: v.VolumeInfo.Description,
		}
		if item.Title == "" {
			item.Title = "Untitled"
		}
		if item.Authors == nil {
			item.Authors = []string{}
		}
		items = append(items, item)
	}

	return items, nil
}
