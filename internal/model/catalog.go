package model

import "context"

// CatalogSearcher queries an external book catalog.
type CatalogSearcher interface {
	Search(ctx context.Context, query string) ([]CatalogItem, error)
}

// CatalogItem is a single external catalog match.
type CatalogItem struct {
	ExternalID  string
	Title       string
	Authors     []string
	Description string
}
