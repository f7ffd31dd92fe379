package service

import (
	"context"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// Catalog searches the external book catalog. Upstream failures degrade
// to an empty result set instead of failing the request.
type Catalog struct {
	searcher model.CatalogSearcher
	logger   *logger.Logger
}

func NewCatalog(searcher model.CatalogSearcher, logger *logger.Logger) *Catalog {
	return &Catalog{
		searcher: searcher,
		logger:   logger,
	}
}

func (s *Catalog) Search(ctx context.Context, query string) ([]model.CatalogItem, error) {
	if query == "" {
		return nil, model.NewValidationError("search query is required")
	}

	items, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logger.Warn("Catalog service: external search failed, returning empty result",
			"query", query,
			"error", err.Error())
		return []model.CatalogItem{}, nil
	}

	return items, nil
}
