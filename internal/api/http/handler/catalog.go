package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// CatalogService defines external catalog search operations.
type CatalogService interface {
	Search(ctx context.Context, query string) ([]model.CatalogItem, error)
}

// Catalog handles the external catalog search endpoint.
type Catalog struct {
	catalogService CatalogService
	logger         *logger.Logger
}

// NewCatalog creates a new Catalog handler.
func NewCatalog(catalogService CatalogService, logger *logger.Logger) *Catalog {
	return &Catalog{
		catalogService: catalogService,
		logger:         logger,
	}
}

type catalogItemResponse struct {
	ExternalID  string   `json:"external_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description,omitempty"`
}

type catalogEnvelope struct {
	Status string                `json:"status"`
	Items  []catalogItemResponse `json:"items"`
}

// Search queries the external catalog by title or author.
func (h *Catalog) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("Catalog handler: search failed", "error", err.Error())
		handleError(w, err)
		return
	}

	out := make([]catalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, catalogItemResponse{
			ExternalID:  item.ExternalID,
			Title:       item.Title,
			Authors:     item.Authors,
			Description: item.Description,
		})
	}

	response.JSON(w, http.StatusOK, catalogEnvelope{
		Status: response.StatusSuccess,
		Items:  out,
	})
}
