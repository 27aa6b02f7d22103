package repository

import (
	"context"
	"errors"

	"luminaire-configurator/models"
)

// ErrProductNotFound is returned when a product code has no catalog entry
var ErrProductNotFound = errors.New("product not found")

// CatalogRepositoryInterface defines the contract for reading product source data
type CatalogRepositoryInterface interface {
	ListProducts(ctx context.Context) ([]models.ProductSummary, error)
	GetProduct(ctx context.Context, code string) (*models.ProductSource, error)
	// GetLumenRows returns the lumen table rows for a product in table order
	GetLumenRows(ctx context.Context, product string) ([]models.LumenRow, error)
}
