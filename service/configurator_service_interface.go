package service

import (
	"context"

	"luminaire-configurator/models"
)

// ConfiguratorServiceInterface defines the contract for configurator session operations
type ConfiguratorServiceInterface interface {
	ListProducts(ctx context.Context) ([]models.ProductSummary, error)
	GetProduct(ctx context.Context, code string) (*models.ProductDetail, error)
	ParseOrderCode(ctx context.Context, product string, code string) (*models.ParsedOrderCode, error)

	CreateSession(ctx context.Context, product string) (*models.SessionView, error)
	GetSession(id string) (*models.SessionView, error)
	DeleteSession(id string) error
	Select(id string, attribute string, value string) (*models.SessionView, error)
	Reset(id string) (*models.SessionView, error)
	FocusRAL(id string) (*models.SessionView, error)
	SetRALText(id string, text string) (*models.SessionView, error)
}
