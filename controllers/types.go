package controllers

import (
	"context"
	"time"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/services"
)

// Default configuration values
const (
	DefaultCacheTTL       = 10 * time.Minute
	DefaultContextTimeout = 30 * time.Second
)

// CatalogServiceAPI defines the interface for catalog query operations
type CatalogServiceAPI interface {
	ListProducts(ctx context.Context, query models.CatalogQuery) (*services.ProductPage, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	GetFacets(ctx context.Context, query models.CatalogQuery) (*models.Facets, error)
}
