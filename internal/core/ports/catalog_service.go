package ports

import (
	"context"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
)

// CatalogService exposes read-only product lookups over the current snapshot.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}
