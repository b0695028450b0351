package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
	"github.com/sirpyerre/merch-store-api/internal/core/ports"
)

// CatalogService exposes read-only product lookups. Products are only ever
// mutated by the purchase engine, so reads go through a plain snapshot load.
type CatalogService struct {
	store ports.SnapshotStore
	log   zerolog.Logger
}

func NewCatalogService(store ports.SnapshotStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load catalog")
		return nil, err
	}
	return snap.Products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load catalog")
		return nil, err
	}
	return snap.FindProduct(id)
}
