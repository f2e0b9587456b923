package mock

import (
	"context"

	"github.com/fwojciec/radiogaga"
)

var _ radiogaga.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is a mock implementation of radiogaga.CatalogStore.
type CatalogStore struct {
	LoadFn func(ctx context.Context) (*radiogaga.Catalog, error)
	SaveFn func(ctx context.Context, c *radiogaga.Catalog) error
}

func (s *CatalogStore) Load(ctx context.Context) (*radiogaga.Catalog, error) {
	return s.LoadFn(ctx)
}

func (s *CatalogStore) Save(ctx context.Context, c *radiogaga.Catalog) error {
	return s.SaveFn(ctx, c)
}
