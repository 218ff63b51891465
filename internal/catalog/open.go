package catalog

import (
	"context"
	"fmt"

	"github.com/agenthands/cinegraph/internal/config"
	"github.com/agenthands/cinegraph/internal/driver"
)

// Stores holds the record store of each catalog plus whatever needs closing.
type Stores struct {
	Primary   Store
	Secondary Store
	closer    func(context.Context) error
}

func (s *Stores) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}

func (s *Stores) Loader() *Loader {
	return NewLoader(s.Primary, s.Secondary)
}

// OpenStores opens the configured record store backend for both catalogs.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.Store.Backend {
	case "", "file":
		return &Stores{
			Primary:   NewFileStore(cfg.Catalog.Primary.Cache),
			Secondary: NewFileStore(cfg.Catalog.Secondary.Cache),
		}, nil
	case "memgraph":
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			return nil, err
		}
		if err := d.BuildIndices(ctx); err != nil {
			_ = d.Close(ctx)
			return nil, err
		}
		return &Stores{
			Primary:   NewMemgraphStore(d, cfg.Catalog.Primary.Name),
			Secondary: NewMemgraphStore(d, cfg.Catalog.Secondary.Name),
			closer:    d.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
