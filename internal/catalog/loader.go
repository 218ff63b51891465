package catalog

import (
	"context"

	"github.com/agenthands/cinegraph/internal/core/model"
	"golang.org/x/sync/errgroup"
)

// Source yields the canonical records of one catalog in a stable order.
// Records come back untagged; the Loader assigns Source.
type Source interface {
	Records(ctx context.Context) ([]model.CanonicalRecord, error)
}

// Sink persists the canonical records of one catalog.
type Sink interface {
	Save(ctx context.Context, records []model.CanonicalRecord) error
}

// Store is a Source that can also be written.
type Store interface {
	Source
	Sink
}

type Loader struct {
	Primary   Source
	Secondary Source
}

func NewLoader(primary, secondary Source) *Loader {
	return &Loader{Primary: primary, Secondary: secondary}
}

// Load reads both catalogs concurrently and returns all primary records
// followed by all secondary records, each tagged with its source. No
// deduplication happens here.
func (l *Loader) Load(ctx context.Context) ([]model.CanonicalRecord, error) {
	var primary, secondary []model.CanonicalRecord

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		primary, err = read(ctx, l.Primary, model.PrimarySource)
		return err
	})
	g.Go(func() error {
		var err error
		secondary, err = read(ctx, l.Secondary, model.SecondarySource)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]model.CanonicalRecord, 0, len(primary)+len(secondary))
	records = append(records, primary...)
	return append(records, secondary...), nil
}

func read(ctx context.Context, src Source, tag model.Source) ([]model.CanonicalRecord, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, &LoadError{Source: tag, Err: err}
	}
	for i := range records {
		records[i].Source = tag
	}
	return records, nil
}
