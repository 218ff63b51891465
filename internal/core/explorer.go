package core

import (
	"context"
	"fmt"

	"github.com/agenthands/cinegraph/internal/catalog"
	"github.com/agenthands/cinegraph/internal/config"
	"github.com/agenthands/cinegraph/internal/core/community"
	"github.com/agenthands/cinegraph/internal/core/graph"
	"github.com/agenthands/cinegraph/internal/core/model"
	"github.com/agenthands/cinegraph/internal/logging"
	"github.com/agenthands/cinegraph/internal/metrics"
)

// Explorer is one session's graph together with how it was built. Everything
// in it is read-only after NewExplorer returns.
type Explorer struct {
	Graph   *graph.Graph
	Report  *graph.BuildReport
	Summary community.Summary

	// Catalog display names, e.g. "IMDb" and "Netflix".
	PrimaryName   string
	SecondaryName string
	TopLimit      int
}

// NewExplorer loads both catalogs and builds the graph. A load failure aborts
// construction; there is no graph to query without both catalogs.
func NewExplorer(ctx context.Context, loader *catalog.Loader, builder *graph.Builder) (*Explorer, error) {
	records, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	primary := 0
	for _, r := range records {
		if r.Source == model.PrimarySource {
			primary++
		}
	}
	logging.Info().
		Int("primary", primary).
		Int("secondary", len(records)-primary).
		Msg("catalogs loaded")

	// Work on a copy so the caller's builder keeps its own callback.
	b := *builder
	b.OnDuplicate = func(d graph.DuplicateKey) {
		logging.Warn().
			Str("key", d.Key).
			Stringer("previous", d.Previous).
			Stringer("winner", d.Winner).
			Msg("duplicate title key, keeping later record")
		if builder.OnDuplicate != nil {
			builder.OnDuplicate(d)
		}
	}

	g, report := b.Build(records)
	summary := community.Summarize(g)
	metrics.RecordBuild(string(report.Strategy), report.Nodes, report.Edges, len(report.Duplicates), report.Duration)

	logging.Info().
		Str("strategy", string(report.Strategy)).
		Int("nodes", report.Nodes).
		Int("edges", report.Edges).
		Int("duplicates", len(report.Duplicates)).
		Int("components", summary.Components).
		Int("largest_component", summary.LargestComponent).
		Dur("took", report.Duration).
		Msg("graph built")

	return &Explorer{
		Graph:         g,
		Report:        report,
		Summary:       summary,
		PrimaryName:   model.PrimarySource.String(),
		SecondaryName: model.SecondarySource.String(),
		TopLimit:      graph.DefaultTopLimit,
	}, nil
}

// Open builds an Explorer from configuration: it opens the configured record
// stores, loads both catalogs and builds the graph with the configured strategy.
func Open(ctx context.Context, cfg *config.Config) (*Explorer, error) {
	strategy, err := graph.ParseStrategy(cfg.Build.Strategy)
	if err != nil {
		return nil, err
	}

	stores, err := catalog.OpenStores(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open record stores: %w", err)
	}
	defer stores.Close(ctx)

	ex, err := NewExplorer(ctx, stores.Loader(), graph.NewBuilder(strategy))
	if err != nil {
		return nil, err
	}
	ex.PrimaryName = cfg.Catalog.Primary.Name
	ex.SecondaryName = cfg.Catalog.Secondary.Name
	if cfg.Query.TopLimit > 0 {
		ex.TopLimit = cfg.Query.TopLimit
	}
	return ex, nil
}

// SourceName returns the configured display name of a source.
func (e *Explorer) SourceName(s model.Source) string {
	if s == model.SecondarySource {
		return e.SecondaryName
	}
	return e.PrimaryName
}
