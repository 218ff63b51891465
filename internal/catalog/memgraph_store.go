package catalog

import (
	"context"
	"fmt"

	"github.com/agenthands/cinegraph/internal/core/model"
	"github.com/agenthands/cinegraph/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// MemgraphStore keeps one catalog as :Title nodes tagged with the catalog
// name and ordered by position.
type MemgraphStore struct {
	Driver  driver.GraphDriver
	Catalog string
}

func NewMemgraphStore(d driver.GraphDriver, catalog string) *MemgraphStore {
	return &MemgraphStore{Driver: d, Catalog: catalog}
}

func (s *MemgraphStore) Save(ctx context.Context, records []model.CanonicalRecord) error {
	params := map[string]interface{}{"catalog": s.Catalog}
	if _, err := s.Driver.ExecuteQuery(ctx, driver.DeleteCatalogTitlesQuery, params); err != nil {
		return fmt.Errorf("failed to clear catalog %s: %w", s.Catalog, err)
	}
	if len(records) == 0 {
		return nil
	}

	titles := make([]map[string]interface{}, len(records))
	for i, r := range records {
		titles[i] = map[string]interface{}{
			"position":     i,
			"title":        r.Title,
			"release_year": string(r.ReleaseYear),
			"genres":       listParam(r.Genres),
			"director":     r.Director,
			"cast":         listParam(r.Cast),
		}
	}
	params["titles"] = titles

	if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveTitlesQuery, params); err != nil {
		return fmt.Errorf("failed to save catalog %s: %w", s.Catalog, err)
	}
	return nil
}

func (s *MemgraphStore) Records(ctx context.Context) ([]model.CanonicalRecord, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.GetCatalogTitlesQuery, map[string]interface{}{"catalog": s.Catalog})
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", s.Catalog, err)
	}

	records := make([]model.CanonicalRecord, 0, len(result.Records))
	for _, rec := range result.Records {
		r, err := decodeTitle(rec)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", s.Catalog, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func decodeTitle(rec *neo4j.Record) (model.CanonicalRecord, error) {
	title, _ := rec.Get("title")
	name, ok := title.(string)
	if !ok || name == "" {
		return model.CanonicalRecord{}, fmt.Errorf("title node without a title: %v", rec.Values)
	}

	r := model.CanonicalRecord{Title: name}
	year, _ := rec.Get("release_year")
	switch y := year.(type) {
	case string:
		r.ReleaseYear = model.Year(y)
	case int64:
		r.ReleaseYear = model.Year(fmt.Sprintf("%d", y))
	}
	director, _ := rec.Get("director")
	r.Director, _ = director.(string)

	genres, _ := rec.Get("genres")
	r.Genres = toStrings(genres)
	cast, _ := rec.Get("cast")
	r.Cast = toStrings(cast)
	return r, nil
}

// toStrings decodes a list property. An absent property stays nil so records
// read back exactly as they were saved.
func toStrings(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// listParam sends a nil list as null, which leaves the property unset.
func listParam(s []string) interface{} {
	if s == nil {
		return nil
	}
	return s
}
