package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agenthands/cinegraph/internal/config"
	"github.com/agenthands/cinegraph/internal/core/model"
)

// Normalizer turns raw CSV rows into canonical records using a column mapping.
type Normalizer struct {
	Columns config.Columns
}

func NewNormalizer(columns config.Columns) *Normalizer {
	return &Normalizer{Columns: columns}
}

type columnIndex struct {
	title, year, genres, director int
	cast                          []int
}

func (n *Normalizer) resolve(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		// Byte order marks survive in the first header cell of some exports.
		pos[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	var missing []string
	lookup := func(name string, optional bool) int {
		if name == "" && optional {
			return -1
		}
		i, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	idx := columnIndex{
		title:    lookup(n.Columns.Title, false),
		year:     lookup(n.Columns.Year, false),
		genres:   lookup(n.Columns.Genres, true),
		director: lookup(n.Columns.Director, true),
	}
	for _, c := range n.Columns.Cast {
		idx.cast = append(idx.cast, lookup(c, false))
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("header is missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// Normalize reads a CSV stream whose first row is a header. Rows with an
// empty title are skipped; extra columns are ignored.
func (n *Normalizer) Normalize(r io.Reader) ([]model.CanonicalRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty catalog: no header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	idx, err := n.resolve(header)
	if err != nil {
		return nil, err
	}

	records := []model.CanonicalRecord{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		title := strings.TrimSpace(field(row, idx.title))
		if title == "" {
			continue
		}

		cast := []string{}
		for _, c := range idx.cast {
			if n.Columns.SplitCast {
				cast = append(cast, splitList(field(row, c), false)...)
			} else if name := strings.TrimSpace(field(row, c)); name != "" {
				cast = append(cast, name)
			}
		}

		records = append(records, model.CanonicalRecord{
			Title:       title,
			ReleaseYear: model.Year(strings.TrimSpace(field(row, idx.year))),
			Genres:      splitList(field(row, idx.genres), true),
			Director:    strings.TrimSpace(field(row, idx.director)),
			Cast:        dedupe(cast),
		})
	}
	return records, nil
}

// NormalizeFile normalizes the CSV file at path.
func (n *Normalizer) NormalizeFile(ctx context.Context, path string) ([]model.CanonicalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog '%s': %w", path, err)
	}
	defer f.Close()

	records, err := n.Normalize(f)
	if err != nil {
		return nil, fmt.Errorf("catalog '%s': %w", path, err)
	}
	return records, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// splitList splits a comma-separated cell, trimming items and dropping
// empties. Lowered items are also de-duplicated.
func splitList(cell string, lower bool) []string {
	out := []string{}
	for _, item := range strings.Split(cell, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if lower {
			item = strings.ToLower(item)
		}
		out = append(out, item)
	}
	if lower {
		return dedupe(out)
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
