package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agenthands/cinegraph/internal/core/model"
	"github.com/goccy/go-json"
)

// FileStore keeps one catalog as a JSON array of canonical records.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Records(ctx context.Context) ([]model.CanonicalRecord, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file '%s': %w", s.Path, err)
	}

	var records []model.CanonicalRecord
	if err := json.UnmarshalContext(ctx, data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode cache file '%s': %w", s.Path, err)
	}
	return records, nil
}

func (s *FileStore) Save(ctx context.Context, records []model.CanonicalRecord) error {
	if records == nil {
		records = []model.CanonicalRecord{}
	}
	data, err := json.MarshalIndentWithOption(records, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory '%s': %w", dir, err)
		}
	}
	if err := os.WriteFile(s.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write cache file '%s': %w", s.Path, err)
	}
	return nil
}
