package catalog

import (
	"context"

	"github.com/agenthands/cinegraph/internal/core/model"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type executedQuery struct {
	Query  string
	Params map[string]interface{}
}

type MockDriver struct {
	Executed   []executedQuery
	MockResult neo4j.EagerResult
	Err        error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	return m.MockResult, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

type staticSource struct {
	records []model.CanonicalRecord
	err     error
}

func (s staticSource) Records(ctx context.Context) ([]model.CanonicalRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.CanonicalRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}
