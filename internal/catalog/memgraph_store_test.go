package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/agenthands/cinegraph/internal/core/model"
	"github.com/agenthands/cinegraph/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titleRecord(title string, year interface{}, director string, genres, cast []interface{}) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"title", "release_year", "genres", "director", "cast"},
		Values: []interface{}{title, year, genres, director, cast},
	}
}

func TestMemgraphStore_Save(t *testing.T) {
	mock := &MockDriver{}
	store := NewMemgraphStore(mock, "IMDb")

	err := store.Save(context.Background(), []model.CanonicalRecord{
		{Title: "Drive", ReleaseYear: "2011", Director: "Nicolas Winding Refn", Cast: []string{"Ryan Gosling"}},
	})
	require.NoError(t, err)

	require.Len(t, mock.Executed, 2)
	assert.Equal(t, driver.DeleteCatalogTitlesQuery, mock.Executed[0].Query)
	assert.Equal(t, driver.SaveTitlesQuery, mock.Executed[1].Query)
	assert.Equal(t, "IMDb", mock.Executed[1].Params["catalog"])

	titles := mock.Executed[1].Params["titles"].([]map[string]interface{})
	require.Len(t, titles, 1)
	assert.Equal(t, 0, titles[0]["position"])
	assert.Equal(t, "2011", titles[0]["release_year"])
	assert.Nil(t, titles[0]["genres"])
	assert.Equal(t, []string{"Ryan Gosling"}, titles[0]["cast"])
}

func TestMemgraphStore_SaveEmptyOnlyClears(t *testing.T) {
	mock := &MockDriver{}
	require.NoError(t, NewMemgraphStore(mock, "Netflix").Save(context.Background(), nil))
	require.Len(t, mock.Executed, 1)
	assert.Equal(t, driver.DeleteCatalogTitlesQuery, mock.Executed[0].Query)
}

func TestMemgraphStore_Records(t *testing.T) {
	mock := &MockDriver{
		MockResult: neo4j.EagerResult{Records: []*neo4j.Record{
			titleRecord("Drive", "2011", "Nicolas Winding Refn", []interface{}{"crime"}, []interface{}{"Ryan Gosling"}),
			titleRecord("Heat", int64(1995), "", nil, nil),
		}},
	}

	records, err := NewMemgraphStore(mock, "IMDb").Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, model.CanonicalRecord{
		Title:       "Drive",
		ReleaseYear: "2011",
		Genres:      []string{"crime"},
		Director:    "Nicolas Winding Refn",
		Cast:        []string{"Ryan Gosling"},
	}, records[0])
	assert.Equal(t, "Heat (1995)", records[1].Key())
	assert.Nil(t, records[1].Cast)
	assert.Nil(t, records[1].Genres)

	// Empty lists come back as empty lists, matching the file store.
	assert.Equal(t, []string{}, records[2].Cast)
	assert.Equal(t, []string{}, records[2].Genres)
	assert.Equal(t, "IMDb", mock.Executed[0].Params["catalog"])
}

func TestMemgraphStore_Errors(t *testing.T) {
	mock := &MockDriver{Err: errors.New("connection refused")}
	_, err := NewMemgraphStore(mock, "IMDb").Records(context.Background())
	assert.ErrorContains(t, err, "connection refused")

	mock = &MockDriver{MockResult: neo4j.EagerResult{Records: []*neo4j.Record{
		titleRecord("", "2011", "", nil, nil),
	}}}
	_, err = NewMemgraphStore(mock, "IMDb").Records(context.Background())
	assert.Error(t, err)
}
