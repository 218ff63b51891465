package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYear_Unmarshal(t *testing.T) {
	cases := map[string]Year{
		`2011`:   "2011",
		`2011.0`: "2011",
		`"PG"`:   "PG",
		`"1999"`: "1999",
		`null`:   "",
	}
	for in, want := range cases {
		var y Year
		require.NoError(t, json.Unmarshal([]byte(in), &y), in)
		assert.Equal(t, want, y, in)
	}

	var y Year
	assert.Error(t, json.Unmarshal([]byte(`true`), &y))
}

func TestYear_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Year `json:"a"`
		B Year `json:"b"`
		C Year `json:"c"`
	}{"2011", "PG", "0042"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 2011, "b": "PG", "c": "0042"}`, string(out))
}

func TestNodeKey(t *testing.T) {
	r := CanonicalRecord{Title: "Drive", ReleaseYear: "2011", Source: SecondarySource}
	assert.Equal(t, "Drive (2011)", r.Key())

	n := NewNode(r)
	assert.Equal(t, "Drive (2011)", n.Key)
	assert.Equal(t, SecondarySource, n.Source)
	assert.Equal(t, "secondary", n.Source.String())
}
