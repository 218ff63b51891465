package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agenthands/cinegraph/internal/core"
	"github.com/agenthands/cinegraph/internal/core/graph"
	"github.com/agenthands/cinegraph/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExplorer() *core.Explorer {
	g := graph.Build([]model.CanonicalRecord{
		{Title: "The Godfather", ReleaseYear: "1972", Director: "Francis Ford Coppola", Cast: []string{"Al Pacino", "Marlon Brando"}, Source: model.PrimarySource},
		{Title: "The Conversation", ReleaseYear: "1974", Director: "Francis Ford Coppola", Cast: []string{"Gene Hackman"}, Source: model.SecondarySource},
		{Title: "Heat", ReleaseYear: "1995", Director: "Michael Mann", Cast: []string{"Al Pacino"}, Source: model.SecondarySource},
		{Title: "Stalker", ReleaseYear: "1979", Director: "Andrei Tarkovsky", Source: model.PrimarySource},
	})
	return &core.Explorer{
		Graph:         g,
		PrimaryName:   "IMDb",
		SecondaryName: "Netflix",
		TopLimit:      2,
	}
}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := New(testExplorer(), strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestShell_ShortestPath(t *testing.T) {
	out := run(t, "1\nThe Conversation (1974)\nHeat (1995)\n5\n")
	assert.Contains(t, out, "Shortest path:")
	assert.Contains(t, out, "1. The Conversation (1974)\n2. The Godfather (1972)\n3. Heat (1995)\n")
	assert.Contains(t, out, "Goodbye!")
}

func TestShell_ShortestPathErrors(t *testing.T) {
	out := run(t, "1\nHeat (1995)\nStalker (1979)\n1\nHeat\nStalker (1979)\n5\n")
	assert.Contains(t, out, "No path found between those titles.")
	assert.Contains(t, out, "Title not found: Heat")
	assert.Contains(t, out, "The Godfather (1972)'")
}

func TestShell_Recommend(t *testing.T) {
	out := run(t, "2\nThe Godfather (1972)\n2\nStalker (1979)\n2\nMissing (2000)\n5\n")
	assert.Contains(t, out, "Titles connected to The Godfather (1972):")
	assert.Contains(t, out, "- The Conversation (1974) (same director)")
	assert.Contains(t, out, "- Heat (1995) (shared cast: Al Pacino)")
	assert.Contains(t, out, "No direct connections found.")
	assert.Contains(t, out, "Title not found: Missing (2000)")
}

func TestShell_OverlapAndTop(t *testing.T) {
	out := run(t, "3\n4\n5\n")
	assert.Contains(t, out, "List IMDb titles connected to Netflix titles")
	assert.Contains(t, out, "IMDb titles connected to Netflix titles:\n- The Godfather (1972)\n")
	assert.Contains(t, out, "Top 2 Most Connected Titles:")
	assert.Contains(t, out, "The Godfather (1972) - 2 connections")
}

func TestShell_InvalidChoiceAndEOF(t *testing.T) {
	out := run(t, "9\n")
	assert.Contains(t, out, "Invalid choice. Try again.")
	assert.NotContains(t, out, "Goodbye!")

	// Input ending mid-prompt exits cleanly.
	out = run(t, "1\nHeat (1995)\n")
	assert.NotContains(t, out, "Shortest path:")
}

func TestShell_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := New(testExplorer(), strings.NewReader("5\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
