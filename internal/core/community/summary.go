package community

import (
	"github.com/agenthands/cinegraph/internal/core/graph"
)

// Summary describes the shape of a built graph.
type Summary struct {
	Nodes            int `json:"nodes"`
	Edges            int `json:"edges"`
	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`
	Isolated         int `json:"isolated"`
}

func Summarize(g *graph.Graph) Summary {
	s := Summary{Nodes: g.Len(), Edges: g.EdgeCount()}
	components := Components(g)
	s.Components = len(components)
	if len(components) > 0 {
		s.LargestComponent = len(components[0])
	}
	for _, c := range components {
		if len(c) == 1 {
			s.Isolated++
		}
	}
	return s
}
