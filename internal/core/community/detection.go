package community

import (
	"sort"

	"github.com/agenthands/cinegraph/internal/core/graph"
)

// Components returns the connected components of g, largest first. Members of
// each component keep node insertion order. Isolated nodes form singleton
// components.
func Components(g *graph.Graph) [][]string {
	keys := g.Keys()
	order := make(map[string]int, len(keys))
	for i, k := range keys {
		order[k] = i
	}

	visited := make(map[string]bool, len(keys))
	var components [][]string
	for _, key := range keys {
		if visited[key] {
			continue
		}
		components = append(components, collect(g, key, visited, order))
	}

	sort.SliceStable(components, func(i, j int) bool {
		return len(components[i]) > len(components[j])
	})
	return components
}

// collect walks the component containing start with an explicit stack.
func collect(g *graph.Graph, start string, visited map[string]bool, order map[string]int) []string {
	visited[start] = true
	stack := []string{start}
	var members []string

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, u)

		neighbors, _ := graph.Neighbors(g, u)
		for _, v := range neighbors {
			if !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	sort.Slice(members, func(i, j int) bool {
		return order[members[i]] < order[members[j]]
	})
	return members
}
