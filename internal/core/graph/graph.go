// Package graph holds the title relationship graph, its builder, and the
// read-only queries answered over it.
//
// A Graph is immutable once Build returns. Every query takes the Graph as an
// argument and never mutates it, so a built graph may be shared by any number
// of concurrent readers.
package graph

import (
	"github.com/agenthands/cinegraph/internal/core/model"
)

type pair struct {
	a, b int
}

func newPair(i, j int) pair {
	if i > j {
		i, j = j, i
	}
	return pair{a: i, b: j}
}

type Graph struct {
	nodes []*model.Node
	index map[string]int

	// adj[i] lists neighbor positions of node i in ascending insertion order.
	adj    [][]int
	edges  []*model.Edge
	edgeAt map[pair]int
}

func newGraph() *Graph {
	return &Graph{
		index:  make(map[string]int),
		edgeAt: make(map[pair]int),
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Node returns a copy of the node stored under key.
func (g *Graph) Node(key string) (model.Node, bool) {
	i, ok := g.index[key]
	if !ok {
		return model.Node{}, false
	}
	return g.nodes[i].Clone(), true
}

// Keys returns every node key in insertion order.
func (g *Graph) Keys() []string {
	keys := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		keys[i] = n.Key
	}
	return keys
}

// Edges returns a copy of every edge ordered by the insertion order of its endpoints.
func (g *Graph) Edges() []model.Edge {
	out := make([]model.Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Clone()
	}
	return out
}

// Edge returns the edge joining a and b, in either order.
func (g *Graph) Edge(a, b string) (model.Edge, bool) {
	i, ok := g.index[a]
	if !ok {
		return model.Edge{}, false
	}
	j, ok := g.index[b]
	if !ok || i == j {
		return model.Edge{}, false
	}
	at, ok := g.edgeAt[newPair(i, j)]
	if !ok {
		return model.Edge{}, false
	}
	return g.edges[at].Clone(), true
}

// Degree returns the number of edges incident to key, or -1 if key is absent.
func (g *Graph) Degree(key string) int {
	i, ok := g.index[key]
	if !ok {
		return -1
	}
	return len(g.adj[i])
}
