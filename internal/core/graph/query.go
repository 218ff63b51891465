package graph

import (
	"sort"

	"github.com/agenthands/cinegraph/internal/core/model"
)

// DefaultTopLimit is the number of titles TopConnected callers get when they
// have no preference.
const DefaultTopLimit = 10

// ShortestPath returns a minimum-length path from start to end, both
// included. Unknown keys yield a *NodeNotFoundError naming every missing key;
// keys in different components yield a *NoPathError.
func ShortestPath(g *Graph, start, end string) ([]string, error) {
	from, okFrom := g.index[start]
	to, okTo := g.index[end]
	if !okFrom || !okTo {
		var missing []string
		if !okFrom {
			missing = append(missing, start)
		}
		if !okTo && (end != start || okFrom) {
			missing = append(missing, end)
		}
		return nil, &NodeNotFoundError{Keys: missing}
	}
	if from == to {
		return []string{start}, nil
	}

	parent := make([]int, len(g.nodes))
	for i := range parent {
		parent[i] = -1
	}
	parent[from] = from
	queue := []int{from}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			if parent[v] != -1 {
				continue
			}
			parent[v] = u
			if v == to {
				return g.walkBack(parent, from, to), nil
			}
			queue = append(queue, v)
		}
	}
	return nil, &NoPathError{From: start, To: end}
}

func (g *Graph) walkBack(parent []int, from, to int) []string {
	var rev []int
	for v := to; v != from; v = parent[v] {
		rev = append(rev, v)
	}
	rev = append(rev, from)

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = g.nodes[v].Key
	}
	return path
}

// Neighbors returns every node sharing an edge with key, in node insertion
// order. An isolated node yields an empty, non-nil slice.
func Neighbors(g *Graph, key string) ([]string, error) {
	i, ok := g.index[key]
	if !ok {
		return nil, &NodeNotFoundError{Keys: []string{key}}
	}
	out := make([]string, len(g.adj[i]))
	for x, j := range g.adj[i] {
		out[x] = g.nodes[j].Key
	}
	return out, nil
}

// CrossSourceOverlap returns, in insertion order, every primary-source node
// with at least one secondary-source neighbor.
func CrossSourceOverlap(g *Graph) []string {
	out := []string{}
	for i, n := range g.nodes {
		if n.Source != model.PrimarySource {
			continue
		}
		for _, j := range g.adj[i] {
			if g.nodes[j].Source == model.SecondarySource {
				out = append(out, n.Key)
				break
			}
		}
	}
	return out
}

type Ranked struct {
	Key    string `json:"key"`
	Degree int    `json:"degree"`
}

// TopConnected returns up to limit nodes by descending degree. Ties keep
// insertion order, so repeated calls agree.
func TopConnected(g *Graph, limit int) []Ranked {
	if limit <= 0 {
		return []Ranked{}
	}
	ranked := make([]Ranked, len(g.nodes))
	for i, n := range g.nodes {
		ranked[i] = Ranked{Key: n.Key, Degree: len(g.adj[i])}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Degree > ranked[j].Degree
	})
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
