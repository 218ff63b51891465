package graph

import (
	"fmt"
	"sort"
	"time"

	"github.com/agenthands/cinegraph/internal/core/model"
)

// Strategy selects how similarity edges are discovered. Both strategies
// produce identical edge sets.
type Strategy string

const (
	// StrategyIndex groups nodes by director and by cast member and connects
	// pairs within each group.
	StrategyIndex Strategy = "index"
	// StrategyPairwise compares every unordered pair of distinct nodes.
	StrategyPairwise Strategy = "pairwise"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyIndex, "":
		return StrategyIndex, nil
	case StrategyPairwise:
		return StrategyPairwise, nil
	default:
		return "", fmt.Errorf("unknown build strategy %q", s)
	}
}

// DuplicateKey records a node overwritten by a later record with the same key.
type DuplicateKey struct {
	Key      string
	Previous model.Source
	Winner   model.Source
}

type BuildReport struct {
	Strategy   Strategy
	Records    int
	Nodes      int
	Edges      int
	Duplicates []DuplicateKey
	Duration   time.Duration
}

type Builder struct {
	Strategy Strategy
	// OnDuplicate, when set, is called for every overwritten node key.
	OnDuplicate func(DuplicateKey)
}

func NewBuilder(strategy Strategy) *Builder {
	return &Builder{Strategy: strategy}
}

// Build constructs a graph with the index strategy.
func Build(records []model.CanonicalRecord) *Graph {
	g, _ := NewBuilder(StrategyIndex).Build(records)
	return g
}

// Build inserts one node per distinct key (last write wins) and then connects
// every pair of distinct nodes that share a non-empty director or at least one
// cast member.
func (b *Builder) Build(records []model.CanonicalRecord) (*Graph, *BuildReport) {
	start := time.Now()
	g := newGraph()
	report := &BuildReport{Strategy: b.Strategy, Records: len(records)}
	if report.Strategy == "" {
		report.Strategy = StrategyIndex
	}

	for _, r := range records {
		node := model.NewNode(r)
		if i, ok := g.index[node.Key]; ok {
			dup := DuplicateKey{Key: node.Key, Previous: g.nodes[i].Source, Winner: node.Source}
			report.Duplicates = append(report.Duplicates, dup)
			if b.OnDuplicate != nil {
				b.OnDuplicate(dup)
			}
			g.nodes[i] = node
			continue
		}
		g.index[node.Key] = len(g.nodes)
		g.nodes = append(g.nodes, node)
	}

	var reasons map[pair]*reason
	if report.Strategy == StrategyPairwise {
		reasons = pairwiseReasons(g.nodes)
	} else {
		reasons = indexedReasons(g.nodes)
	}
	g.link(reasons)

	report.Nodes = g.Len()
	report.Edges = g.EdgeCount()
	report.Duration = time.Since(start)
	return g, report
}

type reason struct {
	director bool
	cast     map[string]struct{}
}

func (r *reason) addCast(name string) {
	if r.cast == nil {
		r.cast = make(map[string]struct{})
	}
	r.cast[name] = struct{}{}
}

func castSet(n *model.Node) map[string]struct{} {
	set := make(map[string]struct{}, len(n.Cast))
	for _, name := range n.Cast {
		set[name] = struct{}{}
	}
	return set
}

func pairwiseReasons(nodes []*model.Node) map[pair]*reason {
	sets := make([]map[string]struct{}, len(nodes))
	for i, n := range nodes {
		sets[i] = castSet(n)
	}

	reasons := make(map[pair]*reason)
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			var r reason
			r.director = a.Director != "" && a.Director == b.Director
			for name := range sets[i] {
				if _, ok := sets[j][name]; ok {
					r.addCast(name)
				}
			}
			if r.director || len(r.cast) > 0 {
				reasons[pair{a: i, b: j}] = &r
			}
		}
	}
	return reasons
}

func indexedReasons(nodes []*model.Node) map[pair]*reason {
	byDirector := make(map[string][]int)
	byActor := make(map[string][]int)
	for i, n := range nodes {
		if n.Director != "" {
			byDirector[n.Director] = append(byDirector[n.Director], i)
		}
		for name := range castSet(n) {
			byActor[name] = append(byActor[name], i)
		}
	}

	reasons := make(map[pair]*reason)
	get := func(p pair) *reason {
		r, ok := reasons[p]
		if !ok {
			r = &reason{}
			reasons[p] = r
		}
		return r
	}

	// Group members are appended in node order, so i < j within a group.
	for _, members := range byDirector {
		for x := 0; x < len(members); x++ {
			for y := x + 1; y < len(members); y++ {
				get(pair{a: members[x], b: members[y]}).director = true
			}
		}
	}
	for name, members := range byActor {
		for x := 0; x < len(members); x++ {
			for y := x + 1; y < len(members); y++ {
				get(pair{a: members[x], b: members[y]}).addCast(name)
			}
		}
	}
	return reasons
}

// link materializes edges and adjacency in a deterministic order.
func (g *Graph) link(reasons map[pair]*reason) {
	pairs := make([]pair, 0, len(reasons))
	for p := range reasons {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	g.adj = make([][]int, len(g.nodes))
	g.edges = make([]*model.Edge, 0, len(pairs))
	for _, p := range pairs {
		r := reasons[p]
		var shared []string
		if len(r.cast) > 0 {
			shared = make([]string, 0, len(r.cast))
			for name := range r.cast {
				shared = append(shared, name)
			}
			sort.Strings(shared)
		}

		g.edgeAt[p] = len(g.edges)
		g.edges = append(g.edges, &model.Edge{
			A:      g.nodes[p.a].Key,
			B:      g.nodes[p.b].Key,
			Reason: model.EdgeReason{Director: r.director, SharedCast: shared},
		})
		g.adj[p.a] = append(g.adj[p.a], p.b)
		g.adj[p.b] = append(g.adj[p.b], p.a)
	}
}
