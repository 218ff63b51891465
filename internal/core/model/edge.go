package model

import "slices"

// Edge is an undirected similarity edge. A and B are ordered by node
// insertion order; the pair is unordered for every other purpose.
type Edge struct {
	A      string     `json:"a"`
	B      string     `json:"b"`
	Reason EdgeReason `json:"reason"`
}

// EdgeReason holds every justification for an edge, not just the first found.
type EdgeReason struct {
	Director   bool     `json:"director"`
	SharedCast []string `json:"shared_cast,omitempty"`
}

func (e Edge) Clone() Edge {
	e.Reason.SharedCast = slices.Clone(e.Reason.SharedCast)
	return e
}
