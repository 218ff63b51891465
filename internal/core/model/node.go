package model

import (
	"fmt"
	"slices"
)

// Source identifies which of the two catalogs a record came from.
type Source int

const (
	PrimarySource Source = iota
	SecondarySource
)

func (s Source) String() string {
	switch s {
	case PrimarySource:
		return "primary"
	case SecondarySource:
		return "secondary"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CanonicalRecord is one cleaned catalog entry. Missing director or cast
// arrive as "" and an empty list, never as absent markers.
type CanonicalRecord struct {
	Title       string   `json:"title"`
	ReleaseYear Year     `json:"release_year"`
	Genres      []string `json:"genres"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Source      Source   `json:"-"`
}

// Key returns the node key "<title> (<releaseYear>)".
func (r CanonicalRecord) Key() string {
	return NodeKey(r.Title, r.ReleaseYear)
}

func NodeKey(title string, year Year) string {
	return fmt.Sprintf("%s (%s)", title, year)
}

// Node is a graph vertex. Attributes come from whichever record last wrote the key.
type Node struct {
	Key      string   `json:"key"`
	Source   Source   `json:"source"`
	Genres   []string `json:"genres"`
	Director string   `json:"director"`
	Cast     []string `json:"cast"`
}

// NewNode copies r's lists so later changes to the record do not reach the node.
func NewNode(r CanonicalRecord) *Node {
	return &Node{
		Key:      r.Key(),
		Source:   r.Source,
		Genres:   slices.Clone(r.Genres),
		Director: r.Director,
		Cast:     slices.Clone(r.Cast),
	}
}

func (n Node) Clone() Node {
	n.Genres = slices.Clone(n.Genres)
	n.Cast = slices.Clone(n.Cast)
	return n
}
