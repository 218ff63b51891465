package graph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNoPathFound  = errors.New("no path found")
)

// NodeNotFoundError reports which of the requested keys are absent from the graph.
type NodeNotFoundError struct {
	Keys []string
}

func (e *NodeNotFoundError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return fmt.Sprintf("%s: %s", ErrNodeNotFound, strings.Join(quoted, ", "))
}

func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}

// NoPathError is returned when both keys exist but lie in different components.
type NoPathError struct {
	From, To string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("%s between %q and %q", ErrNoPathFound, e.From, e.To)
}

func (e *NoPathError) Is(target error) bool {
	return target == ErrNoPathFound
}
