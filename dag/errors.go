// Package: dag
//
// errors.go — sentinel errors for the dag package.
//
// Error policy, following lvlath's convention: only package-level sentinels
// are exported; callers branch with errors.Is; wrapping at call sites adds
// context via %w and never hides the sentinel.
package dag

import "errors"

var (
	// ErrVariableNotFound indicates an operation referenced a variable absent
	// from the graph.
	ErrVariableNotFound = errors.New("dag: variable not found")

	// ErrNilGraph indicates a method that requires a constructed graph
	// (Children, Parents) was called on a nil *Graph receiver.
	ErrNilGraph = errors.New("dag: graph is nil")
)
