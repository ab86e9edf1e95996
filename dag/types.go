package dag

import (
	"sort"

	"github.com/hashicorp/go-hclog"
)

// Graph is a finite labeled directed graph over variable names. Once
// returned from Build, Bar, Underline, or any other constructor in this
// package, a Graph is never mutated again — every transformation returns a
// new value. This makes it safe to share a single Graph across goroutines
// (§5 of the spec: rule enumerators only ever read a Graph or build copies).
type Graph struct {
	// children[v] is the sorted-on-read adjacency from v to its children.
	children map[string]map[string]struct{}
	// parents[v] is the reverse adjacency, kept in lockstep with children.
	parents map[string]map[string]struct{}
}

// Option configures a Graph under construction via Build.
type Option func(*config)

type config struct {
	logger hclog.Logger
}

func defaultConfig() *config {
	return &config{logger: hclog.NewNullLogger()}
}

// WithLogger attaches a logging collaborator that receives Warn-level
// messages when Build repairs a cyclic input. A nil logger is ignored and
// the default no-op logger is kept.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// newEmpty allocates a Graph with no vertices or edges.
func newEmpty() *Graph {
	return &Graph{
		children: make(map[string]map[string]struct{}),
		parents:  make(map[string]map[string]struct{}),
	}
}

// ensureVertex registers v if not already present. O(1).
func (g *Graph) ensureVertex(v string) {
	if _, ok := g.children[v]; !ok {
		g.children[v] = make(map[string]struct{})
	}
	if _, ok := g.parents[v]; !ok {
		g.parents[v] = make(map[string]struct{})
	}
}

// addEdge links from→to, registering both endpoints. O(1).
func (g *Graph) addEdge(from, to string) {
	g.ensureVertex(from)
	g.ensureVertex(to)
	g.children[from][to] = struct{}{}
	g.parents[to][from] = struct{}{}
}

// removeEdge unlinks from→to if present; a no-op otherwise. O(1).
func (g *Graph) removeEdge(from, to string) {
	delete(g.children[from], to)
	delete(g.parents[to], from)
}

// HasVertex reports whether v is a vertex of g.
func (g *Graph) HasVertex(v string) bool {
	if g == nil {
		return false
	}
	_, ok := g.children[v]

	return ok
}

// Vertices returns all vertex names in lexicographic order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	if g == nil {
		return nil
	}
	out := make([]string, 0, len(g.children))
	for v := range g.children {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Children returns the sorted children of v, or (nil, ErrVariableNotFound)
// if v is not in g.
func (g *Graph) Children(v string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	set, ok := g.children[v]
	if !ok {
		return nil, ErrVariableNotFound
	}

	return sortedKeys(set), nil
}

// Parents returns the sorted parents of v, or (nil, ErrVariableNotFound)
// if v is not in g.
func (g *Graph) Parents(v string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	set, ok := g.parents[v]
	if !ok {
		return nil, ErrVariableNotFound
	}

	return sortedKeys(set), nil
}

// EdgeCount returns the number of edges in g. Complexity: O(V).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, cs := range g.children {
		n += len(cs)
	}

	return n
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
