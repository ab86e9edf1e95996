package dag

// Bar returns "G with overbar on S": a fresh Graph identical to g except
// every edge whose head (To) is in S has been removed. This is the
// intervention-modified graph G_X used by Rules 1-3 when X is being held
// fixed by do(.). g is never mutated. Complexity: O(V+E).
func (g *Graph) Bar(s map[string]struct{}) *Graph {
	return g.filterEdges(func(from, to string) bool {
		_, cut := s[to]
		return !cut
	})
}

// Underline returns "G with underbar on S": a fresh Graph identical to g
// except every edge whose tail (From) is in S has been removed. Rule 2 uses
// this to cut outgoing edges from the variable being converted from an
// intervention to an observation. g is never mutated. Complexity: O(V+E).
func (g *Graph) Underline(s map[string]struct{}) *Graph {
	return g.filterEdges(func(from, to string) bool {
		_, cut := s[from]
		return !cut
	})
}

// filterEdges builds a fresh Graph with the same vertex set as g and only
// the edges for which keep returns true.
func (g *Graph) filterEdges(keep func(from, to string) bool) *Graph {
	out := newEmpty()
	if g == nil {
		return out
	}
	for v := range g.children {
		out.ensureVertex(v)
	}
	for from, children := range g.children {
		for to := range children {
			if keep(from, to) {
				out.addEdge(from, to)
			}
		}
	}

	return out
}

// SetOf builds a membership set from a slice of variable names; a small
// convenience used by callers of Bar/Underline/InducedSubgraph/Ancestors.
func SetOf(vars []string) map[string]struct{} {
	out := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		out[v] = struct{}{}
	}

	return out
}
