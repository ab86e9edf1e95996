package dag

import (
	"sort"

	"github.com/hashicorp/go-hclog"
	multierror "github.com/hashicorp/go-multierror"
)

// color marks DFS visitation state while repairing cycles.
type color int

const (
	white color = iota // not yet visited
	gray               // on the current DFS path
	black              // fully explored
)

// Build constructs a Graph from a parent→children adjacency. If the input
// contains cycles, Build deterministically repairs it: for every simple
// cycle discovered by DFS, the edge closing that cycle (from the vertex
// currently being explored back to the ancestor still on the DFS stack) is
// removed. The repaired edges are logged at Warn through the configured
// logger (default: discarded) and never surface as an error — a malformed
// causal structure is "warn and continue", per §3.1/§7 of the spec.
//
// Complexity: O(V+E).
func Build(parentsToChildren map[string][]string, opts ...Option) *Graph {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	g := newEmpty()
	for parent, children := range parentsToChildren {
		g.ensureVertex(parent)
		for _, child := range children {
			g.addEdge(parent, child)
		}
	}

	removed := repairCycles(g)
	if len(removed) > 0 {
		logRepair(cfg.logger, removed)
	}

	return g
}

// brokenEdge records one edge removed to break a detected cycle.
type brokenEdge struct{ from, to string }

// repairCycles runs a deterministic DFS (vertices and each vertex's children
// visited in lexicographic order) over g and removes every back edge it
// finds, i.e. every edge from the vertex currently being explored to an
// ancestor still on the DFS stack. Removing a back edge is exactly removing
// "the edge from the cycle's last vertex to its first" for the simple cycle
// that back edge closes. g is mutated in place; the caller owns g and has
// not yet published it.
func repairCycles(g *Graph) []brokenEdge {
	state := make(map[string]color, len(g.children))
	var removed []brokenEdge

	var visit func(v string)
	visit = func(v string) {
		state[v] = gray
		for _, child := range sortedKeys(g.children[v]) {
			switch state[child] {
			case white:
				visit(child)
			case gray:
				// Back edge v->child closes a cycle along the current path.
				g.removeEdge(v, child)
				removed = append(removed, brokenEdge{from: v, to: child})
			case black:
				// Forward/cross edge; not part of a cycle through this path.
			}
		}
		state[v] = black
	}

	for _, v := range g.Vertices() {
		if state[v] == white {
			visit(v)
		}
	}

	sort.Slice(removed, func(i, j int) bool {
		if removed[i].from != removed[j].from {
			return removed[i].from < removed[j].from
		}
		return removed[i].to < removed[j].to
	})

	return removed
}

// logRepair emits one Warn record per broken edge plus an aggregated
// multierror.Error (used only for its human-readable "N errors occurred"
// rendering, never returned to the caller) summarizing the whole repair
// pass.
func logRepair(logger hclog.Logger, removed []brokenEdge) {
	var agg *multierror.Error
	for _, e := range removed {
		agg = multierror.Append(agg, &cycleRepairNote{from: e.from, to: e.to})
		logger.Warn("dag: breaking cycle", "from", e.from, "to", e.to)
	}
	logger.Warn("dag: causal structure contained cycles; repaired", "edges_removed", len(removed), "detail", agg.Error())
}

// cycleRepairNote satisfies error so it can be folded into a multierror.Error
// purely for its aggregated, human-readable rendering; it is never returned
// from Build.
type cycleRepairNote struct{ from, to string }

func (n *cycleRepairNote) Error() string {
	return "removed edge " + n.from + "->" + n.to + " to break cycle"
}
