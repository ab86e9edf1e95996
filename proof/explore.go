package proof

import (
	"github.com/Hepaul7/doverifier/dag"
	"github.com/Hepaul7/doverifier/term"
)

// Reached records a single entry of an Explore result: the term that was
// reached, and the label of the rule that produced it (or Initial for the
// start term itself).
type Reached struct {
	Term *term.Term
	Rule string
}

// Explore enumerates every term reachable from start by do-calculus rule
// applications within max_depth steps (§4.4's "exhaustive enumeration").
// The returned map is keyed by term.Term.CanonicalKey and always contains
// start itself, labeled Initial.
func Explore(start *term.Term, g *dag.Graph, opts ...Option) map[string]Reached {
	cfg := resolve(opts)

	startKey := start.CanonicalKey()
	visited := map[string]bool{startKey: true}
	reached := map[string]Reached{startKey: {Term: start, Rule: Initial}}

	type frontierEntry struct {
		cur   *term.Term
		depth int
	}
	queue := []frontierEntry{{cur: start, depth: 0}}

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if entry.depth >= cfg.maxDepth {
			continue
		}

		for _, succ := range successors(entry.cur, g, cfg) {
			k := succ.Term.CanonicalKey()
			if visited[k] {
				continue
			}
			visited[k] = true
			reached[k] = Reached{Term: succ.Term, Rule: succ.Rule}
			queue = append(queue, frontierEntry{cur: succ.Term, depth: entry.depth + 1})
		}
	}

	cfg.logger.Info("proof: explored reachable expressions", "count", len(reached), "max_depth", cfg.maxDepth)
	return reached
}
