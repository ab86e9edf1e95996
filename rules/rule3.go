package rules

import (
	"github.com/Hepaul7/doverifier/dag"
	"github.com/Hepaul7/doverifier/dsep"
	"github.com/Hepaul7/doverifier/term"
)

// Rule3 enumerates every intervention Z that can be removed outright:
//
//	P(Y | do(X), do(Z), O) = P(Y | do(X), O)   if Y ⟂ Z | X, O  in  G'
//
// where X is the remaining interventions and G' additionally bars Z itself
// unless Z is an ancestor of some observed variable in G_barX (§4.3).
// Successors are sorted by the removed variable's name and deduplicated by
// canonical key.
func Rule3(t *term.Term, g *dag.Graph, opts ...Option) []*term.Term {
	cfg := resolve(opts)
	doVars, obsVars := split(t)
	if len(doVars) == 0 {
		return nil
	}

	var out []*term.Term
	for _, z := range doVars {
		remainingDo := without(doVars, z)
		gBar := g.Bar(varSet(remainingDo...))

		isAncestorOfObs := false
		for _, w := range obsVars {
			if gBar.Reachable(z, w) {
				isAncestorOfObs = true
				break
			}
		}

		gPrime := gBar
		if !isAncestorOfObs {
			gPrime = gBar.Bar(varSet(z))
		}

		outcomeVar := t.Outcome().Var
		conditioning := append(append([]string{}, remainingDo...), obsVars...)

		ok := safeDSeparated(cfg.logger, "Rule3", z, func() bool {
			return dsep.IsDSeparated(gPrime, outcomeVar, z, varSet(conditioning...))
		})
		if !ok {
			continue
		}

		remaining := withoutCondition(t.Conditions(), term.Intervention, z)
		out = append(out, t.WithConditions(remaining))
	}

	return dedupByKey(out)
}
