package rules

import (
	"github.com/Hepaul7/doverifier/dag"
	"github.com/Hepaul7/doverifier/dsep"
	"github.com/Hepaul7/doverifier/term"
)

// Rule1 enumerates every observed variable W that can be dropped from t:
//
//	P(Y | do(X), Z, W) = P(Y | do(X), Z)   if Y ⟂ W | X, Z  in  G_barX
//
// Successors are sorted by the dropped variable's name and deduplicated by
// canonical key.
func Rule1(t *term.Term, g *dag.Graph, opts ...Option) []*term.Term {
	cfg := resolve(opts)
	doVars, obsVars := split(t)
	if len(obsVars) == 0 {
		return nil
	}

	gx := g.Bar(varSet(doVars...))

	var out []*term.Term
	for _, w := range obsVars {
		outcomeVar := t.Outcome().Var
		conditioning := append(append([]string{}, doVars...), without(obsVars, w)...)

		ok := safeDSeparated(cfg.logger, "Rule1", w, func() bool {
			return dsep.IsDSeparated(gx, outcomeVar, w, varSet(conditioning...))
		})
		if !ok {
			continue
		}

		remaining := withoutCondition(t.Conditions(), term.Observation, w)
		out = append(out, t.WithConditions(remaining))
	}

	return dedupByKey(out)
}

// without returns a copy of vars with every occurrence of target removed.
func without(vars []string, target string) []string {
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		if v == target {
			continue
		}
		out = append(out, v)
	}

	return out
}
