package rules

import (
	"github.com/Hepaul7/doverifier/dag"
	"github.com/Hepaul7/doverifier/dsep"
	"github.com/Hepaul7/doverifier/term"
)

// Rule2 enumerates every intervention Z that can become an observation:
//
//	P(Y | do(X), do(Z), O) = P(Y | do(X), Z, O)   if Y ⟂ Z | X, O  in  G_barX-underZ
//
// where X is the remaining interventions. Successors are sorted by the
// converted variable's name and deduplicated by canonical key.
func Rule2(t *term.Term, g *dag.Graph, opts ...Option) []*term.Term {
	cfg := resolve(opts)
	doVars, obsVars := split(t)
	if len(doVars) == 0 {
		return nil
	}

	var out []*term.Term
	for _, z := range doVars {
		remainingDo := without(doVars, z)
		gPrime := g.Bar(varSet(remainingDo...)).Underline(varSet(z))

		outcomeVar := t.Outcome().Var
		conditioning := append(append([]string{}, remainingDo...), obsVars...)

		ok := safeDSeparated(cfg.logger, "Rule2", z, func() bool {
			return dsep.IsDSeparated(gPrime, outcomeVar, z, varSet(conditioning...))
		})
		if !ok {
			continue
		}

		converted := replaceCondition(t.Conditions(), z)
		out = append(out, t.WithConditions(converted))
	}

	return dedupByKey(out)
}
