package proof

import (
	"github.com/Hepaul7/doverifier/dag"
	"github.com/Hepaul7/doverifier/rules"
	"github.com/Hepaul7/doverifier/term"
)

// Result is the outcome of a successful FindProof call. Exactly one of
// Proof or ATE is populated, matching which shape start and target took.
type Result struct {
	Proof Proof
	ATE   *ATEProof
}

// FindProof searches for a do-calculus-only rewrite path from start to
// target on g.
//
//   - If both are *term.Term, it runs the single-term search and returns a
//     *Result with Proof set (possibly an empty, non-nil Proof if they are
//     already equivalent), or (nil, nil) if no proof exists within
//     max_depth.
//   - If both decompose as a subtraction of two terms (term.Sub's shape),
//     it proves the left operands and the right operands independently and
//     in order, returning a *Result with ATE set, or (nil, nil) if either
//     side fails.
//   - Otherwise it returns ErrUnsupportedExpression, or
//     ErrMixedATEOperands if one operand of a subtraction is not a term.
func FindProof(start, target term.Expr, g *dag.Graph, opts ...Option) (*Result, error) {
	cfg := resolve(opts)

	if s, ok := start.(*term.Term); ok {
		t, ok := target.(*term.Term)
		if !ok {
			return nil, ErrUnsupportedExpression
		}
		p := findProofSingle(s, t, g, cfg)
		if p == nil {
			return nil, nil
		}
		return &Result{Proof: p}, nil
	}

	sA, sB, sOK := term.AsSubtractionPair(start)
	tA, tB, tOK := term.AsSubtractionPair(target)
	if !sOK || !tOK {
		return nil, ErrUnsupportedExpression
	}

	a1, ok := sA.(*term.Term)
	b1, ok2 := sB.(*term.Term)
	a2, ok3 := tA.(*term.Term)
	b2, ok4 := tB.(*term.Term)
	if !ok || !ok2 || !ok3 || !ok4 {
		return nil, ErrMixedATEOperands
	}

	left := findProofSingle(a1, a2, g, cfg)
	if left == nil {
		return nil, nil
	}
	right := findProofSingle(b1, b2, g, cfg)
	if right == nil {
		return nil, nil
	}

	return &Result{ATE: &ATEProof{Left: left, Right: right}}, nil
}

// findProofSingle runs the BFS described in §4.4. It returns nil if no
// proof of length <= cfg.maxDepth exists, or a (possibly empty) Proof
// otherwise.
func findProofSingle(start, target *term.Term, g *dag.Graph, cfg *config) Proof {
	if start.Equal(target) {
		cfg.logger.Info("proof: expressions are already equivalent")
		return Proof{}
	}

	targetKey := target.CanonicalKey()

	type frontierEntry struct {
		cur  *term.Term
		path Proof
	}

	visited := map[string]bool{start.CanonicalKey(): true}
	queue := []frontierEntry{{cur: start, path: nil}}

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if len(entry.path) >= cfg.maxDepth {
			continue
		}

		for _, succ := range successors(entry.cur, g, cfg) {
			k := succ.Term.CanonicalKey()
			if visited[k] {
				continue
			}
			visited[k] = true

			newPath := append(append(Proof{}, entry.path...), succ)

			if succ.Term.Equal(target) || k == targetKey {
				cfg.logger.Info("proof: found proof", "steps", len(newPath))
				return newPath
			}

			queue = append(queue, frontierEntry{cur: succ.Term, path: newPath})
		}
	}

	cfg.logger.Info("proof: no proof found within max depth", "max_depth", cfg.maxDepth)
	return nil
}

// successors returns every distinct one-step do-calculus rewrite of cur,
// labeled by the rule that produced it, deduplicated by canonical key and
// excluding any candidate equivalent to cur itself. Rule1 is tried before
// Rule2 before Rule3, matching the original implementation's search order;
// this affects only which among several equally-short proofs is returned.
func successors(cur *term.Term, g *dag.Graph, cfg *config) []Step {
	type labeled struct {
		label string
		gen   func() []*term.Term
	}

	gens := []labeled{
		{RuleOne, func() []*term.Term { return rules.Rule1(cur, g, rules.WithLogger(cfg.logger)) }},
		{RuleTwo, func() []*term.Term { return rules.Rule2(cur, g, rules.WithLogger(cfg.logger)) }},
		{RuleThree, func() []*term.Term { return rules.Rule3(cur, g, rules.WithLogger(cfg.logger)) }},
	}

	seen := make(map[string]bool)
	var out []Step
	for _, rg := range gens {
		for _, next := range rg.gen() {
			if next.Equal(cur) {
				continue
			}
			k := next.CanonicalKey()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, Step{Rule: rg.label, Term: next})
		}
	}

	return out
}
