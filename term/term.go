package term

import "sort"

// Term represents a causal probability P(Outcome | conditions...). Its
// condition set is canonicalized at construction: duplicates on the same
// (kind, variable) coalesce, keeping the first occurrence in the order
// supplied to New (§3.4's open question on duplicate-variable handling is
// resolved this way, matching the lenient behavior of the original
// implementation), and the surviving conditions are ordered interventions
// before observations, then lexicographically by variable, then by value.
type Term struct {
	outcome    Outcome
	conditions []Condition
}

// New builds a canonical Term. isExpr makes *Term satisfy Expr.
func New(outcome Outcome, conditions ...Condition) *Term {
	return &Term{outcome: outcome, conditions: canonicalize(conditions)}
}

func (*Term) isExpr() {}

// Outcome returns the term's outcome.
func (t *Term) Outcome() Outcome { return t.outcome }

// Conditions returns the canonical, deduplicated, sorted condition slice.
// Callers must treat the result as read-only.
func (t *Term) Conditions() []Condition { return t.conditions }

// Interventions returns the set of variable names under do(.) in t.
func (t *Term) Interventions() map[string]struct{} {
	return t.varsOfKind(Intervention)
}

// Observations returns the set of observed variable names in t.
func (t *Term) Observations() map[string]struct{} {
	return t.varsOfKind(Observation)
}

func (t *Term) varsOfKind(k Kind) map[string]struct{} {
	out := make(map[string]struct{})
	for _, c := range t.conditions {
		if c.Kind == k {
			out[c.Var] = struct{}{}
		}
	}

	return out
}

// ConditionOn returns the condition on variable v of kind k, if any.
func (t *Term) ConditionOn(k Kind, v string) (Condition, bool) {
	for _, c := range t.conditions {
		if c.Kind == k && c.Var == v {
			return c, true
		}
	}

	return Condition{}, false
}

// WithConditions returns a new Term with the same outcome and the given
// replacement condition set (re-canonicalized). t is not mutated.
func (t *Term) WithConditions(conditions []Condition) *Term {
	return New(t.outcome, conditions...)
}

// Equal reports structural equality: same outcome, same canonical condition
// set (§3.4). This is the equality used everywhere except the BFS state key
// (see CanonicalKey).
func (t *Term) Equal(other *Term) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !t.outcome.Equal(other.outcome) {
		return false
	}
	if len(t.conditions) != len(other.conditions) {
		return false
	}
	for i := range t.conditions {
		if !t.conditions[i].Equal(other.conditions[i]) {
			return false
		}
	}

	return true
}

// canonicalize deduplicates by (kind, variable), keeping the first
// occurrence, then sorts interventions before observations and
// lexicographically by variable, then value, within each class.
func canonicalize(conditions []Condition) []Condition {
	seen := make(map[string]bool, len(conditions))
	out := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		key := c.dedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].Var != out[j].Var {
			return out[i].Var < out[j].Var
		}
		return out[i].valueString() < out[j].valueString()
	})

	return out
}
