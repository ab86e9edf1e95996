package rules

import (
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/Hepaul7/doverifier/dag"
	"github.com/Hepaul7/doverifier/term"
)

// split partitions t's conditions into sorted intervention and observation
// variable name slices, per §4.3: "Partition the conditions of the input
// into the intervention set X ... and the observation set O ...".
func split(t *term.Term) (doVars, obsVars []string) {
	for v := range t.Interventions() {
		doVars = append(doVars, v)
	}
	for v := range t.Observations() {
		obsVars = append(obsVars, v)
	}
	sort.Strings(doVars)
	sort.Strings(obsVars)

	return doVars, obsVars
}

// withoutCondition returns a copy of conditions with the entry matching
// (kind, variable) removed.
func withoutCondition(conditions []term.Condition, kind term.Kind, variable string) []term.Condition {
	out := make([]term.Condition, 0, len(conditions))
	for _, c := range conditions {
		if c.Kind == kind && c.Var == variable {
			continue
		}
		out = append(out, c)
	}

	return out
}

// replaceCondition returns a copy of conditions with the do(.) entry on
// variable replaced by an observation carrying the same value.
func replaceCondition(conditions []term.Condition, variable string) []term.Condition {
	out := make([]term.Condition, 0, len(conditions))
	for _, c := range conditions {
		if c.Kind == term.Intervention && c.Var == variable {
			if c.HasValue {
				out = append(out, term.ObsValue(variable, c.Value))
			} else {
				out = append(out, term.Obs(variable))
			}
			continue
		}
		out = append(out, c)
	}

	return out
}

// dedupByKey keeps the first occurrence of each distinct term.CanonicalKey,
// preserving input order (callers already sort candidates deterministically
// before calling this).
func dedupByKey(candidates []*term.Term) []*term.Term {
	seen := make(map[string]bool, len(candidates))
	out := make([]*term.Term, 0, len(candidates))
	for _, c := range candidates {
		k := c.CanonicalKey()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}

	return out
}

// safeDSeparated evaluates dsepFn, recovering from any panic raised by a
// pathological graph and logging it at Debug instead of propagating it
// (§7: rule-enumeration internal failures are swallowed per candidate).
func safeDSeparated(logger hclog.Logger, ruleLabel, variable string, dsepFn func() bool) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("rules: d-separation oracle failed on candidate; skipping", "rule", ruleLabel, "variable", variable, "recovered", r)
			result = false
		}
	}()

	return dsepFn()
}

// varSet builds a dag membership set, used only so this package does not
// need to know dag.SetOf's name at every call site.
func varSet(vars ...string) map[string]struct{} {
	return dag.SetOf(vars)
}
