package term

import (
	"sort"
	"strings"
)

// CanonicalKey returns the stable state key used by package proof's BFS
// memoization: "Y={outcome}|DO={sorted do-conditions}|OBS={sorted
// obs-conditions}". Two terms with the same outcome and the same
// multisets of intervention and observation conditions (values included)
// map to the same key regardless of the order conditions were supplied in
// (§4.4). The key is a structural hash, not a claim of mathematical
// equivalence: P(Y | Z=0) and P(Y | Z=1) have distinct keys and must never
// be collapsed by rewriting based on the key alone.
func (t *Term) CanonicalKey() string {
	var dos, obs []string
	for _, c := range t.conditions {
		switch c.Kind {
		case Intervention:
			dos = append(dos, renderCondition(c))
		case Observation:
			obs = append(obs, renderCondition(c))
		}
	}
	sort.Strings(dos)
	sort.Strings(obs)

	return "Y=" + renderOutcome(t.outcome) + "|DO=" + strings.Join(dos, ",") + "|OBS=" + strings.Join(obs, ",")
}
