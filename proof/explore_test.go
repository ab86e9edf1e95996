package proof_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hepaul7/doverifier/dag"
	"github.com/Hepaul7/doverifier/proof"
	"github.com/Hepaul7/doverifier/term"
)

func TestExplore_IncludesStartLabeledInitial(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {}, "Z": {}, "Y": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"), term.Do("Z"))

	reached := proof.Explore(start, g)

	entry, ok := reached[start.CanonicalKey()]
	require.True(t, ok)
	require.Equal(t, proof.Initial, entry.Rule)
	require.True(t, entry.Term.Equal(start))
}

func TestExplore_FindsAllIsolatedInterventionDrops(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {}, "Z": {}, "Y": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"), term.Do("Z"))

	reached := proof.Explore(start, g)

	want := []*term.Term{
		start,
		term.New(term.BareVar("Y"), term.Do("X")),
		term.New(term.BareVar("Y"), term.Do("Z")),
		term.New(term.BareVar("Y")),
	}
	for _, w := range want {
		_, ok := reached[w.CanonicalKey()]
		require.True(t, ok, "expected %s to be reachable", w.CanonicalKey())
	}
}

func TestExplore_RespectsMaxDepth(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {}, "Z": {}, "Y": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"), term.Do("Z"))

	reached := proof.Explore(start, g, proof.WithMaxDepth(0))
	require.Len(t, reached, 1, "max_depth=0 must only reach the start term")

	deeper := proof.Explore(start, g, proof.WithMaxDepth(2))
	require.Greater(t, len(deeper), 1)
}
