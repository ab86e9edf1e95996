package term_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Hepaul7/doverifier/term"
)

func TestCanonicalOrdering(t *testing.T) {
	tm := term.New(term.BareVar("Y"),
		term.Obs("W"),
		term.DoValue("Z", 0),
		term.Do("X"),
	)
	got := tm.String()
	require.Equal(t, "P(Y | do(X), do(Z=0), W)", got)
}

func TestDuplicateConditionKeepsFirst(t *testing.T) {
	tm := term.New(term.BareVar("Y"), term.ObsValue("X", 0), term.ObsValue("X", 1))
	require.Equal(t, "P(Y | X=0)", tm.String(), "duplicate observation on X keeps the first value")
}

func TestEqualityIgnoresInputOrder(t *testing.T) {
	a := term.New(term.BareVar("Y"), term.Do("X"), term.Obs("W"))
	b := term.New(term.BareVar("Y"), term.Obs("W"), term.Do("X"))
	require.True(t, a.Equal(b))
	require.Equal(t, a.CanonicalKey(), b.CanonicalKey())
}

func TestDistinctValuesAreNotEqual(t *testing.T) {
	a := term.New(term.BareVar("Y"), term.ObsValue("Z", 0))
	b := term.New(term.BareVar("Y"), term.ObsValue("Z", 1))
	require.False(t, a.Equal(b))
	require.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())
}

func TestNoConditionsRendersBareOutcome(t *testing.T) {
	tm := term.New(term.BareVar("Y"))
	require.Equal(t, "P(Y)", tm.String())
}

func TestSubAndAsSubtractionPair(t *testing.T) {
	a := term.New(term.BareVar("Y"), term.DoValue("X", 1))
	b := term.New(term.BareVar("Y"), term.DoValue("X", 0))
	e := term.Sub(a, b)

	gotA, gotB, ok := term.AsSubtractionPair(e)
	require.True(t, ok)
	if diff := cmp.Diff(a, gotA.(*term.Term), cmp.AllowUnexported(term.Term{})); diff != "" {
		t.Errorf("left operand mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b, gotB.(*term.Term), cmp.AllowUnexported(term.Term{})); diff != "" {
		t.Errorf("right operand mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "P(Y | do(X=1)) - P(Y | do(X=0))", term.String(e))
}
