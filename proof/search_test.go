package proof_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hepaul7/doverifier/dag"
	"github.com/Hepaul7/doverifier/proof"
	"github.com/Hepaul7/doverifier/term"
)

func TestFindProof_Identity(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}})
	start := term.New(term.BareVar("Y"), term.Do("X"))

	res, err := proof.FindProof(start, start, g)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotNil(t, res.Proof)
	require.Empty(t, res.Proof)
}

func TestFindProof_Rule2OneStep(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}, "Z": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"), term.Do("Z"))
	target := term.New(term.BareVar("Y"), term.Do("X"), term.Obs("Z"))

	res, err := proof.FindProof(start, target, g)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Proof, 1)
	require.Equal(t, proof.RuleTwo, res.Proof[0].Rule)
	require.True(t, res.Proof[0].Term.Equal(target))
}

func TestFindProof_Rule2BlockedByConfounding(t *testing.T) {
	g := dag.Build(map[string][]string{"U": {"Z", "Y"}})
	start := term.New(term.BareVar("Y"), term.Do("Z"))
	target := term.New(term.BareVar("Y"), term.Obs("Z"))

	res, err := proof.FindProof(start, target, g)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestFindProof_Rule1DropsIrrelevantObservation(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}, "W": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"), term.Obs("W"))
	target := term.New(term.BareVar("Y"), term.Do("X"))

	res, err := proof.FindProof(start, target, g)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Proof, 1)
	require.Equal(t, proof.RuleOne, res.Proof[0].Rule)
}

func TestFindProof_Rule3DeletesIrrelevantIntervention(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {}, "Z": {}, "Y": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"), term.Do("Z"))
	target := term.New(term.BareVar("Y"), term.Do("X"))

	res, err := proof.FindProof(start, target, g)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Proof, 1)
	require.Equal(t, proof.RuleThree, res.Proof[0].Rule)
}

func TestFindProof_MixedTwoStep(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {}, "Z": {}, "W": {}, "Y": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"), term.Do("Z"), term.Obs("W"))
	target := term.New(term.BareVar("Y"), term.Do("X"), term.Obs("Z"))

	res, err := proof.FindProof(start, target, g)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Proof, 2)
	require.True(t, res.Proof[len(res.Proof)-1].Term.Equal(target))

	var sawRule1, sawRule2 bool
	for _, step := range res.Proof {
		switch step.Rule {
		case proof.RuleOne:
			sawRule1 = true
		case proof.RuleTwo:
			sawRule2 = true
		}
	}
	require.True(t, sawRule1, "expected a Rule 1 step in the proof")
	require.True(t, sawRule2, "expected a Rule 2 step in the proof")
}

func TestFindProof_ATETermwise(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}})
	start := term.Sub(
		term.New(term.BareVar("Y"), term.DoValue("X", 1)),
		term.New(term.BareVar("Y"), term.DoValue("X", 0)),
	)

	res, err := proof.FindProof(start, start, g)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotNil(t, res.ATE)
	require.Empty(t, res.ATE.Left)
	require.Empty(t, res.ATE.Right)
}

func TestFindProof_ATESwapIsNotAProof(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}})
	start := term.Sub(
		term.New(term.BareVar("Y"), term.DoValue("X", 1)),
		term.New(term.BareVar("Y"), term.DoValue("X", 0)),
	)
	target := term.Sub(
		term.New(term.BareVar("Y"), term.DoValue("X", 0)),
		term.New(term.BareVar("Y"), term.DoValue("X", 1)),
	)

	res, err := proof.FindProof(start, target, g)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestFindProof_DepthBound(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}, "Z": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"), term.Do("Z"))
	target := term.New(term.BareVar("Y"), term.Do("X"), term.Obs("Z"))

	res, err := proof.FindProof(start, target, g, proof.WithMaxDepth(0))
	require.NoError(t, err)
	require.Nil(t, res)

	res, err = proof.FindProof(start, target, g, proof.WithMaxDepth(1))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Proof, 1)
}

func TestFindProof_CannotAddACondition(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}, "Z": {}})
	start := term.New(term.BareVar("Y"), term.Do("X"))
	target := term.New(term.BareVar("Y"), term.Do("X"), term.Obs("Z"))

	res, err := proof.FindProof(start, target, g)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestFindProof_UnsupportedExpressionShape(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}})
	start := term.New(term.BareVar("Y"), term.Do("X"))
	product := &term.Product{Factors: []term.Expr{start}}

	_, err := proof.FindProof(start, product, g)
	require.ErrorIs(t, err, proof.ErrUnsupportedExpression)
}

func TestFindProof_MixedATEOperandsIsAnError(t *testing.T) {
	g := dag.Build(map[string][]string{"X": {"Y"}})
	a := term.New(term.BareVar("Y"), term.Do("X"))
	notATerm := &term.Sum{Terms: []term.Expr{a}}
	start := term.Sub(a, notATerm)
	target := term.Sub(a, a)

	_, err := proof.FindProof(start, target, g)
	require.ErrorIs(t, err, proof.ErrMixedATEOperands)
}
