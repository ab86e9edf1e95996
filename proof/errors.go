package proof

import "errors"

// ErrUnsupportedExpression is returned by FindProof unless start and target
// are both a *term.Term or both have the subtraction shape built by term.Sub
// (§7).
var ErrUnsupportedExpression = errors.New("proof: unsupported expression shape")

// ErrMixedATEOperands is returned by FindProof when start and target are
// both subtractions but one of their four operands is not a *term.Term (§7:
// "Mixed-kind ATE operands ... fails with TypeError").
var ErrMixedATEOperands = errors.New("proof: subtraction operands must both be terms")
