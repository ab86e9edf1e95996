package proof

import "github.com/Hepaul7/doverifier/term"

// Rule labels attached to a Step or returned by Explore, exactly as named
// in §4.4's "Rule labels in proofs".
const (
	RuleOne   = "Do-calculus Rule 1"
	RuleTwo   = "Do-calculus Rule 2"
	RuleThree = "Do-calculus Rule 3"
	Initial   = "Initial"
	ATELeft   = "ATE-left"
	ATERight  = "ATE-right"
)

// Step is one labeled rewrite in a proof: applying Rule to the previous
// term produced Term.
type Step struct {
	Rule string
	Term *term.Term
}

// Proof is a witness sequence of Steps. An empty, non-nil Proof means the
// start and target were already equivalent.
type Proof []Step

// ATEProof is the witness returned for an A−B (average treatment effect)
// query: the left operand's proof and the right operand's proof, found
// independently and in order (§4.4).
type ATEProof struct {
	Left  Proof
	Right Proof
}
