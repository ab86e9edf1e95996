// Package proof implements the breadth-first search that decides whether
// one causal expression can be rewritten into another using a bounded
// sequence of do-calculus rule applications (§4.4).
//
// FindProof handles two expression shapes: a single term.Term, matched by
// structural equivalence or by term.Term.CanonicalKey; and a subtraction
// A − B of two terms (the average treatment effect form), which is proved
// by running the single-term search independently on the left and right
// operands, in order. Explore instead enumerates every term reachable from
// a start term within a depth bound.
//
// The search is single-threaded and pure: every step builds a new
// term.Term, the frontier and visited set live only inside one FindProof or
// Explore call, and nothing here retains state across calls. Rule order
// (Rule1, then Rule2, then Rule3) only affects which shortest proof is
// returned when several exist at the same depth, never whether one is
// found, since all three enumerators are always consulted at every state.
package proof
