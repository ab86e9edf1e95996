// Package rules implements the three do-calculus rule enumerators. Given a
// term.Term and the dag.Graph it is interpreted against, Rule1, Rule2, and
// Rule3 each return every distinct one-step successor valid under that rule
// (§4.3 of the spec):
//
//   - Rule1 (removing an observation): for each observed W, drop it if Y is
//     d-separated from W given the rest, in G barred on all interventions.
//   - Rule2 (action/observation exchange): for each intervened Z, convert it
//     to an observation if Y is d-separated from Z given the rest, in G
//     barred on the other interventions and underlined on Z.
//   - Rule3 (removing an intervention): for each intervened Z, drop it if Y
//     is d-separated from Z given the rest, in G barred on the other
//     interventions and, when Z is not an ancestor of any observed
//     variable, additionally barred on Z itself.
//
// Successors are returned sorted by the affected condition's variable name
// and deduplicated by term.Term.CanonicalKey, matching the determinism and
// soundness properties in §4.3/§8. A panic from the d-separation oracle on
// a pathological graph is recovered and the offending candidate is skipped
// (logged at Debug) rather than aborting the whole enumeration — §7's
// "rule-enumeration internal failure" policy.
package rules
