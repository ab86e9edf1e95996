// Package doverifier is a symbolic proof search engine for Pearl's
// do-calculus. Given a causal directed acyclic graph and two expressions
// involving interventional and observational probabilities, it decides
// whether one can be rewritten into the other through a bounded sequence of
// do-calculus rule applications, and returns a witness proof.
//
// The module is organized as:
//
//	dag/    — the causal graph store: construction with deterministic
//	          cycle repair, ancestor/reachability queries, and the Bar/
//	          Underline mutators the rules apply before testing d-separation.
//	dsep/   — the d-separation oracle: ancestral closure, moralization,
//	          and an undirected path check.
//	term/   — the causal-probability expression algebra: canonical terms,
//	          conditions, outcomes, and the Sum/Neg/Product algebra a term
//	          can be composed into.
//	rules/  — the three do-calculus rule enumerators (Rule1, Rule2, Rule3),
//	          each returning every valid one-step rewrite of a term.
//	proof/  — breadth-first proof search over rewrite states, including the
//	          average-treatment-effect (A-B) decomposition and exhaustive
//	          reachable-state enumeration.
//
// A parser that turns surface syntax into term.Term values, and a
// human-readable suggestion layer built on top of the proof core, are
// deliberately out of scope; see DESIGN.md.
package doverifier
