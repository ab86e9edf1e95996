// Package dag holds the causal directed graph that the rest of doverifier
// reasons over: a finite set of variable names connected by parent→child
// edges, plus the two structural mutators (Bar, Underline) that the
// do-calculus rules apply before handing the result to the d-separation
// oracle.
//
// A Graph is immutable once built. Build repairs cycles deterministically
// (removing, for each detected simple cycle, the edge from the cycle's last
// vertex back to its first) and reports what it removed through an optional
// logging collaborator — it never fails on cyclic input.
//
// Bar, Underline, and the InducedSubgraph helper used by the dsep package
// always return a fresh Graph, and the ancestor helpers a fresh set; the
// receiver is never mutated.
//
// Complexity: construction and every mutator is O(V+E).
package dag
