// Package dsep implements the d-separation oracle: given a dag.Graph and two
// vertices s, t, and a conditioning set Z, IsDSeparated decides whether every
// path between s and t is blocked given Z.
//
// Algorithm (ancestral moralization, §4.1 of the spec):
//
//  1. If s == t, not separated.
//  2. If s or t is absent from the graph, vacuously separated.
//  3. Compute the ancestral closure A of {s,t} ∪ Z.
//  4. Form the induced subgraph G[A].
//  5. Moralize: skeleton of G[A] plus an edge between every pair of distinct
//     co-parents (parents of a common child) in G[A].
//  6. Remove every vertex in Z from the moral graph, s and t included if they
//     happen to be in Z.
//  7. s and t are d-separated iff no path connects them in what remains.
//
// This is the textbook definition and is equivalent to the open-path/collider
// characterization; it is deliberately not implemented as an ad-hoc
// open-path walker so that the moralization step (and its handling of
// colliders) stays exactly as specified. Complexity: O(|V|+|E|) per query.
package dsep
