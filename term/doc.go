// Package term implements the causal-probability expression algebra: a
// Term represents P(Y | c1, ..., cn), where Y is an outcome (a bare
// variable or an equality V=v) and each ci is either an intervention
// do(V)/do(V=v) or an observation V/V=v. Conditions are canonicalized at
// construction — duplicates on the same variable+kind coalesce (first one
// wins), and the remaining set is ordered interventions-before-observations,
// then lexicographically by variable and value — so two Terms are equal iff
// their canonical forms are equal (§3.3-3.4 of the spec).
//
// Expr is the broader algebra Term sits inside: Sum, Neg, and Product let a
// parser collaborator build arithmetic compositions of Terms (§3.5). The
// proof-search core only ever inspects a bare *Term or the restricted
// A-minus-B shape produced by Sub; richer algebra passes through this
// package unexamined.
//
// CanonicalKey (key.go) and String (render.go) give the stable hashing and
// display surfaces used by package proof for BFS memoization and by any
// caller that needs to print a Term.
package term
