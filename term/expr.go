package term

// Expr is the broader arithmetic algebra a Term lives inside: Sum, Neg, and
// Product let composed expressions (sums, differences, products) pass
// through the system unexamined. Only *Term and the Sub pattern built from
// Sum+Neg are interpreted by package proof (§3.5).
type Expr interface {
	isExpr()
}

// Sum represents the addition of one or more expressions. A difference is
// represented as Sum{A, Neg{B}} — see Sub and AsSubtractionPair.
type Sum struct {
	Terms []Expr
}

func (*Sum) isExpr() {}

// Neg represents the unary negation of an expression (scalar product by
// -1), used to encode subtraction within a Sum.
type Neg struct {
	X Expr
}

func (*Neg) isExpr() {}

// Product represents the product of one or more expressions.
type Product struct {
	Factors []Expr
}

func (*Product) isExpr() {}

// Sub builds the expression A - B as Sum{A, Neg{B}}.
func Sub(a, b Expr) Expr {
	return &Sum{Terms: []Expr{a, &Neg{X: b}}}
}

// AsSubtractionPair returns (A, B, true) if e has the shape Sum{A, Neg{B}}
// (in either term order) produced by Sub, or (nil, nil, false) otherwise.
// Both A and B may be any Expr; callers that need the ATE (ascii: A-B of
// two Terms) restriction check the concrete type themselves.
func AsSubtractionPair(e Expr) (Expr, Expr, bool) {
	sum, ok := e.(*Sum)
	if !ok || len(sum.Terms) != 2 {
		return nil, nil, false
	}
	a, b := sum.Terms[0], sum.Terms[1]
	if neg, ok := b.(*Neg); ok {
		return a, neg.X, true
	}
	if neg, ok := a.(*Neg); ok {
		return b, neg.X, true
	}

	return nil, nil, false
}
