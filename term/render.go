package term

import "strings"

// String renders t using the canonical rendering rules of §6: bare outcome
// or V=v; do(V) or do(V=v) for interventions; V or V=v for observations;
// "P(Y)" when there are no conditions, else "P(Y | c1, ..., cn)" with
// conditions in their canonical order.
func (t *Term) String() string {
	out := renderOutcome(t.outcome)
	if len(t.conditions) == 0 {
		return "P(" + out + ")"
	}
	parts := make([]string, len(t.conditions))
	for i, c := range t.conditions {
		parts[i] = renderCondition(c)
	}

	return "P(" + out + " | " + strings.Join(parts, ", ") + ")"
}

func renderOutcome(o Outcome) string {
	if o.HasValue {
		return o.Var + "=" + o.valueString()
	}

	return o.Var
}

func renderCondition(c Condition) string {
	if c.Kind == Intervention {
		if c.HasValue {
			return "do(" + c.Var + "=" + c.valueString() + ")"
		}

		return "do(" + c.Var + ")"
	}
	if c.HasValue {
		return c.Var + "=" + c.valueString()
	}

	return c.Var
}

// String renders a general Expr: a Term renders via its own String; Neg
// prefixes with "-"; a Sum with the subtraction shape recognized by
// AsSubtractionPair (as built by Sub) renders as "A - B", and any other Sum
// joins with " + "; Product joins with " * ".
func String(e Expr) string {
	switch v := e.(type) {
	case *Term:
		return v.String()
	case *Neg:
		return "-" + String(v.X)
	case *Sum:
		if a, b, ok := AsSubtractionPair(e); ok {
			return String(a) + " - " + String(b)
		}
		parts := make([]string, len(v.Terms))
		for i, sub := range v.Terms {
			parts[i] = String(sub)
		}

		return strings.Join(parts, " + ")
	case *Product:
		parts := make([]string, len(v.Factors))
		for i, f := range v.Factors {
			parts[i] = String(f)
		}

		return strings.Join(parts, " * ")
	default:
		return ""
	}
}
