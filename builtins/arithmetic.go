package builtins

import "stekk/value"

// numeric reports whether v is Int or Float, and its value as both a
// (possibly meaningless) int64 and a float64 — used to implement the
// "mixed Integer/Float promotes to Float" rule of spec §4.3.
func numeric(v value.Value) (isInt bool, i int64, f float64, ok bool) {
	switch t := v.(type) {
	case value.Int:
		return true, t.Val, float64(t.Val), true
	case value.Float:
		return false, 0, t.Val, true
	default:
		return false, 0, 0, false
	}
}

func boolInt(b bool) value.Value {
	if b {
		return value.NewInt(1)
	}
	return value.NewInt(0)
}

// arith applies intOp when both operands are Int (intOp may refuse,
// e.g. division by zero), otherwise promotes both to Float and applies
// floatOp.
func arith(a, b value.Value, intOp func(a, b int64) (int64, bool), floatOp func(a, b float64) float64) (value.Value, bool) {
	aInt, ai, af, aok := numeric(a)
	bInt, bi, bf, bok := numeric(b)
	if !aok || !bok {
		return nil, false
	}
	if aInt && bInt {
		r, ok := intOp(ai, bi)
		if !ok {
			return nil, false
		}
		return value.NewInt(r), true
	}
	return value.NewFloat(floatOp(af, bf)), true
}

func floorDiv(a, b int64) (int64, bool) {
	if b == 0 {
		return 0, false
	}
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q, true
}

func compareNumeric(a, b value.Value) (int, bool) {
	_, _, af, aok := numeric(a)
	_, _, bf, bok := numeric(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

func registerArithmetic() {
	registerPure("+", 2, "a b -- a+b", func(args []value.Value) ([]value.Value, bool) {
		r, ok := arith(args[0], args[1],
			func(a, b int64) (int64, bool) { return a + b, true },
			func(a, b float64) float64 { return a + b })
		if !ok {
			return nil, false
		}
		return []value.Value{r}, true
	})
	registerPure("-", 2, "a b -- a-b", func(args []value.Value) ([]value.Value, bool) {
		r, ok := arith(args[0], args[1],
			func(a, b int64) (int64, bool) { return a - b, true },
			func(a, b float64) float64 { return a - b })
		if !ok {
			return nil, false
		}
		return []value.Value{r}, true
	})
	registerPure("*", 2, "a b -- a*b", func(args []value.Value) ([]value.Value, bool) {
		r, ok := arith(args[0], args[1],
			func(a, b int64) (int64, bool) { return a * b, true },
			func(a, b float64) float64 { return a * b })
		if !ok {
			return nil, false
		}
		return []value.Value{r}, true
	})
	registerPure("/f", 2, "a b -- a/b (float)", func(args []value.Value) ([]value.Value, bool) {
		_, _, af, aok := numeric(args[0])
		_, _, bf, bok := numeric(args[1])
		if !aok || !bok {
			return nil, false
		}
		return []value.Value{value.NewFloat(af / bf)}, true
	})
	registerPure("/i", 2, "a b -- a div b (floor)", func(args []value.Value) ([]value.Value, bool) {
		a, ok1 := args[0].(value.Int)
		b, ok2 := args[1].(value.Int)
		if !ok1 || !ok2 {
			return nil, false
		}
		q, ok := floorDiv(a.Val, b.Val)
		if !ok {
			return nil, false
		}
		return []value.Value{value.NewInt(q)}, true
	})
	registerPure("=", 2, "a b -- a==b", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{boolInt(args[0].Equal(args[1]))}, true
	})
	registerPure("!=", 2, "a b -- a!=b", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{boolInt(!args[0].Equal(args[1]))}, true
	})
	registerPure("<", 2, "a b -- a<b", func(args []value.Value) ([]value.Value, bool) {
		c, ok := compareNumeric(args[0], args[1])
		if !ok {
			return nil, false
		}
		return []value.Value{boolInt(c < 0)}, true
	})
	registerPure(">", 2, "a b -- a>b", func(args []value.Value) ([]value.Value, bool) {
		c, ok := compareNumeric(args[0], args[1])
		if !ok {
			return nil, false
		}
		return []value.Value{boolInt(c > 0)}, true
	})
	registerPure("<=", 2, "a b -- a<=b", func(args []value.Value) ([]value.Value, bool) {
		c, ok := compareNumeric(args[0], args[1])
		if !ok {
			return nil, false
		}
		return []value.Value{boolInt(c <= 0)}, true
	})
	registerPure(">=", 2, "a b -- a>=b", func(args []value.Value) ([]value.Value, bool) {
		c, ok := compareNumeric(args[0], args[1])
		if !ok {
			return nil, false
		}
		return []value.Value{boolInt(c >= 0)}, true
	})
	registerPure("and", 2, "a b -- a&&b", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{boolInt(args[0].Truthy() && args[1].Truthy())}, true
	})
	registerPure("or", 2, "a b -- a||b", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{boolInt(args[0].Truthy() || args[1].Truthy())}, true
	})
	registerPure("not", 1, "a -- !a", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{boolInt(!args[0].Truthy())}, true
	})
}
