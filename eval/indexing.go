package eval

import (
	"stekk/ast"
	"stekk/value"
)

func resolveAt(idx int64, length int) (int, bool) {
	i := int(idx)
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

// index implements Index(target, index) dispatch per spec §4.2.
func (e *Environment) index(target, idx value.Value) value.Value {
	switch t := target.(type) {
	case *value.List:
		if i, ok := idx.(value.Int); ok {
			v, ok := t.Get(i.Val)
			if !ok {
				return value.T
			}
			return v
		}
		if lo, hi, ok := sliceBounds(idx); ok {
			return t.Slice(lo, hi)
		}
		return value.T

	case value.Tuple:
		if i, ok := idx.(value.Int); ok {
			v, ok := t.Get(i.Val)
			if !ok {
				return value.T
			}
			return v
		}
		if lo, hi, ok := sliceBounds(idx); ok {
			return t.Slice(lo, hi)
		}
		return value.T

	case value.Str:
		i, ok := idx.(value.Int)
		if !ok {
			return value.T
		}
		runes := t.Runes()
		j, ok := resolveAt(i.Val, len(runes))
		if !ok {
			return value.T
		}
		return value.NewStr(string(runes[j]))

	case *value.CodeBlock:
		if i, ok := idx.(value.Int); ok {
			j, ok := resolveAt(i.Val, len(t.Stmts))
			if !ok {
				return value.T
			}
			if ex, ok := t.Stmts[j].(ast.Expr); ok {
				return e.Eval(ex)
			}
			return value.N
		}
		if c, ok := idx.(value.Const); ok {
			for k := len(t.Stmts) - 1; k >= 0; k-- {
				assign, ok := t.Stmts[k].(*ast.AssignStmt)
				if !ok {
					continue
				}
				name, ok := assign.Lvalue.(*ast.LvalueName)
				if ok && name.Name == c.Name {
					return e.Eval(assign.Expr)
				}
			}
			return value.N
		}
		return value.T

	default:
		return value.T
	}
}

// sliceBounds recognizes a two-integer Tuple index as a half-open slice
// bound, per spec §4.2's "Tuple index of two integers" rule.
func sliceBounds(idx value.Value) (int64, int64, bool) {
	tup, ok := idx.(value.Tuple)
	if !ok || len(tup.Elems) != 2 {
		return 0, 0, false
	}
	lo, ok1 := tup.Elems[0].(value.Int)
	hi, ok2 := tup.Elems[1].(value.Int)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return lo.Val, hi.Val, true
}

// setIndex implements LvalueIndex's mutation; only a List target with
// an Int index is a structurally valid assignment target.
func (e *Environment) setIndex(target, idx, v value.Value) bool {
	lst, ok := target.(*value.List)
	if !ok {
		return false
	}
	i, ok := idx.(value.Int)
	if !ok {
		return false
	}
	return lst.Set(i.Val, v)
}

// expandRegion implements the `@region` form of spec §4.2: a Tuple or
// List of (x_spec, y_spec) pairs expands, per pair, to the Cartesian
// product of each spec's integer set, concatenated across pairs.
//
// The spec leaves the behavior on a malformed region (wrong arity,
// non-pair elements) unspecified; this resolves it leniently rather
// than as a fourth fatal-error kind — see DESIGN.md.
func (e *Environment) expandRegion(region value.Value) value.Value {
	var pairs []value.Value
	switch r := region.(type) {
	case value.Tuple:
		pairs = r.Elems
	case *value.List:
		pairs = r.Elems
	default:
		return value.NewList(nil)
	}

	out := []value.Value{}
	for _, p := range pairs {
		tup, ok := p.(value.Tuple)
		if !ok || len(tup.Elems) != 2 {
			continue
		}
		xs := expandSpec(tup.Elems[0])
		ys := expandSpec(tup.Elems[1])
		for _, px := range xs {
			for _, py := range ys {
				out = append(out, value.NewTuple([]value.Value{value.NewInt(px), value.NewInt(py)}))
			}
		}
	}
	return value.NewList(out)
}

// expandSpec expands one region axis spec (int, Range, or nested List)
// to a flat slice of integers, swapping Range endpoints if reversed.
func expandSpec(v value.Value) []int64 {
	switch t := v.(type) {
	case value.Int:
		return []int64{t.Val}
	case value.Range:
		left, right := t.Expand()
		out := make([]int64, 0, right-left+1)
		for i := left; i <= right; i++ {
			out = append(out, i)
		}
		return out
	case *value.List:
		var out []int64
		for _, el := range t.Elems {
			out = append(out, expandSpec(el)...)
		}
		return out
	default:
		return nil
	}
}
