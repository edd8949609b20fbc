package builtins

import (
	"stekk/ast"
	"stekk/value"
)

func registerCollections() {
	registerDirect("grab", "$N v1 .. vk -- [vk .. v1]", func(env value.EnvOps) {
		grabbed := []value.Value{}
		for {
			v := env.Pop()
			if value.IsNone(v) {
				break
			}
			grabbed = append(grabbed, v)
			if env.StackLen() == 0 {
				break
			}
		}
		env.Push(value.NewList(grabbed))
	})

	registerDirect("bloat", "[a, b, .., c] -- $N c .. b a", func(env value.EnvOps) {
		v := env.Pop()
		lst, ok := v.(*value.List)
		if !ok {
			env.Push(value.T)
			return
		}
		env.Push(value.N)
		rev := lst.Reversed()
		for _, elem := range rev.Elems {
			env.Push(elem)
		}
	})

	registerPure("push", 2, "list x -- list'", func(args []value.Value) ([]value.Value, bool) {
		lst, ok := args[0].(*value.List)
		if !ok {
			return nil, false
		}
		return []value.Value{lst.Push(args[1])}, true
	})

	registerPure("last", 1, "x -- x[-1]", func(args []value.Value) ([]value.Value, bool) {
		switch t := args[0].(type) {
		case *value.List:
			v, ok := t.Get(-1)
			if !ok {
				return nil, false
			}
			return []value.Value{v}, true
		case value.Tuple:
			v, ok := t.Get(-1)
			if !ok {
				return nil, false
			}
			return []value.Value{v}, true
		case value.Str:
			runes := t.Runes()
			if len(runes) == 0 {
				return nil, false
			}
			return []value.Value{value.NewStr(string(runes[len(runes)-1]))}, true
		default:
			return nil, false
		}
	})

	registerPure("len", 1, "x -- |x|", func(args []value.Value) ([]value.Value, bool) {
		n, ok := length(args[0])
		if !ok {
			return nil, false
		}
		return []value.Value{value.NewInt(int64(n))}, true
	})

	registerPure("sum", 1, "list -- sum(list)", func(args []value.Value) ([]value.Value, bool) {
		lst, ok := args[0].(*value.List)
		if !ok {
			return nil, false
		}
		isFloat := false
		var total float64
		for _, el := range lst.Elems {
			isInt, _, f, ok := numeric(el)
			if !ok {
				return nil, false
			}
			if !isInt {
				isFloat = true
			}
			total += f
		}
		if isFloat {
			return []value.Value{value.NewFloat(total)}, true
		}
		return []value.Value{value.NewInt(int64(total))}, true
	})

	registerPure("rev", 1, "x -- reversed(x)", func(args []value.Value) ([]value.Value, bool) {
		switch t := args[0].(type) {
		case *value.List:
			return []value.Value{t.Reversed()}, true
		case value.Tuple:
			out := make([]value.Value, len(t.Elems))
			for i, v := range t.Elems {
				out[len(t.Elems)-1-i] = v
			}
			return []value.Value{value.NewTuple(out)}, true
		case value.Str:
			runes := t.Runes()
			out := make([]rune, len(runes))
			for i, r := range runes {
				out[len(runes)-1-i] = r
			}
			return []value.Value{value.NewStr(string(out))}, true
		default:
			return nil, false
		}
	})

	registerPure("contains", 2, "container item -- 0|1", func(args []value.Value) ([]value.Value, bool) {
		container, item := args[0], args[1]
		switch t := container.(type) {
		case *value.List:
			for _, el := range t.Elems {
				if el.Equal(item) {
					return []value.Value{boolInt(true)}, true
				}
			}
			return []value.Value{boolInt(false)}, true
		case value.Tuple:
			for _, el := range t.Elems {
				if el.Equal(item) {
					return []value.Value{boolInt(true)}, true
				}
			}
			return []value.Value{boolInt(false)}, true
		case value.Str:
			s, ok := item.(value.Str)
			if !ok {
				return nil, false
			}
			return []value.Value{boolInt(containsSubstring(t.Val, s.Val))}, true
		case value.Range:
			n, ok := item.(value.Int)
			if !ok {
				return nil, false
			}
			return []value.Value{boolInt(t.Contains(n.Val))}, true
		default:
			return nil, false
		}
	})

	registerPure("++", 2, "a b -- a concat b", func(args []value.Value) ([]value.Value, bool) {
		a, b := args[0], args[1]
		switch at := a.(type) {
		case *value.CodeBlock:
			bt, ok := b.(*value.CodeBlock)
			if !ok {
				return nil, false
			}
			stmts := make([]ast.Stmt, 0, len(at.Stmts)+len(bt.Stmts))
			stmts = append(stmts, at.Stmts...)
			stmts = append(stmts, bt.Stmts...)
			return []value.Value{value.NewCodeBlock(stmts)}, true
		case *value.List:
			bt, ok := b.(*value.List)
			if !ok {
				return nil, false
			}
			out := make([]value.Value, 0, len(at.Elems)+len(bt.Elems))
			out = append(out, at.Elems...)
			out = append(out, bt.Elems...)
			return []value.Value{value.NewList(out)}, true
		case value.Str:
			bt, ok := b.(value.Str)
			if !ok {
				return nil, false
			}
			return []value.Value{value.NewStr(at.Val + bt.Val)}, true
		default:
			return nil, false
		}
	})

	registerPure("--", 1, "block -- [CodeBlock([s]) for s in block]", func(args []value.Value) ([]value.Value, bool) {
		block, ok := args[0].(*value.CodeBlock)
		if !ok {
			return nil, false
		}
		out := make([]value.Value, len(block.Stmts))
		for i, stmt := range block.Stmts {
			out[i] = value.NewCodeBlock([]ast.Stmt{stmt})
		}
		return []value.Value{value.NewList(out)}, true
	})
}

func containsSubstring(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func length(v value.Value) (int, bool) {
	switch t := v.(type) {
	case *value.List:
		return t.Len(), true
	case value.Tuple:
		return t.Len(), true
	case value.Str:
		return len(t.Runes()), true
	case value.Range:
		left, right := t.Left, t.Right
		if right < left {
			return 0, true
		}
		return int(right-left) + 1, true
	case *value.CodeBlock:
		return len(t.Stmts), true
	default:
		return 0, false
	}
}
