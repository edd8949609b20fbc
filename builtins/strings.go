package builtins

import (
	"strconv"
	"strings"

	"stekk/value"
)

func registerStrings() {
	registerPure("ord", 1, "s -- c1 c2 ..", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		runes := s.Runes()
		out := make([]value.Value, len(runes))
		for i, r := range runes {
			out[i] = value.NewInt(int64(r))
		}
		return out, true
	})

	registerPure("chr", 1, "n -- s", func(args []value.Value) ([]value.Value, bool) {
		n, ok := args[0].(value.Int)
		if !ok {
			return nil, false
		}
		return []value.Value{value.NewStr(string(rune(n.Val)))}, true
	})

	registerPure("str_join", 2, "sep list -- s", func(args []value.Value) ([]value.Value, bool) {
		sep, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		lst, ok := args[1].(*value.List)
		if !ok {
			return nil, false
		}
		parts := make([]string, len(lst.Elems))
		for i, el := range lst.Elems {
			parts[i] = el.String()
		}
		return []value.Value{value.NewStr(strings.Join(parts, sep.Val))}, true
	})

	registerPure("parse_int", 1, "x -- n|$E", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return []value.Value{value.E}, true
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s.Val), 10, 64)
		if err != nil {
			return []value.Value{value.E}, true
		}
		return []value.Value{value.NewInt(n)}, true
	})
}
