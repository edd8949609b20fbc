package builtins

import (
	"os"
	"path/filepath"
	"strings"

	"stekk/ast"
	"stekk/value"
)

// parseSource is set by cmd/stekk's wiring (or tests) to the parser
// package's entry point, avoiding a direct builtins -> parser import
// cycle risk and letting tests substitute a stub.
var parseSource func(source string) ([]ast.Stmt, error)

// SetParser installs the source-to-statements function `import` uses.
// Called once at program startup from cmd/stekk.
func SetParser(fn func(source string) ([]ast.Stmt, error)) {
	parseSource = fn
}

func registerMeta() {
	registerPure("as_src", 1, "block -- s", func(args []value.Value) ([]value.Value, bool) {
		block, ok := args[0].(*value.CodeBlock)
		if !ok {
			return nil, false
		}
		return []value.Value{value.NewStr(block.String())}, true
	})

	registerPure("help", 1, "fn -- s", func(args []value.Value) ([]value.Value, bool) {
		switch fn := args[0].(type) {
		case *value.BuiltinWord:
			return []value.Value{value.NewStr(fn.Help)}, true
		case *value.CodeBlock:
			return []value.Value{value.NewStr(fn.Help)}, true
		default:
			return nil, false
		}
	})

	registerPure("set_help", 2, "block s -- block", func(args []value.Value) ([]value.Value, bool) {
		block, ok := args[0].(*value.CodeBlock)
		if !ok {
			return nil, false
		}
		s, ok := args[1].(value.Str)
		if !ok {
			return nil, false
		}
		block.Help = s.Val
		return []value.Value{block}, true
	})

	registerDirect("eval", "value -- value'", func(env value.EnvOps) {
		v := env.Pop()
		block, ok := v.(*value.CodeBlock)
		if !ok {
			env.Push(v)
			return
		}
		env.Push(env.Invoke(block))
	})

	registerDirect("foreach", "iterable fn --", func(env value.EnvOps) {
		fn := env.Pop()
		iterable := env.Pop()
		for _, item := range iterableElements(iterable) {
			env.Push(item)
			env.Invoke(fn)
		}
	})

	registerDirect("set_default", "name value --", func(env value.EnvOps) {
		v := env.Pop()
		name := env.Pop()
		s, ok := name.(value.Str)
		if !ok {
			env.Push(value.T)
			return
		}
		if _, exists := env.GetName(s.Val); !exists {
			env.SetName(s.Val, v)
		}
	})

	registerDirect("import", "name -- block", func(env value.EnvOps) {
		v := env.Pop()
		name, ok := v.(value.Str)
		if !ok {
			env.Push(value.T)
			return
		}
		if parseSource == nil {
			env.FailIO("no parser installed for import")
			return
		}
		path := name.Val + ".stekk"
		contents, err := os.ReadFile(path)
		if err != nil {
			env.FailIO(err.Error())
			return
		}
		stmts, err := parseSource(string(contents))
		if err != nil {
			env.FailIO(err.Error())
			return
		}
		block := value.NewCodeBlock(stmts)
		base := strings.TrimSuffix(filepath.Base(name.Val), filepath.Ext(name.Val))
		env.SetName(base, block)
		env.Push(block)
	})
}

// iterableElements flattens any of the iterable runtime values into a
// plain slice for `foreach` to walk.
func iterableElements(v value.Value) []value.Value {
	switch t := v.(type) {
	case *value.List:
		return t.Elems
	case value.Tuple:
		return t.Elems
	case value.Str:
		runes := t.Runes()
		out := make([]value.Value, len(runes))
		for i, r := range runes {
			out[i] = value.NewStr(string(r))
		}
		return out
	case value.Range:
		var out []value.Value
		t.Iterate(func(i int64) bool {
			out = append(out, value.NewInt(i))
			return true
		})
		return out
	default:
		return nil
	}
}
