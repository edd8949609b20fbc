package builtins

import "stekk/value"

func registerStackWords() {
	registerPure("dup", 1, "a -- a a", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{args[0], args[0]}, true
	})
	registerPure("drop", 1, "a --", func(args []value.Value) ([]value.Value, bool) {
		return nil, true
	})
	registerPure("swap", 2, "a b -- b a", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{args[1], args[0]}, true
	})
	registerPure("over", 2, "a b -- a b a", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{args[0], args[1], args[0]}, true
	})
	registerPure("rot", 3, "a b c -- c b a", func(args []value.Value) ([]value.Value, bool) {
		return []value.Value{args[2], args[1], args[0]}, true
	})
	registerPure("?", 1, "a -- a (or nothing if a==$N)", func(args []value.Value) ([]value.Value, bool) {
		if value.IsNone(args[0]) {
			return nil, true
		}
		return []value.Value{args[0]}, true
	})
	registerDirect("__stack", "-- stack", func(env value.EnvOps) {
		env.Push(env.Stack())
	})
}
