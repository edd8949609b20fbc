package builtins

import "stekk/value"

func registerIO() {
	registerDirect("read", "-- s", func(env value.EnvOps) {
		s, err := env.Read()
		if err != nil {
			env.FailIO(err.Error())
			return
		}
		env.Push(value.NewStr(s))
	})

	registerDirect("print", "x --", func(env value.EnvOps) {
		v := env.Pop()
		env.Print(v.String())
	})

	registerDirect("println", "x --", func(env value.EnvOps) {
		v := env.Pop()
		env.Print(v.String() + "\n")
	})
}
