package value

// PureFunc is a fixed-arity native routine already receiving its
// arguments in surface (left-to-right) order. It returns the ordered
// results to push, or ok=false if it hit a domain/type error (the
// calling adapter then pushes the T sentinel instead, per spec §4.1).
type PureFunc func(args []Value) (results []Value, ok bool)

// DirectFunc is a native routine that manages the stack (and, for a
// handful of words, the name table or I/O sinks) itself rather than
// going through the arity-based adapter — spec §4.1's "variable-arity
// built-ins bypass the adapter" clause, generalized to the handful of
// fixed-arity words (read, print, foreach, ...) that also need direct
// Environment access.
type DirectFunc func(env EnvOps)

// BuiltinWord is a reference into the built-in word table: a name,
// declared arity (-1 for variable/self-managing), help text, and
// exactly one of Pure or Direct.
type BuiltinWord struct {
	Name   string
	Arity  int
	Help   string
	Pure   PureFunc
	Direct DirectFunc
}

func (w *BuiltinWord) Kind() Kind     { return KindBuiltinWord }
func (w *BuiltinWord) Truthy() bool   { return true }
func (w *BuiltinWord) String() string { return "built-in function " + w.Name }

func (w *BuiltinWord) Equal(other Value) bool {
	o, ok := other.(*BuiltinWord)
	return ok && w.Name == o.Name
}
