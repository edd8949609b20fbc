// Package eval implements the tree-walking evaluator: the Environment
// (name table, operand stack, operation budget, history ring buffer)
// and the recursive evaluation of every AST node kind against it.
package eval

import (
	"stekk/builtins"
	"stekk/value"
)

const historyCap = 32

// Environment holds everything an interpretation session needs: the
// name table, the operand stack, operation accounting, and the I/O
// sinks injected by the host. It implements value.EnvOps so built-in
// words with Direct functions can reach it without an import cycle.
type Environment struct {
	Names map[string]value.Value
	stack *value.List

	OpCount uint64
	OpLimit uint64

	history [][]value.Value // ring buffer, most recent last

	LastResult value.Value

	printer func(string)
	reader  func() (string, error)
}

// NewEnvironment creates an Environment pre-populated with a copy of
// the global built-in word table (spec §3.3), ready to execute
// statements against.
func NewEnvironment(printer func(string), reader func() (string, error), opLimit uint64) *Environment {
	if printer == nil {
		printer = func(string) {}
	}
	if reader == nil {
		reader = func() (string, error) { return "", nil }
	}
	env := &Environment{
		Names:   make(map[string]value.Value),
		stack:   value.NewList(nil),
		OpLimit: opLimit,
		printer: printer,
		reader:  reader,
	}
	builtins.Install(env.Names)
	return env
}

// RegisterOp counts one primitive operation, snapshots the stack into
// the history ring buffer, and raises a fatal error if OpLimit is
// exceeded. Every primitive — name lookup, name assignment, stack push,
// stack pop, invocation, statement step — goes through this (spec §5).
func (e *Environment) RegisterOp() {
	e.history = append(e.history, e.stack.Snapshot())
	if len(e.history) > historyCap {
		e.history = e.history[len(e.history)-historyCap:]
	}
	e.OpCount++
	if e.OpCount > e.OpLimit {
		panic(fatalSignal{Fatal(OpLimitExceeded, "too many operations")})
	}
}

// History returns the ring buffer of recent stack snapshots, most
// recent last, for introspection tooling.
func (e *Environment) History() [][]value.Value { return e.history }

// Stack returns the live operand stack. Mutating it (e.g. via the
// `__stack` built-in's returned reference) mutates the environment's
// real stack.
func (e *Environment) Stack() *value.List { return e.stack }

// StackLen reports the operand stack's current depth without counting
// an operation (the Stack form's empty-stack check and `grab` use it).
func (e *Environment) StackLen() int { return e.stack.Len() }

// Push registers one operation and pushes v onto the operand stack.
func (e *Environment) Push(v value.Value) {
	e.RegisterOp()
	e.stack.Append(v)
}

// Pop registers one operation and pops the operand stack, returning
// $N when the stack is empty rather than failing (spec §4.3's adapter
// relies on this to pad deficient arguments).
func (e *Environment) Pop() value.Value {
	e.RegisterOp()
	if v, ok := e.stack.PopLast(); ok {
		return v
	}
	return value.N
}

// GetName registers one operation and looks up name.
func (e *Environment) GetName(name string) (value.Value, bool) {
	e.RegisterOp()
	v, ok := e.Names[name]
	return v, ok
}

// SetName registers one operation and binds name.
func (e *Environment) SetName(name string, v value.Value) {
	e.RegisterOp()
	e.Names[name] = v
}

// Print calls the injected printer sink.
func (e *Environment) Print(s string) { e.printer(s) }

// Read calls the injected reader sink.
func (e *Environment) Read() (string, error) { return e.reader() }

// FailIO aborts the current invocation fatally with an IOFailure error
// (spec §7's third error surface — used by the `import` built-in when
// the target file can't be read or parsed, and by `read` when the
// reader sink returns an error).
func (e *Environment) FailIO(message string) {
	panic(fatalSignal{Fatal(IOFailure, message)})
}
