// Package builtins populates the initial name table with the built-in
// word set of spec §4.3: a declarative table of (name, arity, help,
// routine) entries, each wrapped into a value.BuiltinWord by the
// uniform calling-convention adapter in package eval.
package builtins

import "stekk/value"

type entry struct {
	name   string
	arity  int
	help   string
	pure   value.PureFunc
	direct value.DirectFunc
}

var table []entry

// registerPure adds a fixed-arity word whose native routine is pure:
// it receives its arguments already reordered into surface (left-to-
// right) order and returns the ordered results to push, per the §4.1
// adapter.
func registerPure(name string, arity int, help string, fn value.PureFunc) {
	table = append(table, entry{name: name, arity: arity, help: help, pure: fn})
}

// registerDirect adds a word that manages the stack (and possibly the
// name table or I/O sinks) itself, bypassing the arity-based adapter —
// spec §4.1's variable-arity and environment-needing words.
func registerDirect(name string, help string, fn value.DirectFunc) {
	table = append(table, entry{name: name, arity: -1, help: help, direct: fn})
}

func init() {
	registerArithmetic()
	registerStackWords()
	registerCollections()
	registerStrings()
	registerIO()
	registerMeta()
	registerHashing()
}

// Install populates names with a fresh copy of the built-in word table
// (spec §3.3: "initially populated by a copy of the global built-in
// word table").
func Install(names map[string]value.Value) {
	for _, e := range table {
		names[e.name] = &value.BuiltinWord{
			Name:   e.name,
			Arity:  e.arity,
			Help:   e.help,
			Pure:   e.pure,
			Direct: e.direct,
		}
	}
}
