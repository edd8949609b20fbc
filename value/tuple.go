package value

import "strings"

// Tuple is the immutable, ordered sequence variant, produced by the
// syntactic comma form (a, b, c), by slicing a Tuple, and as the (x, y)
// pairs of `@region` expansion.
type Tuple struct {
	Elems []Value
}

// NewTuple constructs a Tuple value.
func NewTuple(elems []Value) Tuple {
	if elems == nil {
		elems = []Value{}
	}
	return Tuple{Elems: elems}
}

func (t Tuple) Kind() Kind   { return KindTuple }
func (t Tuple) Truthy() bool { return len(t.Elems) > 0 }
func (t Tuple) Len() int     { return len(t.Elems) }

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, v := range t.Elems {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) Equal(other Value) bool {
	o, ok := other.(Tuple)
	if !ok || len(t.Elems) != len(o.Elems) {
		return false
	}
	for i := range t.Elems {
		if !t.Elems[i].Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// Get returns the element at a 0-based, negative-from-end index.
func (t Tuple) Get(idx int64) (Value, bool) {
	i, ok := resolveIndex(idx, len(t.Elems))
	if !ok {
		return nil, false
	}
	return t.Elems[i], true
}

// Slice returns the half-open sub-tuple [lo, hi).
func (t Tuple) Slice(lo, hi int64) Tuple {
	n := int64(len(t.Elems))
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return NewTuple(nil)
	}
	out := make([]Value, hi-lo)
	copy(out, t.Elems[lo:hi])
	return NewTuple(out)
}
