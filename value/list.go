package value

import "strings"

// List is the mutable, ordered sequence variant. Its identity is the
// pointer: copies of a List value share the same backing elements, so
// indexed assignment and the stack's own representation (see Stack())
// are observed by every holder, per the sharing rule in spec §5.
type List struct {
	Elems []Value
}

// NewList constructs a List wrapping the given elements directly (no
// copy) so callers that built the slice keep a live view into it.
func NewList(elems []Value) *List {
	if elems == nil {
		elems = []Value{}
	}
	return &List{Elems: elems}
}

func (l *List) Kind() Kind     { return KindList }
func (l *List) Truthy() bool   { return len(l.Elems) > 0 }
func (l *List) Len() int       { return len(l.Elems) }

func (l *List) String() string {
	parts := make([]string, len(l.Elems))
	for i, v := range l.Elems {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Equal(other Value) bool {
	o, ok := other.(*List)
	if !ok || len(l.Elems) != len(o.Elems) {
		return false
	}
	for i := range l.Elems {
		if !l.Elems[i].Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// resolveIndex maps a possibly-negative surface index against a
// collection of the given length, 0-based, per spec §4.2. The second
// return is false when the index is out of range.
func resolveIndex(idx int64, length int) (int, bool) {
	i := int(idx)
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

// Get returns the element at a 0-based, negative-from-end index.
func (l *List) Get(idx int64) (Value, bool) {
	i, ok := resolveIndex(idx, len(l.Elems))
	if !ok {
		return nil, false
	}
	return l.Elems[i], true
}

// Set mutates the element at idx in place (observable through every
// holder of this *List).
func (l *List) Set(idx int64, v Value) bool {
	i, ok := resolveIndex(idx, len(l.Elems))
	if !ok {
		return false
	}
	l.Elems[i] = v
	return true
}

// Slice returns a new List holding the half-open range [lo, hi), per
// the Index(target, Tuple(lo,hi)) slicing rule in spec §4.2.
func (l *List) Slice(lo, hi int64) *List {
	n := int64(len(l.Elems))
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return NewList(nil)
	}
	out := make([]Value, hi-lo)
	copy(out, l.Elems[lo:hi])
	return NewList(out)
}

// Push returns a new list (functional `push` builtin semantics) with x
// appended; the receiver is left untouched.
func (l *List) Push(x Value) *List {
	out := make([]Value, len(l.Elems)+1)
	copy(out, l.Elems)
	out[len(l.Elems)] = x
	return NewList(out)
}

// Append mutates the receiver in place, used for the live operand stack
// (Environment.Push) where identity must be preserved across pushes.
func (l *List) Append(x Value) {
	l.Elems = append(l.Elems, x)
}

// PopLast removes and returns the last element, used for the live
// operand stack (Environment.Pop).
func (l *List) PopLast() (Value, bool) {
	n := len(l.Elems)
	if n == 0 {
		return nil, false
	}
	v := l.Elems[n-1]
	l.Elems = l.Elems[:n-1]
	return v, true
}

// Reversed returns a new List with elements in reverse order.
func (l *List) Reversed() *List {
	out := make([]Value, len(l.Elems))
	for i, v := range l.Elems {
		out[len(l.Elems)-1-i] = v
	}
	return NewList(out)
}

// Snapshot returns a shallow copy of the current elements, used by the
// Environment's history ring buffer so later mutation of the live stack
// doesn't retroactively change an earlier snapshot.
func (l *List) Snapshot() []Value {
	out := make([]Value, len(l.Elems))
	copy(out, l.Elems)
	return out
}
