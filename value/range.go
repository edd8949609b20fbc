package value

import "fmt"

// Range carries two concrete integer endpoints, inclusive on both ends.
// Per §5 it is effectively value-typed (no shared mutable state), unlike
// List and CodeBlock.
type Range struct {
	Left, Right int64
}

// NewRange constructs a Range value.
func NewRange(left, right int64) Range { return Range{Left: left, Right: right} }

func (r Range) Kind() Kind     { return KindRange }
func (r Range) Truthy() bool   { return true }
func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Left, r.Right) }

func (r Range) Equal(other Value) bool {
	o, ok := other.(Range)
	return ok && r.Left == o.Left && r.Right == o.Right
}

// Contains reports membership: l <= x <= r, per spec §4.2.
func (r Range) Contains(x int64) bool {
	return r.Left <= x && x <= r.Right
}

// Iterate yields l, l+1, ..., r inclusive; yields nothing if Left > Right
// (plain iteration does not swap endpoints — only region expansion does).
func (r Range) Iterate(yield func(int64) bool) {
	for i := r.Left; i <= r.Right; i++ {
		if !yield(i) {
			return
		}
	}
}

// Expand returns the endpoints in ascending order, swapping them if
// necessary, for use in region-expansion contexts (spec §4.2's `@region`).
func (r Range) Expand() (int64, int64) {
	if r.Left > r.Right {
		return r.Right, r.Left
	}
	return r.Left, r.Right
}
