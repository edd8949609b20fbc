package value

import (
	"math"
	"strconv"
	"strings"
)

// Float is a 64-bit IEEE-754 value.
type Float struct {
	Val float64
}

// NewFloat constructs a Float value.
func NewFloat(v float64) Float { return Float{Val: v} }

func (f Float) Kind() Kind { return KindFloat }

func (f Float) String() string {
	if math.IsNaN(f.Val) {
		return "nan"
	}
	if math.IsInf(f.Val, 1) {
		return "inf"
	}
	if math.IsInf(f.Val, -1) {
		return "-inf"
	}
	s := strconv.FormatFloat(f.Val, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (f Float) Truthy() bool { return f.Val != 0 }

func (f Float) Equal(other Value) bool {
	switch o := other.(type) {
	case Float:
		if math.IsNaN(f.Val) || math.IsNaN(o.Val) {
			return false
		}
		return f.Val == o.Val
	case Int:
		return f.Val == float64(o.Val)
	default:
		return false
	}
}
