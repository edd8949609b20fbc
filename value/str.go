package value

// Str is an immutable UTF-8 string value, indexable by codepoint.
type Str struct {
	Val string
}

// NewStr constructs a Str value.
func NewStr(s string) Str { return Str{Val: s} }

func (s Str) Kind() Kind     { return KindString }
func (s Str) String() string { return s.Val }
func (s Str) Truthy() bool   { return len(s.Val) > 0 }

func (s Str) Equal(other Value) bool {
	o, ok := other.(Str)
	return ok && s.Val == o.Val
}

// Runes returns the string's codepoints, used for 0-based indexing and
// negative-index-from-end resolution shared by String/List/Tuple.
func (s Str) Runes() []rune { return []rune(s.Val) }
