package value

// Kind identifies the variant of a runtime Value. Every evaluation site
// that dispatches on Value must handle all of these exhaustively.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindList
	KindTuple
	KindRange
	KindCodeBlock
	KindBuiltinWord
	KindConst
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindTuple:
		return "Tuple"
	case KindRange:
		return "Range"
	case KindCodeBlock:
		return "CodeBlock"
	case KindBuiltinWord:
		return "BuiltinWord"
	case KindConst:
		return "Const"
	default:
		return "Unknown"
	}
}
