package value

// Const is an interned symbolic sentinel: the carrier of null (N), error
// (E), type-error (T), and success (OK), and the general mechanism for
// any other bare `$name` the source references.
type Const struct {
	Name   string
	truthy bool
}

var constTable = map[string]Const{
	"N":  {Name: "N", truthy: false},
	"E":  {Name: "E", truthy: false},
	"T":  {Name: "T", truthy: false},
	"OK": {Name: "OK", truthy: true},
}

// N, E, T, OK are the four predefined constants.
var (
	N  = constTable["N"]
	E  = constTable["E"]
	T  = constTable["T"]
	OK = constTable["OK"]
)

// GetConst interns name on first use (truthy defaults to true for any
// name other than the four predefined sentinels above).
func GetConst(name string) Const {
	if c, ok := constTable[name]; ok {
		return c
	}
	c := Const{Name: name, truthy: true}
	constTable[name] = c
	return c
}

func (c Const) Kind() Kind     { return KindConst }
func (c Const) String() string { return "$" + c.Name }
func (c Const) Truthy() bool   { return c.truthy }

func (c Const) Equal(other Value) bool {
	o, ok := other.(Const)
	return ok && c.Name == o.Name
}

// IsNone reports whether v is the $N sentinel — the Stack form's "no
// value" test (spec §4.1, §9).
func IsNone(v Value) bool {
	c, ok := v.(Const)
	return ok && c.Name == "N"
}
