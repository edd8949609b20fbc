// Package conformance is a YAML-driven fixture harness for the stekk
// evaluator, adapted from the teacher's database-backed conformance
// suite (conformance/{schema,loader,runner}.go) to stekk's domain: a
// fixture runs a source string through a fresh Environment and checks
// its final stack top, last_result, and/or name bindings instead of
// a MOO verb's return value.
package conformance

// TestSuite is one YAML fixture file.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is a single fixture within a suite.
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string reason
	Source      string      `yaml:"source"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation names what to check after running Source. Any subset of
// the fields may be set; all set fields must hold for the case to
// pass.
type Expectation struct {
	StackTop   interface{}            `yaml:"stack_top,omitempty"`
	LastResult interface{}            `yaml:"last_result,omitempty"`
	Bindings   map[string]interface{} `yaml:"bindings,omitempty"`
	FatalError string                 `yaml:"fatal_error,omitempty"` // OpLimitExceeded, UnboundName, InvalidLvalue, IOFailure
	SyntaxErr  bool                   `yaml:"syntax_error,omitempty"`
}

// IsSkipped reports whether this case should be skipped, and why.
func (tc *TestCase) IsSkipped() (bool, string) {
	switch v := tc.Skip.(type) {
	case nil:
		return false, ""
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
