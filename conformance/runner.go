package conformance

import (
	"fmt"
	"strings"

	"stekk/eval"
	"stekk/parser"
	"stekk/value"
)

// TestResult is the outcome of running one fixture.
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes fixtures against a fresh Environment per case — the
// language has no persistent store to share across cases the way the
// teacher's database-backed Runner does.
type Runner struct {
	OpLimit uint64
}

// NewRunner creates a Runner with the default op limit.
func NewRunner() *Runner {
	return &Runner{OpLimit: 1_000_000}
}

// Run executes a single fixture.
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}

	env := eval.NewEnvironment(nil, nil, r.OpLimit)

	stmts, parseErr := parser.Parse(test.Test.Source)
	if parseErr != nil {
		if test.Test.Expect.SyntaxErr {
			return TestResult{Test: test, Passed: true}
		}
		return TestResult{Test: test, Passed: false, Error: fmt.Errorf("parse error: %w", parseErr)}
	}
	if test.Test.Expect.SyntaxErr {
		return TestResult{Test: test, Passed: false, Error: fmt.Errorf("expected a syntax error, parsed cleanly")}
	}

	runErr := env.Execute(stmts)
	passed, err := r.checkExpectation(test.Test, env, runErr)
	return TestResult{Test: test, Passed: passed, Error: err}
}

// RunAll executes every fixture in tests.
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, t := range tests {
		results[i] = r.Run(t)
	}
	return results
}

func (r *Runner) checkExpectation(test TestCase, env *eval.Environment, runErr error) (bool, error) {
	expect := test.Expect

	if expect.FatalError != "" {
		if runErr == nil {
			return false, fmt.Errorf("expected fatal error %s, execution succeeded", expect.FatalError)
		}
		fe, ok := runErr.(*eval.FatalError)
		if !ok {
			return false, fmt.Errorf("expected fatal error %s, got %v", expect.FatalError, runErr)
		}
		if fe.Kind.String() != expect.FatalError {
			return false, fmt.Errorf("expected fatal error %s, got %s", expect.FatalError, fe.Kind)
		}
		return true, nil
	}

	if runErr != nil {
		return false, fmt.Errorf("unexpected fatal error: %w", runErr)
	}

	if expect.StackTop != nil {
		top, ok := env.Stack().Get(-1)
		if !ok {
			return false, fmt.Errorf("expected stack top %v, stack is empty", expect.StackTop)
		}
		want, err := convertYAMLValue(expect.StackTop)
		if err != nil {
			return false, err
		}
		if !top.Equal(want) {
			return false, fmt.Errorf("expected stack top %v, got %v", want, top)
		}
	}

	if expect.LastResult != nil {
		want, err := convertYAMLValue(expect.LastResult)
		if err != nil {
			return false, err
		}
		if !env.LastResult.Equal(want) {
			return false, fmt.Errorf("expected last_result %v, got %v", want, env.LastResult)
		}
	}

	for name, rawWant := range expect.Bindings {
		got, ok := env.Names[name]
		if !ok {
			return false, fmt.Errorf("expected binding %q, name is unbound", name)
		}
		want, err := convertYAMLValue(rawWant)
		if err != nil {
			return false, err
		}
		if !got.Equal(want) {
			return false, fmt.Errorf("expected %s = %v, got %v", name, want, got)
		}
	}

	return true, nil
}

// SummaryStats tallies a batch of results.
type SummaryStats struct {
	Total, Passed, Failed, Skipped int
}

// ComputeStats summarizes results.
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped:
			stats.Skipped++
		case r.Passed:
			stats.Passed++
		default:
			stats.Failed++
		}
	}
	return stats
}

// FormatStats renders stats as a one-line human-readable summary.
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// convertYAMLValue converts a decoded YAML scalar/sequence into the
// runtime Value it denotes. Booleans map to Int 0/1, stekk's own
// truthiness convention (spec §3.1).
func convertYAMLValue(v interface{}) (value.Value, error) {
	switch val := v.(type) {
	case int:
		return value.NewInt(int64(val)), nil
	case int64:
		return value.NewInt(val), nil
	case float64:
		return value.NewFloat(val), nil
	case string:
		if strings.HasPrefix(val, "$") && len(val) > 1 {
			return value.GetConst(val[1:]), nil
		}
		return value.NewStr(val), nil
	case bool:
		if val {
			return value.NewInt(1), nil
		}
		return value.NewInt(0), nil
	case []interface{}:
		elems := make([]value.Value, len(val))
		for i, e := range val {
			ev, err := convertYAMLValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return value.NewList(elems), nil
	case nil:
		return value.N, nil
	default:
		return nil, fmt.Errorf("unsupported fixture value type: %T", v)
	}
}
