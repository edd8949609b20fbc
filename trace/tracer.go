// Package trace provides optional execution tracing for the
// evaluator, adapted from the teacher's verb-call tracer to stekk's
// built-in-word and Fcall invocation model (SPEC_FULL.md's Logging
// section).
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Tracer logs built-in word invocations, gated by an optional glob
// filter matched against the word name.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

var globalTracer *Tracer

// Init installs the global tracer. Passing enabled=false disables
// tracing entirely regardless of filters.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{enabled: enabled, filters: filters, writer: writer}
}

// IsEnabled reports whether the global tracer is active.
func IsEnabled() bool {
	return globalTracer != nil && globalTracer.enabled
}

func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Call logs a built-in word invocation with its popped arguments, in
// surface left-to-right order. The evaluator passes no arguments for
// words that manage the stack themselves; code-block invocations are
// not traced.
func (t *Tracer) Call(name string, args []string) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] CALL .%s (%s)\n", name, strings.Join(args, " "))
}

// Return logs an invocation's pushed result(s).
func (t *Tracer) Return(name string, results []string) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] RETURN .%s => %s\n", name, strings.Join(results, " "))
}

// Call logs via the global tracer, a no-op if tracing isn't enabled.
func Call(name string, args []string) {
	if globalTracer != nil {
		globalTracer.Call(name, args)
	}
}

// Return logs via the global tracer, a no-op if tracing isn't enabled.
func Return(name string, results []string) {
	if globalTracer != nil {
		globalTracer.Return(name, results)
	}
}
