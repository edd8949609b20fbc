// Command stekk runs stekk source files, or a single expression via
// -eval, against a fresh interpreter Environment.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"stekk/builtins"
	"stekk/eval"
	"stekk/parser"
	"stekk/trace"
	"stekk/value"
)

func main() {
	opLimit := flag.Uint64("op-limit", 1_000_000, "maximum operation count before aborting")
	traceEnabled := flag.Bool("trace", false, "enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "trace filter pattern(s), comma-separated globs")
	evalExpr := flag.String("eval", "", "evaluate a single expression and print its value")
	flag.Parse()

	builtins.SetParser(parser.Parse)

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			for _, f := range strings.Split(*traceFilter, ",") {
				filters = append(filters, strings.TrimSpace(f))
			}
		}
		trace.Init(true, filters, os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()
	stdin := bufio.NewReader(os.Stdin)

	printer := func(s string) { fmt.Fprint(stdout, s) }
	reader := func() (string, error) {
		line, err := stdin.ReadString('\n')
		return strings.TrimRight(line, "\n"), err
	}

	env := eval.NewEnvironment(printer, reader, *opLimit)

	if *evalExpr != "" {
		stmts, err := parser.Parse(*evalExpr)
		if err != nil {
			log.Fatalf("parse error: %v", err)
		}
		if err := env.Execute(stmts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		stdout.Flush()
		fmt.Println(env.LastResult.String())
		return
	}

	if flag.NArg() == 0 {
		runREPL(env, stdin, stdout)
		return
	}

	for _, path := range flag.Args() {
		source, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("reading %s: %v", path, err)
		}
		stmts, err := parser.Parse(string(source))
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		if err := env.Execute(stmts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

// runREPL is a plain line-buffered read/parse/execute/print loop, no
// tab-completion or history — the stekk/interactive.py features that
// came with those stay out of scope.
func runREPL(env *eval.Environment, stdin *bufio.Reader, stdout *bufio.Writer) {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		stdout.Flush()
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		stmts, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := env.Execute(stmts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		stdout.Flush()
		if !value.IsNone(env.LastResult) {
			fmt.Fprintln(stdout, env.LastResult.String())
			stdout.Flush()
		}
	}
}
