// Command oolang is a thin embedder harness around the interpreter core:
// read a script, lex and parse it, evaluate it, and let errors surface on
// stderr with a non-zero exit code. It is not itself a spec'd component
// of the language, the same way cmd/able/main.go is a driver built on top
// of a library, not the library.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/oolang/interpreter/pkg/config"
	"github.com/oolang/interpreter/pkg/interpreter"
	"github.com/oolang/interpreter/pkg/parser"
	"github.com/oolang/interpreter/pkg/value"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "usage: oolang <script.ool>")
		return 2
	}
	scriptPath := args[0]

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oolang: %v\n", err)
		return 1
	}

	cfg, err := config.Load(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oolang: %v\n", err)
		return 1
	}

	program, err := parser.ParseWithConfig(string(src), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oolang: parse error: %v\n", err)
		return 1
	}

	interp := interpreter.New()
	scope := value.NewClosure()

	// CaptureOutput buffers a run's output and only flushes it to stdout
	// once the run has succeeded, so a failing run never shows partial
	// output ahead of its error.
	var out io.Writer = os.Stdout
	var buf bytes.Buffer
	if cfg.CaptureOutput {
		out = &buf
	}
	ctx := &interpreter.Context{Output: out}

	if err := interp.Run(program, scope, ctx); err != nil {
		fmt.Fprintf(os.Stderr, "oolang: %v\n", err)
		return 1
	}
	if cfg.CaptureOutput {
		io.Copy(os.Stdout, &buf)
	}
	return 0
}
