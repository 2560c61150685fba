// Command lisp is the CLI front end for the interpreter in package lisp
// (spec.md §6, "Out of scope" for the core — argument parsing and REPL
// prompting live here instead).
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"
	"github.com/smallisp/smallisp"
)

var logger = log.New(os.Stderr, "lisp: ", 0)

func main() {
	args, debug := extractDebugFlag(os.Args[1:])
	switch len(args) {
	case 0:
		runREPL(debug)
	case 1:
		runFile(args[0], false, debug)
	case 2:
		flag := args[1]
		if flag != "-p" && flag != "-print" {
			logger.Fatalf("unrecognized flag %q (expected -p or -print)", flag)
		}
		runFile(args[0], true, debug)
	default:
		logger.Fatalf("too many arguments: %v", args)
	}
}

// extractDebugFlag strips a `-debug` token from args wherever it
// appears, returning the remaining arguments and whether it was
// present. This keeps spec.md §6's exact 0/1/2-argument-count contract
// intact for the remaining args while layering the ambient-stack debug
// dump in as an orthogonal toggle, not a fourth argument-count case.
func extractDebugFlag(args []string) ([]string, bool) {
	out := make([]string, 0, len(args))
	debug := false
	for _, a := range args {
		if a == "-debug" {
			debug = true
			continue
		}
		out = append(out, a)
	}
	return out, debug
}

// runFile evaluates every top-level expression in the named file in
// sequence, printing each result only if print is true, and exits 1 on
// the first error (spec.md §7: "the non-interactive mode aborts on the
// first error").
func runFile(path string, print, debug bool) {
	f, err := os.Open(path)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	defer f.Close()

	it := lisp.NewInterp(f)
	for {
		seq, err := it.ReadExpr()
		if err != nil {
			logger.Fatalf("%v", err)
		}
		if len(seq) == 0 && it.AtBase() {
			break
		}
		if debug {
			dumpDebug(seq, it)
		}
		result, err := it.Eval(seq, it.Global)
		if err != nil {
			logger.Fatalf("Bad expression: %v", err)
		}
		if print {
			fmt.Println(lisp.Sprint(result))
		}
	}
}

// linerSource adapts a liner.State into the io.Reader the Stream reads
// its base source from, prompting for one more line of input each time
// its buffered text runs dry. liner puts the terminal in raw mode and
// reads stdin itself, so it must be the only reader of stdin in the
// process; feeding its lines into the Stream this way (rather than
// handing the Stream os.Stdin directly and calling line.Prompt
// separately) keeps the interpreter's own lexer the single consumer of
// whatever liner hands back.
type linerSource struct {
	line   *liner.State
	prompt func() string
	buf    []byte
}

func (s *linerSource) Read(p []byte) (int, error) {
	if len(s.buf) == 0 {
		text, err := s.line.Prompt(s.prompt())
		if err != nil {
			return 0, io.EOF
		}
		if strings.TrimSpace(text) != "" {
			s.line.AppendHistory(text)
		}
		s.buf = []byte(text + "\n")
	}
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

// runREPL implements spec.md §6's zero-argument mode: read from
// standard input, print each result on its own line with `> ` prompts.
// Line editing and history come from github.com/peterh/liner, the same
// package other_examples/michaelmacinnis-oh__task.go wraps for its own
// REPL prompt loop. Errors are caught per expression and reported
// per spec.md §7 ("Bad expression: <message>"); the loop continues.
func runREPL(debug bool) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	var it *lisp.Interp
	src := &linerSource{line: line, prompt: func() string {
		if it.AtBase() {
			return "> "
		}
		return ""
	}}
	it = lisp.NewInterp(src)

	for {
		seq, err := it.ReadExpr()
		if err != nil {
			fmt.Printf("Bad expression: %v\n", err)
			continue
		}
		if len(seq) == 0 && it.AtBase() {
			return
		}
		if debug {
			dumpDebug(seq, it)
		}
		result, err := it.Eval(seq, it.Global)
		if err != nil {
			fmt.Printf("Bad expression: %v\n", err)
			continue
		}
		fmt.Println(lisp.Sprint(result))
	}
}

// dumpDebug backs the -debug flag: it pretty-prints the parsed
// expression and the top-level environment before evaluation, giving
// the "diagnostic/trace logging" collaborator named in spec.md §1 a
// concrete, optional home outside package lisp.
func dumpDebug(seq []lisp.Cell, it *lisp.Interp) {
	spew.Fdump(os.Stderr, seq, it.Global)
}
