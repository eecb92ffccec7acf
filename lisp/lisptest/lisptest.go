// Package lisptest provides the table-driven fixture format used to
// express the scenarios named in the source material: a named sequence of
// (input, expected-print, expected-log) triples evaluated in order against
// one shared interpreter, adapted from the teacher repository's elpstest
// package.
package lisptest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	liblisp "github.com/howerj/liblisp-go"
	"github.com/howerj/liblisp-go/stream"
)

// Case is one step of a Sequence: Input is evaluated, Want is the
// expected printed result (trimmed of the trailing newline Repl would add,
// since these run through Eval/Print directly), and WantLog is the
// expected diagnostic output, if any.
type Case struct {
	Input   string
	Want    string
	WantLog string
}

// Sequence is a list of Cases run in order against a shared interpreter,
// so later cases can observe state (a `define`, a `set`) left by earlier
// ones.
type Sequence []Case

// Suite is a named set of Sequences, each run against its own fresh
// interpreter.
type Suite map[string]Sequence

// Run evaluates every Sequence in suite as a subtest.
func Run(t *testing.T, suite Suite) {
	for name, seq := range suite {
		name, seq := name, seq
		t.Run(name, func(t *testing.T) {
			RunSequence(t, seq)
		})
	}
}

// RunSequence evaluates seq's Cases in order against one fresh
// interpreter.
func RunSequence(t *testing.T, seq Sequence) {
	t.Helper()
	interp, err := liblisp.Init()
	if err != nil {
		t.Fatalf("lisp.Init: %v", err)
	}
	for n, c := range seq {
		out := stream.NewStringOut(4096)
		log := stream.NewStringOut(4096)
		interp.SetOutput(out)
		interp.SetLogging(log)

		x, err := interp.Read(stream.NewStringIn([]byte(c.Input)))
		if err != nil {
			t.Fatalf("case %d (%q): read: %v", n, c.Input, err)
		}
		result := interp.Eval(x)
		interp.Print(result)
		interp.Clean()

		assert.Equal(t, c.Want, string(out.Bytes()), "case %d: %q", n, c.Input)
		if c.WantLog != "" {
			assert.Contains(t, string(log.Bytes()), c.WantLog, "case %d: %q", n, c.Input)
		}
	}
}
