// Package liblisp is the top-level facade gluing the reader, the core
// interpreter, and the printer into the Library API of the source
// material: init, read, eval, print, repl, register_function, end.
package liblisp

import (
	"sync/atomic"

	"github.com/howerj/liblisp-go/lisp"
	"github.com/howerj/liblisp-go/printer"
	"github.com/howerj/liblisp-go/reader"
	"github.com/howerj/liblisp-go/stream"
)

// Interpreter wraps a *lisp.Interpreter, adding the Read/Print operations
// that would otherwise create an import cycle between lisp, reader, and
// printer. Its embedded *lisp.Interpreter promotes Extend, Find,
// RegisterFunction, Clean, End, and the rest of the core's public surface;
// the core's two-argument Eval is shadowed by the one-argument Eval below.
type Interpreter struct {
	*lisp.Interpreter
}

// Init constructs a fresh Interpreter with stdin/stdout/stderr as default
// streams.
func Init(opts ...lisp.Config) (*Interpreter, error) {
	core, err := lisp.Init(opts...)
	if err != nil {
		return nil, err
	}
	core.SetPrinter(printer.Fprint)
	return &Interpreter{Interpreter: core}, nil
}

// Read parses one S-expression from s.
func (i *Interpreter) Read(s *stream.Stream) (*lisp.Cell, error) {
	return reader.Read(i.Interpreter, s)
}

// Eval evaluates x under the interpreter's current lexical environment.
func (i *Interpreter) Eval(x *lisp.Cell) *lisp.Cell {
	return i.Interpreter.Eval(x, i.Env)
}

// Print writes x to the interpreter's output stream.
func (i *Interpreter) Print(x *lisp.Cell) {
	printer.Fprint(i.Output, x)
}

// Repl reads, evaluates, prints, and collects until end-of-stream,
// checking Signal between iterations; it returns 0 on clean
// end-of-input.
func (i *Interpreter) Repl() int {
	for {
		if i.Signal != nil && atomic.LoadInt32(i.Signal) != 0 {
			return 0
		}
		x, err := i.Read(i.Input)
		if err == reader.ErrEOF {
			return 0
		}
		if err != nil {
			// A malformed top-level expression was already diagnosed by
			// Read; keep reading.
			continue
		}
		result := i.Eval(x)
		i.Print(result)
		i.Output.Puts([]byte("\n"))
		i.Clean()
	}
}
