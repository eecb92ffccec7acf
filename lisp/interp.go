package lisp

import (
	"os"

	"github.com/howerj/liblisp-go/stream"
)

// defaultStringLimit bounds the length of a string parsed by the reader.
const defaultStringLimit = 4096

// specialForms lists the names of the six special forms dispatched by
// the evaluator before ordinary application is considered.
var specialForms = []string{"if", "begin", "quote", "set", "define", "lambda"}

// Interpreter holds everything that was process-wide global state in the
// original C implementation: the heap registry, the two singletons, the
// interned special-form markers, and the two environments. Folding them
// into a value lets multiple interpreters coexist in one process, each
// with its own singletons, per the design note in the source material.
type Interpreter struct {
	heap *heap

	NilVal *Cell
	TeeVal *Cell

	Global *Cell
	Env    *Cell

	Input   *stream.Stream
	Output  *stream.Stream
	Logging *stream.Stream

	// Signal, when non-nil, is checked between top-level Repl iterations;
	// observing a non-zero value ends the loop cleanly.
	Signal *int32

	// Printer renders a cell to a stream using the normative printer
	// (package printer's Fprint). It is injected by the liblisp facade at
	// construction time to avoid an import cycle between lisp and printer;
	// the print builtin falls back to Cell.String() if it is nil.
	Printer func(s *stream.Stream, c *Cell)

	specials    map[string]*Cell
	stringLimit int
}

// Config configures an Interpreter at construction time.
type Config func(*Interpreter) error

// WithInput sets the interpreter's default input stream.
func WithInput(s *stream.Stream) Config {
	return func(i *Interpreter) error { i.Input = s; return nil }
}

// WithOutput sets the interpreter's default output stream.
func WithOutput(s *stream.Stream) Config {
	return func(i *Interpreter) error { i.Output = s; return nil }
}

// WithLogging sets the interpreter's diagnostic stream.
func WithLogging(s *stream.Stream) Config {
	return func(i *Interpreter) error { i.Logging = s; return nil }
}

// WithHeapLimit overrides the default cap (~2^20) on outstanding cell
// allocations.
func WithHeapLimit(n uint64) Config {
	return func(i *Interpreter) error { i.heap.limit = n; return nil }
}

// WithStringLimit overrides the default cap (4096 bytes) on a string
// literal parsed by the reader.
func WithStringLimit(n int) Config {
	return func(i *Interpreter) error { i.stringLimit = n; return nil }
}

// StringLimit returns the configured maximum length of a parsed string
// literal.
func (i *Interpreter) StringLimit() int {
	return i.stringLimit
}

// Init constructs a fresh Interpreter with stdin/stdout/stderr as default
// streams, the two singletons, the global primitive table, and the six
// special-form markers, then applies opts in order.
func Init(opts ...Config) (*Interpreter, error) {
	i := &Interpreter{
		stringLimit: defaultStringLimit,
	}
	i.heap = newHeap(defaultHeapLimit, i.oom)

	i.NilVal = i.heap.alloc(Nil)
	i.TeeVal = i.heap.alloc(Tee)

	i.Global = i.allocList()
	i.Env = i.Global
	i.Extend(i.Sym("t"), i.TeeVal, i.Global)

	i.Input = stream.NewFileIn(os.Stdin)
	i.Output = stream.NewFileOut(os.Stdout)
	i.Logging = stream.NewFileOut(os.Stderr)

	i.specials = make(map[string]*Cell, len(specialForms))
	for _, name := range specialForms {
		i.specials[name] = i.heap.alloc(Symbol)
		i.specials[name].Sym = name
	}

	i.addBuiltins()

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// SetInput replaces the interpreter's default input stream.
func (i *Interpreter) SetInput(s *stream.Stream) { i.Input = s }

// SetOutput replaces the interpreter's default output stream.
func (i *Interpreter) SetOutput(s *stream.Stream) { i.Output = s }

// SetLogging replaces the interpreter's diagnostic stream.
func (i *Interpreter) SetLogging(s *stream.Stream) { i.Logging = s }

// SetPrinter installs the function the print builtin renders cells with.
func (i *Interpreter) SetPrinter(fn func(s *stream.Stream, c *Cell)) { i.Printer = fn }

// RegisterFunction adds a host-implemented primitive to the global
// environment, returning an error if the name is already bound.
func (i *Interpreter) RegisterFunction(name string, fn PrimitiveFunc) error {
	sym := i.Sym(name)
	existing := i.Find(i.Global, sym)
	if !existing.IsNil() {
		return &duplicateSymbolError{name}
	}
	i.Extend(sym, i.Prim(fn), i.Global)
	return nil
}

type duplicateSymbolError struct{ name string }

func (e *duplicateSymbolError) Error() string {
	return "symbol already defined: " + e.name
}

// End tears the interpreter down: any stream it owns (opened via the
// `open` primitive) is closed; streams wrapping the host's standard
// streams are flushed but not closed. The heap registry is released by
// sweeping without marking, freeing every remaining cell.
func (i *Interpreter) End() {
	i.Output.Flush()
	i.Logging.Flush()
	i.sweepAll()
}
