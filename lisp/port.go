package lisp

import (
	"os"

	"github.com/howerj/liblisp-go/stream"
)

// port.go implements the minimal File and ErrorCell support mentioned as an
// Open Question in the source material: both tags exist but are not fully
// implemented there. liblisp-go stubs them with the primitives below rather
// than omitting the tags entirely, since a file handle and a first-class
// error value are cheap to support once Stream already exists.

// builtinOpen opens a file named by its String argument for reading (mode
// "r") or writing (mode "w"), returning a File cell, or nil with a
// diagnostic on failure.
func builtinOpen(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 2 {
		return argErr(i, "open", 2, len(args.List))
	}
	name, mode := args.List[0], args.List[1]
	if name.Tag != String {
		return typeErr(i, "open", 1, String, name.Tag)
	}
	if mode.Tag != String {
		return typeErr(i, "open", 2, String, mode.Tag)
	}
	var f *os.File
	var err error
	switch string(mode.Str) {
	case "r":
		f, err = os.Open(string(name.Str))
	case "w":
		f, err = os.Create(string(name.Str))
	default:
		return i.diagf("open: unknown mode: %q", mode.Str)
	}
	if err != nil {
		return i.diagf("open: %v", err)
	}
	c := i.heap.alloc(File)
	if string(mode.Str) == "r" {
		c.Port = stream.NewFileIn(f)
	} else {
		c.Port = stream.NewFileOut(f)
	}
	return c
}

// builtinClose closes a File cell opened with open. Closing a cell wrapping
// one of the interpreter's standard streams is a no-op.
func builtinClose(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "close", 1, len(args.List))
	}
	f := args.List[0]
	if f.Tag != File {
		return typeErr(i, "close", 1, File, f.Tag)
	}
	if f.Port != nil {
		f.Port.Close()
	}
	return i.NilVal
}

// builtinErrString converts an ErrorCell to a String, the sole primitive
// that inspects an error value's message.
func builtinErrString(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "err:string", 1, len(args.List))
	}
	e := args.List[0]
	if e.Tag != ErrorCell {
		return typeErr(i, "err:string", 1, ErrorCell, e.Tag)
	}
	return i.Str([]byte(e.Sym))
}
