// Package lisp implements the interpreter core: the tagged value model, the
// lexical environment, the tree-walking evaluator, the primitive dispatch
// table, and the mark-and-sweep collector.
package lisp

import (
	"bytes"
	"fmt"

	"github.com/howerj/liblisp-go/stream"
)

// Tag is the type discriminant of a Cell.
type Tag int

// Possible Tag values.
const (
	Nil Tag = iota
	Tee
	Integer
	Float
	Symbol
	String
	List
	Proc
	Primitive
	File
	ErrorCell
	Quote
)

var tagStrings = []string{
	Nil:       "nil",
	Tee:       "t",
	Integer:   "integer",
	Float:     "float",
	Symbol:    "symbol",
	String:    "string",
	List:      "list",
	Proc:      "proc",
	Primitive: "primitive",
	File:      "file",
	ErrorCell: "error",
	Quote:     "quote",
}

func (t Tag) String() string {
	if int(t) < 0 || int(t) >= len(tagStrings) || tagStrings[t] == "" {
		return "invalid"
	}
	return tagStrings[t]
}

// PrimitiveFunc is the signature of a host-implemented function callable
// from Lisp.
type PrimitiveFunc func(args *Cell, interp *Interpreter) *Cell

// Cell is the sole runtime object: a tagged variant carrying whichever
// payload its Tag implies.
//
//   Integer    -> Int
//   Float      -> Flt
//   Symbol     -> Sym
//   String     -> Str
//   List, Proc -> List (a Proc's List is always [params, body, env])
//   Primitive  -> Fn
//   File       -> Port
//   ErrorCell  -> Sym (the message)
//
// marked and next are collector book-keeping; client code never touches
// them.
type Cell struct {
	Tag Tag

	Int int
	Flt float64
	Sym string
	Str []byte
	List []*Cell
	Fn   PrimitiveFunc
	Port *stream.Stream

	marked bool
	next   *Cell
}

// Len returns the cached element/byte count of a List, Proc, or String cell,
// and 0 for every other tag.
func (c *Cell) Len() int {
	switch c.Tag {
	case List, Proc:
		return len(c.List)
	case String:
		return len(c.Str)
	default:
		return 0
	}
}

// IsNil reports whether c is the nil singleton.
func (c *Cell) IsNil() bool {
	return c.Tag == Nil
}

// Car returns the first child of a List cell, or nil (the singleton) for an
// empty list or a non-List cell.
func (i *Interpreter) Car(c *Cell) *Cell {
	if c.Tag != List || len(c.List) == 0 {
		return i.NilVal
	}
	return c.List[0]
}

// Cdr returns a new List holding all but the first child of c, or nil if c
// has length <= 1.
func (i *Interpreter) Cdr(c *Cell) *Cell {
	if c.Tag != List || len(c.List) <= 1 {
		return i.NilVal
	}
	tail := i.allocList()
	tail.List = append(tail.List, c.List[1:]...)
	return tail
}

// Cadr, Caddr, and Cadddr are the usual compositions of Car and Cdr.
func (i *Interpreter) Cadr(c *Cell) *Cell   { return i.Car(i.Cdr(c)) }
func (i *Interpreter) Caddr(c *Cell) *Cell  { return i.Car(i.Cdr(i.Cdr(c))) }
func (i *Interpreter) Cadddr(c *Cell) *Cell { return i.Car(i.Cdr(i.Cdr(i.Cdr(c)))) }

// Nth returns the i'th element of a List or byte of a String, supporting
// negative indices counted from the tail. Out-of-range indices return nil.
func (i *Interpreter) Nth(c *Cell, n int) *Cell {
	switch c.Tag {
	case List:
		idx := n
		if idx < 0 {
			idx += len(c.List)
		}
		if idx < 0 || idx >= len(c.List) {
			return i.NilVal
		}
		return c.List[idx]
	case String:
		idx := n
		if idx < 0 {
			idx += len(c.Str)
		}
		if idx < 0 || idx >= len(c.Str) {
			return i.NilVal
		}
		return i.Int(int(c.Str[idx]))
	default:
		return i.NilVal
	}
}

// Append grows a List's child array by one. It is the sole legal way to
// extend a List after construction.
func (i *Interpreter) Append(lis *Cell, child *Cell) {
	lis.List = append(lis.List, child)
}

// String renders c much as the printer would, without mutating c, except
// that String bodies are written between quotes with no escaping. It exists
// for debugging and %v formatting; package printer is the normative printer.
func (c *Cell) String() string {
	switch c.Tag {
	case Nil:
		return "()"
	case Tee:
		return "t"
	case Integer:
		return fmt.Sprintf("%d", c.Int)
	case Float:
		return fmt.Sprintf("%g", c.Flt)
	case Symbol:
		return c.Sym
	case String:
		return "\"" + string(c.Str) + "\""
	case List:
		var buf bytes.Buffer
		buf.WriteByte('(')
		for i, ch := range c.List {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(ch.String())
		}
		buf.WriteByte(')')
		return buf.String()
	case Proc:
		return fmt.Sprintf("(lambda %v %v)", c.List[0], c.List[1])
	case Primitive:
		return "<primitive>"
	case File:
		return "<file>"
	case ErrorCell:
		return fmt.Sprintf("(error %q)", c.Sym)
	case Quote:
		return fmt.Sprintf("(quote %v)", c.List[0])
	default:
		return "<invalid>"
	}
}

// Proc field accessors: a Proc's List is always [params, body, env].

func (c *Cell) ProcParams() *Cell { return c.List[0] }
func (c *Cell) ProcBody() *Cell   { return c.List[1] }
func (c *Cell) ProcEnv() *Cell    { return c.List[2] }
