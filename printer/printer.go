// Package printer writes a lisp.Cell tree to a stream.Stream. It is the
// symmetric counterpart of package reader, and like it, never mutates the
// cells it walks.
package printer

import (
	"strconv"

	"github.com/howerj/liblisp-go/lisp"
	"github.com/howerj/liblisp-go/stream"
)

// Fprint writes c to s.
func Fprint(s *stream.Stream, c *lisp.Cell) {
	switch c.Tag {
	case lisp.Nil:
		s.Puts([]byte("()"))
	case lisp.Tee:
		s.Puts([]byte("t"))
	case lisp.Integer:
		s.Printd(c.Int)
	case lisp.Float:
		s.Puts([]byte(strconv.FormatFloat(c.Flt, 'g', -1, 64)))
	case lisp.Symbol:
		s.Puts([]byte(c.Sym))
	case lisp.String:
		printString(s, c.Str)
	case lisp.List:
		printList(s, c)
	case lisp.Proc:
		printProc(s, c)
	case lisp.Primitive:
		s.Puts([]byte("<primitive>"))
	case lisp.File:
		s.Puts([]byte("<file>"))
	case lisp.ErrorCell:
		s.Puts([]byte("(error "))
		printString(s, []byte(c.Sym))
		s.Putc(')')
	case lisp.Quote:
		s.Puts([]byte("(quote "))
		Fprint(s, c.List[0])
		s.Putc(')')
	default:
		s.Puts([]byte("<invalid>"))
	}
}

// printString writes the inverse of the reader's escapes on '"', '\\', and
// newline; every other byte is written verbatim.
func printString(s *stream.Stream, b []byte) {
	s.Putc('"')
	for _, c := range b {
		switch c {
		case '"':
			s.Puts([]byte(`\"`))
		case '\\':
			s.Puts([]byte(`\\`))
		case '\n':
			s.Puts([]byte(`\n`))
		default:
			s.Putc(c)
		}
	}
	s.Putc('"')
}

func printList(s *stream.Stream, c *lisp.Cell) {
	s.Putc('(')
	for n, child := range c.List {
		if n > 0 {
			s.Putc(' ')
		}
		Fprint(s, child)
	}
	s.Putc(')')
}

func printProc(s *stream.Stream, c *lisp.Cell) {
	s.Puts([]byte("(lambda "))
	Fprint(s, c.ProcParams())
	s.Putc(' ')
	Fprint(s, c.ProcBody())
	s.Putc(')')
}
