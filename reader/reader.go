// Package reader implements the S-expression reader: a recursive-descent
// parser that consumes bytes from a stream.Stream and yields a lisp.Cell
// tree, allocating every cell through the interpreter so it participates
// in collection. It is a sibling of package printer, the way the teacher
// repository keeps its parser as a package separate from the core lisp
// package it builds values in.
package reader

import (
	"errors"

	"github.com/howerj/liblisp-go/lisp"
	"github.com/howerj/liblisp-go/stream"
)

// ErrEOF is returned by Read when the stream has no further expressions.
var ErrEOF = errors.New("reader: end of stream")

// ErrIncomplete is returned by Read when the stream ran out of bytes in the
// middle of a list or a string literal. A line-editing front end can use it
// to tell "needs another line" apart from a genuine syntax error.
var ErrIncomplete = errors.New("reader: incomplete expression")

// maxStringLen is the fallback cap used when an Interpreter has not
// configured one.
const maxStringLen = 4096

const octalEscapeDigits = 3

// Read parses one S-expression from s, allocating cells through interp.
// It returns ErrEOF if the stream is exhausted before any expression
// starts. A malformed expression is reported to interp's logging stream
// and returned as an error; Read does not panic on malformed input.
func Read(interp *lisp.Interpreter, s *stream.Stream) (*lisp.Cell, error) {
	r := &reader{interp: interp, s: s}
	if err := r.skipWhitespace(); err != nil {
		return nil, err
	}
	c, ok := r.getc()
	if !ok {
		return nil, ErrEOF
	}
	switch c {
	case '(':
		return r.parseList()
	case '"':
		return r.parseString()
	case ')':
		interp.Diagnosef("unmatched )")
		return nil, errUnmatchedParen
	default:
		r.ungetc(byte(c))
		return r.parseAtom()
	}
}

var errUnmatchedParen = errors.New("reader: unmatched )")
var errEOFInList = ErrIncomplete
var errEOFInString = ErrIncomplete
var errStringTooLong = errors.New("reader: string literal too long")
var errEmptyToken = errors.New("reader: empty token")

type reader struct {
	interp *lisp.Interpreter
	s      *stream.Stream
}

func (r *reader) getc() (byte, bool) {
	c := r.s.Getc()
	if c == stream.EOF {
		return 0, false
	}
	return byte(c), true
}

func (r *reader) ungetc(b byte) {
	r.s.Ungetc(b)
}

func (r *reader) skipWhitespace() error {
	for {
		c := r.s.Getc()
		if c == stream.EOF {
			return nil
		}
		if !isSpace(byte(c)) {
			r.s.Ungetc(byte(c))
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDelim(b byte) bool {
	return isSpace(b) || b == '(' || b == ')'
}

// parseList implements spec component 4.4's parse-list: an empty List is
// allocated, then elements are accumulated until a matching ')'.
func (r *reader) parseList() (*lisp.Cell, error) {
	lis := r.interp.NewList()
	for {
		if err := r.skipWhitespace(); err != nil {
			return nil, err
		}
		c, ok := r.getc()
		if !ok {
			r.interp.Diagnosef("EOF inside list")
			return nil, errEOFInList
		}
		switch c {
		case ')':
			return lis, nil
		case '(':
			child, err := r.parseList()
			if err != nil {
				return nil, err
			}
			r.interp.Append(lis, child)
		case '"':
			child, err := r.parseString()
			if err != nil {
				return nil, err
			}
			r.interp.Append(lis, child)
		default:
			r.ungetc(c)
			child, err := r.parseAtom()
			if err != nil {
				return nil, err
			}
			r.interp.Append(lis, child)
		}
	}
}

// parseString implements spec component 4.4's parse-string: bytes between
// double quotes, with backslash escapes and three-digit octal escapes.
func (r *reader) parseString() (*lisp.Cell, error) {
	limit := r.interp.StringLimit()
	if limit <= 0 {
		limit = maxStringLen
	}
	var buf []byte
	for {
		c, ok := r.getc()
		if !ok {
			r.interp.Diagnosef("EOF inside string")
			return nil, errEOFInString
		}
		if c == '"' {
			return r.interp.Str(buf), nil
		}
		if c == '\\' {
			b, err := r.readEscape()
			if err != nil {
				return nil, err
			}
			buf = append(buf, b)
		} else {
			buf = append(buf, c)
		}
		if len(buf) > limit {
			r.interp.Diagnosef("string literal exceeds maximum length %d", limit)
			return nil, errStringTooLong
		}
	}
}

func (r *reader) readEscape() (byte, error) {
	c, ok := r.getc()
	if !ok {
		r.interp.Diagnosef("EOF inside string")
		return 0, errEOFInString
	}
	switch c {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case '\\':
		return '\\', nil
	case '"':
		return '"', nil
	case '(':
		return '(', nil
	case ')':
		return ')', nil
	default:
		if c >= '0' && c <= '7' {
			return r.readOctalEscape(c)
		}
		// Unrecognized escapes pass the byte through unchanged, the
		// conservative reading when the source material does not name a
		// mapping for it.
		return c, nil
	}
}

func (r *reader) readOctalEscape(first byte) (byte, error) {
	digits := []byte{first}
	for len(digits) < octalEscapeDigits {
		c, ok := r.getc()
		if !ok {
			r.interp.Diagnosef("EOF inside string")
			return 0, errEOFInString
		}
		if c < '0' || c > '7' {
			r.ungetc(c)
			break
		}
		digits = append(digits, c)
	}
	var v int
	for _, d := range digits {
		v = v*8 + int(d-'0')
	}
	return byte(v), nil
}

// parseAtom implements spec component 4.4's parse-atom: accumulate bytes
// until a delimiter, then classify the token as an integer or a symbol.
func (r *reader) parseAtom() (*lisp.Cell, error) {
	var tok []byte
	for {
		c, ok := r.getc()
		if !ok {
			break
		}
		if isDelim(c) {
			if !isSpace(c) {
				r.ungetc(c)
			}
			break
		}
		tok = append(tok, c)
	}
	if len(tok) == 0 {
		r.interp.Diagnosef("empty token")
		return nil, errEmptyToken
	}
	if n, ok := parseInteger(tok); ok {
		return r.interp.Int(n), nil
	}
	return r.interp.Sym(string(tok)), nil
}

// parseInteger recognizes the grammar
// [+-]?(0|0[xX][0-9a-fA-F]+|[1-9][0-9]*|0[0-7]+).
func parseInteger(tok []byte) (int, bool) {
	s := tok
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return 0, false
	}
	var n int
	switch {
	case len(s) == 1 && s[0] == '0':
		n = 0
	case len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		v, ok := digitsToInt(s[2:], 16, isHexDigit, hexVal)
		if !ok {
			return 0, false
		}
		n = v
	case len(s) > 1 && s[0] == '0':
		v, ok := digitsToInt(s[1:], 8, isOctalDigit, octVal)
		if !ok {
			return 0, false
		}
		n = v
	case s[0] >= '1' && s[0] <= '9':
		v, ok := digitsToInt(s, 10, isDecimalDigit, decVal)
		if !ok {
			return 0, false
		}
		n = v
	default:
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func digitsToInt(s []byte, base int, valid func(byte) bool, val func(byte) int) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if !valid(c) {
			return 0, false
		}
		n = n*base + val(c)
	}
	return n, true
}

func isDecimalDigit(c byte) bool { return c >= '0' && c <= '9' }
func decVal(c byte) int          { return int(c - '0') }

func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }
func octVal(c byte) int        { return int(c - '0') }

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
