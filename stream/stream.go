// Package stream provides the byte-oriented I/O abstraction used by the
// reader, the printer, and the primitive table: a single Stream type that is
// backed either by a host file handle or by a fixed-size, caller-owned byte
// buffer, with one byte of pushback.
package stream

import (
	"bufio"
	"io"
	"os"
)

// Kind distinguishes the backing store of a Stream.
type Kind int

// Possible Kind values.
const (
	FileIn Kind = iota
	FileOut
	StringIn
	StringOut
)

// EOF is the end-of-stream sentinel returned by Getc in place of a byte
// value. It is negative so it can never collide with a valid byte (0-255).
const EOF = -1

// Stream is a unified read/write byte stream. The zero value is not usable;
// construct one with NewFileIn, NewFileOut, NewStringIn, or NewStringOut.
type Stream struct {
	kind Kind

	file   *os.File
	reader *bufio.Reader
	writer *bufio.Writer

	buf []byte
	pos int
	max int

	pushed  bool
	pushByt byte

	closable bool
}

// NewFileIn returns a Stream that reads from f.
func NewFileIn(f *os.File) *Stream {
	return &Stream{kind: FileIn, file: f, reader: bufio.NewReader(f), closable: f != os.Stdin}
}

// NewFileOut returns a Stream that writes to f.
func NewFileOut(f *os.File) *Stream {
	return &Stream{kind: FileOut, file: f, writer: bufio.NewWriter(f), closable: f != os.Stdout && f != os.Stderr}
}

// NewStringIn returns a Stream that reads from the bytes in buf.
func NewStringIn(buf []byte) *Stream {
	return &Stream{kind: StringIn, buf: buf, max: len(buf)}
}

// NewStringOut returns a Stream that writes into a buffer of capacity max.
// The written bytes are retrieved with Bytes.
func NewStringOut(max int) *Stream {
	return &Stream{kind: StringOut, buf: make([]byte, 0, max), max: max}
}

// Bytes returns the bytes written so far to a StringOut stream.
func (s *Stream) Bytes() []byte {
	return s.buf
}

// Kind reports the backing store of s.
func (s *Stream) Kind() Kind {
	return s.kind
}

// Getc returns the next byte, or EOF at end of stream. A pending Ungetc byte
// is consumed first.
func (s *Stream) Getc() int {
	if s.pushed {
		s.pushed = false
		return int(s.pushByt)
	}
	switch s.kind {
	case FileIn:
		b, err := s.reader.ReadByte()
		if err != nil {
			return EOF
		}
		return int(b)
	case StringIn:
		if s.pos >= s.max {
			return EOF
		}
		b := s.buf[s.pos]
		s.pos++
		return int(b)
	default:
		return EOF
	}
}

// Ungetc pushes back a single byte so the next Getc returns it. Calling
// Ungetc twice without an intervening Getc is a programming error and
// returns false.
func (s *Stream) Ungetc(b byte) bool {
	if s.pushed {
		return false
	}
	s.pushed = true
	s.pushByt = b
	return true
}

// Putc writes a single byte, returning EOF on failure (for example writing
// past the end of a fixed StringOut buffer).
func (s *Stream) Putc(b byte) int {
	switch s.kind {
	case FileOut:
		err := s.writer.WriteByte(b)
		if err != nil {
			return EOF
		}
		return int(b)
	case StringOut:
		if len(s.buf) >= s.max {
			return EOF
		}
		s.buf = append(s.buf, b)
		return int(b)
	default:
		return EOF
	}
}

// Puts writes bytes until (not including) a terminating NUL, or all of b if
// no NUL is present. It returns the number of bytes written, or EOF on the
// first write failure.
func (s *Stream) Puts(b []byte) int {
	n := 0
	for _, c := range b {
		if c == 0 {
			break
		}
		if s.Putc(c) == EOF {
			return EOF
		}
		n++
	}
	return n
}

// Printd writes the base-10 rendering of a signed integer without relying on
// the host's formatted-printing facilities.
func (s *Stream) Printd(n int) int {
	if n == 0 {
		return s.Putc('0')
	}
	neg := n < 0
	u := n
	var digits [24]byte
	i := len(digits)
	if neg {
		u = -u
	}
	for u > 0 {
		i--
		digits[i] = byte('0' + u%10)
		u /= 10
	}
	written := 0
	if neg {
		if s.Putc('-') == EOF {
			return EOF
		}
		written++
	}
	for ; i < len(digits); i++ {
		if s.Putc(digits[i]) == EOF {
			return EOF
		}
		written++
	}
	return written
}

// Flush flushes buffered writes to the underlying file, if any.
func (s *Stream) Flush() error {
	if s.writer != nil {
		return s.writer.Flush()
	}
	return nil
}

// Close flushes and, unless the stream wraps one of the host's standard
// streams, closes the underlying file. Closing a string-backed stream is a
// no-op.
func (s *Stream) Close() error {
	if s.writer != nil {
		if err := s.writer.Flush(); err != nil {
			return err
		}
	}
	if s.file != nil && s.closable {
		return s.file.Close()
	}
	return nil
}

var _ io.Closer = (*Stream)(nil)
