package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howerj/liblisp-go/lisp"
	"github.com/howerj/liblisp-go/reader"
	"github.com/howerj/liblisp-go/stream"
)

func read(t *testing.T, interp *lisp.Interpreter, src string) *lisp.Cell {
	t.Helper()
	c, err := reader.Read(interp, stream.NewStringIn([]byte(src)))
	require.NoError(t, err)
	return c
}

func TestReadInteger(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	for _, tc := range []struct {
		src  string
		want int
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"+7", 7},
		{"0x1F", 31},
		{"017", 15},
	} {
		c := read(t, interp, tc.src)
		require.Equal(t, lisp.Integer, c.Tag, tc.src)
		assert.Equal(t, tc.want, c.Int, tc.src)
	}
}

func TestReadSymbol(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	c := read(t, interp, "foo-bar?")
	require.Equal(t, lisp.Symbol, c.Tag)
	assert.Equal(t, "foo-bar?", c.Sym)
}

func TestReadString(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	c := read(t, interp, `"hello\nworld"`)
	require.Equal(t, lisp.String, c.Tag)
	assert.Equal(t, "hello\nworld", string(c.Str))
}

func TestReadOctalEscape(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	c := read(t, interp, `"\101"`)
	require.Equal(t, lisp.String, c.Tag)
	assert.Equal(t, "A", string(c.Str))
}

func TestReadList(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	c := read(t, interp, "(+ 1 2 3)")
	require.Equal(t, lisp.List, c.Tag)
	require.Len(t, c.List, 4)
	assert.Equal(t, "+", c.List[0].Sym)
	assert.Equal(t, 1, c.List[1].Int)
}

func TestReadEmptyList(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	c := read(t, interp, "()")
	assert.Equal(t, lisp.List, c.Tag)
	assert.Equal(t, 0, c.Len())
}

func TestReadUnmatchedParen(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	_, err = reader.Read(interp, stream.NewStringIn([]byte(")")))
	assert.Error(t, err)
}

func TestReadEOFInsideList(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	_, err = reader.Read(interp, stream.NewStringIn([]byte("(1 2")))
	assert.ErrorIs(t, err, reader.ErrIncomplete)
}

func TestReadEOF(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	_, err = reader.Read(interp, stream.NewStringIn([]byte("   ")))
	assert.ErrorIs(t, err, reader.ErrEOF)
}

func TestReadNestedDefineForm(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	c := read(t, interp, `(define sq (lambda (x) (* x x)))`)
	require.Equal(t, lisp.List, c.Tag)
	require.Len(t, c.List, 3)
}
