package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howerj/liblisp-go/lisp"
	"github.com/howerj/liblisp-go/printer"
	"github.com/howerj/liblisp-go/stream"
)

func render(c *lisp.Cell) string {
	s := stream.NewStringOut(1024)
	printer.Fprint(s, c)
	return string(s.Bytes())
}

func TestPrintScalars(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	assert.Equal(t, "()", render(interp.NilVal))
	assert.Equal(t, "t", render(interp.TeeVal))
	assert.Equal(t, "42", render(interp.Int(42)))
	assert.Equal(t, "-7", render(interp.Int(-7)))
	assert.Equal(t, "foo", render(interp.Sym("foo")))
}

func TestPrintString(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	assert.Equal(t, `"hello"`, render(interp.Str([]byte("hello"))))
	assert.Equal(t, `"a\"b"`, render(interp.Str([]byte(`a"b`))))
	assert.Equal(t, `"a\nb"`, render(interp.Str([]byte("a\nb"))))
}

func TestPrintList(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	lis := interp.ListOf(interp.Int(1), interp.Int(2), interp.Int(3))
	assert.Equal(t, "(1 2 3)", render(lis))
}

func TestPrintDoesNotMutate(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	lis := interp.ListOf(interp.Int(1), interp.Int(2))
	before := len(lis.List)
	render(lis)
	assert.Equal(t, before, len(lis.List))
}
