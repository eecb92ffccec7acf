package lisp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howerj/liblisp-go/lisp"
	"github.com/howerj/liblisp-go/printer"
	"github.com/howerj/liblisp-go/stream"
)

func printCell(c *lisp.Cell) string {
	s := stream.NewStringOut(1024)
	printer.Fprint(s, c)
	return string(s.Bytes())
}

func TestReaderPrinterRoundTrip(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	for _, src := range []string{
		"42",
		"-17",
		"foo-bar",
		`"a string"`,
		"()",
		"(1 2 3)",
		"(foo (bar 1) (baz \"x\"))",
	} {
		x := parse(t, interp, src)
		assert.Equal(t, src, printCell(x), src)
	}
}
