package lisp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/howerj/liblisp-go/lisp"
	"github.com/howerj/liblisp-go/reader"
	"github.com/howerj/liblisp-go/stream"
)

// parse reads exactly one top-level form from src, failing the test on any
// read error.
func parse(t *testing.T, interp *lisp.Interpreter, src string) *lisp.Cell {
	t.Helper()
	x, err := reader.Read(interp, stream.NewStringIn([]byte(src)))
	require.NoError(t, err)
	return x
}
