package liblisp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	liblisp "github.com/howerj/liblisp-go"
	"github.com/howerj/liblisp-go/stream"
)

func TestReadEvalPrint(t *testing.T) {
	interp, err := liblisp.Init()
	require.NoError(t, err)

	out := stream.NewStringOut(256)
	interp.SetOutput(out)

	x, err := interp.Read(stream.NewStringIn([]byte("(+ 1 2)")))
	require.NoError(t, err)

	result := interp.Eval(x)
	interp.Print(result)

	assert.Equal(t, "3", string(out.Bytes()))
}

func TestReplEvaluatesEveryFormUntilEOF(t *testing.T) {
	interp, err := liblisp.Init()
	require.NoError(t, err)

	out := stream.NewStringOut(256)
	interp.SetOutput(out)
	interp.SetInput(stream.NewStringIn([]byte("(define x 1) (+ x 1)")))

	code := interp.Repl()

	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n2\n", string(out.Bytes()))
}

func TestReplStopsOnSignal(t *testing.T) {
	interp, err := liblisp.Init()
	require.NoError(t, err)

	out := stream.NewStringOut(256)
	interp.SetOutput(out)
	interp.SetInput(stream.NewStringIn([]byte("(+ 1 1) (+ 2 2)")))

	stop := int32(1)
	interp.Signal = &stop

	code := interp.Repl()

	assert.Equal(t, 0, code)
	assert.Empty(t, out.Bytes())
}
