package lisp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howerj/liblisp-go/lisp"
)

func TestCellLen(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	lis := interp.ListOf(interp.Int(1), interp.Int(2), interp.Int(3))
	assert.Equal(t, 3, lis.Len())

	s := interp.Str([]byte("abc"))
	assert.Equal(t, 3, s.Len())

	assert.Equal(t, 0, interp.Int(1).Len())
}

func TestCellIsNil(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	assert.True(t, interp.NilVal.IsNil())
	assert.False(t, interp.TeeVal.IsNil())
	assert.False(t, interp.Int(0).IsNil())
}

func TestCarCdr(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	lis := interp.ListOf(interp.Int(1), interp.Int(2), interp.Int(3))
	assert.Equal(t, 1, interp.Car(lis).Int)

	rest := interp.Cdr(lis)
	require.Equal(t, lisp.List, rest.Tag)
	require.Len(t, rest.List, 2)
	assert.Equal(t, 2, rest.List[0].Int)

	empty := interp.ListOf()
	assert.True(t, interp.Car(empty).IsNil())
	assert.True(t, interp.Cdr(empty).IsNil())
}

func TestNthNegativeIndex(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	lis := interp.ListOf(interp.Int(10), interp.Int(20), interp.Int(30))
	assert.Equal(t, 30, interp.Nth(lis, -1).Int)
	assert.Equal(t, 10, interp.Nth(lis, -3).Int)
	assert.True(t, interp.Nth(lis, -4).IsNil())
	assert.True(t, interp.Nth(lis, 3).IsNil())
}

func TestNthString(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	s := interp.Str([]byte("abc"))
	assert.Equal(t, int('a'), interp.Nth(s, 0).Int)
	assert.Equal(t, int('c'), interp.Nth(s, -1).Int)
}

func TestProcAccessors(t *testing.T) {
	interp, err := lisp.Init()
	require.NoError(t, err)

	params := interp.ListOf(interp.Sym("x"))
	body := interp.Sym("x")
	proc := interp.Lambda(params, body, interp.Env)

	assert.Same(t, params, proc.ProcParams())
	assert.Same(t, body, proc.ProcBody())
	assert.Equal(t, lisp.List, proc.ProcEnv().Tag)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "integer", lisp.Integer.String())
	assert.Equal(t, "nil", lisp.Nil.String())
	assert.Equal(t, "invalid", lisp.Tag(999).String())
}
