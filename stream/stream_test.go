package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringInGetc(t *testing.T) {
	s := NewStringIn([]byte("ab"))
	assert.Equal(t, int('a'), s.Getc())
	assert.Equal(t, int('b'), s.Getc())
	assert.Equal(t, EOF, s.Getc())
}

func TestUngetc(t *testing.T) {
	s := NewStringIn([]byte("ab"))
	assert.Equal(t, int('a'), s.Getc())
	assert.True(t, s.Ungetc('x'))
	assert.False(t, s.Ungetc('y')) // double ungetc without intervening Getc fails
	assert.Equal(t, int('x'), s.Getc())
	assert.Equal(t, int('b'), s.Getc())
}

func TestStringOutPutc(t *testing.T) {
	s := NewStringOut(2)
	assert.Equal(t, int('a'), s.Putc('a'))
	assert.Equal(t, int('b'), s.Putc('b'))
	assert.Equal(t, EOF, s.Putc('c'))
	assert.Equal(t, []byte("ab"), s.Bytes())
}

func TestPuts(t *testing.T) {
	s := NewStringOut(16)
	n := s.Puts([]byte("hello\x00world"))
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), s.Bytes())
}

func TestPrintd(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "-7"},
		{12345, "12345"},
		{-12345, "-12345"},
	} {
		s := NewStringOut(32)
		s.Printd(tc.n)
		assert.Equal(t, tc.want, string(s.Bytes()))
	}
}
