package serial

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeSerial(t *testing.T) {
	s := New()

	n, err := s.Write([]byte("A 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "A 1\n", s.Written())

	p := make([]byte, 8)
	n, err = s.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	s.Feed([]byte("x"))
	n, err = s.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "x", string(p[:n]))

	require.NoError(t, s.Close())
	_, err = s.Read(p)
	assert.Equal(t, io.EOF, err)
	_, err = s.Write([]byte("A 2\n"))
	assert.Error(t, err)
}
