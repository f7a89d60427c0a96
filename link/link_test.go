package link

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/biped/gait"
)

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("unplugged")
}

func TestEncode(t *testing.T) {
	buf := &bytes.Buffer{}
	e := NewEncoder(buf)

	require.NoError(t, e.Encode(0.001, gait.Angles{0, -6.934, 15, -6.934, 15}))
	require.NoError(t, e.Encode(1.5, gait.Angles{10, 1.23456, 60, -2, 2}))

	assert.Equal(t, ""+
		"A 0.0010 0.0000 -6.9340 15.0000 -6.9340 15.0000\n"+
		"A 1.5000 10.0000 1.2346 60.0000 -2.0000 2.0000\n", buf.String())
	assert.Equal(t, 2, e.Frames())
}

func TestEncodeError(t *testing.T) {
	e := NewEncoder(brokenWriter{})
	err := e.Encode(0, gait.Angles{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unplugged")
	assert.Equal(t, 0, e.Frames())
}
