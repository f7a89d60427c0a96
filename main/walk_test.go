package main

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/adammck/biped/components/walker"
	"github.com/adammck/biped/fake/serial"
)

// countingReader counts calls to Read, including the empty ones.
type countingReader struct {
	r     io.Reader
	reads atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads.Inc()
	return c.r.Read(p)
}

func TestListenSurvivesIdlePort(t *testing.T) {
	port := serial.New()
	r := &countingReader{r: port}
	w := walker.New(nil, io.Discard)

	done := make(chan struct{})
	go func() {
		listen(r, w)
		close(done)
	}()

	// Well past the point where a bufio.Reader gives up with ErrNoProgress.
	require.Eventually(t, func() bool { return r.reads.Load() > 500 }, time.Second, time.Millisecond)
	assert.False(t, w.Paused())

	port.Feed([]byte("x"))
	assert.Eventually(t, w.Paused, time.Second, time.Millisecond)

	port.Feed([]byte("y"))
	assert.Eventually(t, func() bool { return !w.Paused() }, time.Second, time.Millisecond)

	// Two bytes in one read toggle twice.
	port.Feed([]byte("ab"))
	n := r.reads.Load()
	require.Eventually(t, func() bool { return r.reads.Load() > n+1 }, time.Second, time.Millisecond)
	assert.False(t, w.Paused())

	port.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listen didn't return after the port was closed")
	}
}
