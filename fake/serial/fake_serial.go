package serial

import (
	"bytes"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "fake/serial",
})

// FakeSerial stands in for the port to the joint controller. Writes are kept
// in memory; reads return whatever was queued with Feed, or EOF once closed.
type FakeSerial struct {
	mu     sync.Mutex
	in     bytes.Buffer
	out    bytes.Buffer
	closed bool
}

func New() *FakeSerial {
	return &FakeSerial{}
}

func (s *FakeSerial) Read(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.in.Len() == 0 {
		if s.closed {
			return 0, io.EOF
		}
		return 0, nil
	}

	n, _ = s.in.Read(p)
	logger.Debugf("read %d bytes", n)
	return n, nil
}

func (s *FakeSerial) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, io.ErrClosedPipe
	}

	logger.Debugf("write: %q", p)
	return s.out.Write(p)
}

func (s *FakeSerial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Debugf("close")
	s.closed = true
	return nil
}

// Feed queues bytes to be returned by Read, as if typed at the other end.
func (s *FakeSerial) Feed(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.in.Write(p)
}

// Written returns everything written so far.
func (s *FakeSerial) Written() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}
