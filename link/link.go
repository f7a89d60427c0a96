package link

import (
	"fmt"
	"io"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adammck/biped/gait"
)

const (

	// The rate which the joint controller board listens at.
	DefaultBaud = 115200
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "link",
})

// Options describe the serial port which frames are sent over.
type Options struct {
	Port string
	Baud uint
}

// Open opens the serial port (8N1) to the joint controller.
func Open(o Options) (io.ReadWriteCloser, error) {
	if o.Baud == 0 {
		o.Baud = DefaultBaud
	}

	log.Infof("opening %s at %d baud", o.Port, o.Baud)
	port, err := serial.Open(serial.OpenOptions{
		PortName:              o.Port,
		BaudRate:              o.Baud,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: 100,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening serial port %s", o.Port)
	}

	return port, nil
}

// Encoder writes one line per frame:
//
//	A <time> <walking angle> <left hip> <left knee> <right hip> <right knee>
//
// with every value to four decimal places.
type Encoder struct {
	w      io.Writer
	frames int
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes a single frame.
func (e *Encoder) Encode(t float64, a gait.Angles) error {
	_, err := fmt.Fprintf(e.w, "A %.4f %.4f %.4f %.4f %.4f %.4f\n", t, a[0], a[1], a[2], a[3], a[4])
	if err != nil {
		return errors.Wrapf(err, "writing frame #%d", e.frames+1)
	}

	e.frames += 1
	return nil
}

// Frames returns the number of frames written successfully.
func (e *Encoder) Frames() int {
	return e.frames
}
