package walker

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/adammck/biped"
	"github.com/adammck/biped/gait"
	"github.com/adammck/biped/link"
	"github.com/adammck/biped/utils"
)

type State string

const (
	sDefault State = ""
	sWalking State = "sWalking"
	sStopped State = "sStopped"
	sHalt    State = "sHalt"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "walker",
})

// Gait is the part of *gait.Coordinator which the walker needs.
type Gait interface {
	TickDone() (gait.Angles, gait.Done, error)
	Now() float64
}

// Walker plays back a gait, one sample per tick, and sends each frame to the
// joint controller. Playback can be paused and resumed from any goroutine;
// while paused, the last frame is sent again so the joints hold still.
type Walker struct {
	State        State
	stateCounter int

	gait   Gait
	enc    *link.Encoder
	paused *atomic.Bool

	// The last frame sent, and whether there has been one.
	last     gait.Angles
	lastTime float64
	sent     bool

	// Rising edges of the left hip's done flag. One per gait cycle.
	cycle  utils.Latch
	cycles int
}

func New(g Gait, w io.Writer) *Walker {
	return &Walker{
		State:  sDefault,
		gait:   g,
		enc:    link.NewEncoder(w),
		paused: atomic.NewBool(false),
	}
}

func (w *Walker) Boot() error {
	log.Infof("booting")
	return nil
}

func (w *Walker) SetState(s State) {
	log.Infof("state=%v", s)
	w.stateCounter = 0
	w.State = s
}

// Stop pauses playback at the next tick.
func (w *Walker) Stop() {
	w.paused.Store(true)
}

// Resume continues playback from where it was paused.
func (w *Walker) Resume() {
	w.paused.Store(false)
}

// Toggle pauses playback if it's running, or resumes it if it's paused. It
// returns true if playback is now paused.
func (w *Walker) Toggle() bool {
	return !w.paused.Toggle()
}

// Paused returns true if playback is paused, or will be at the next tick.
func (w *Walker) Paused() bool {
	return w.paused.Load()
}

// Cycles returns the number of complete gait cycles played back.
func (w *Walker) Cycles() int {
	return w.cycles
}

// Frames returns the number of frames sent.
func (w *Walker) Frames() int {
	return w.enc.Frames()
}

func (w *Walker) Tick(now time.Time, state *biped.State) error {
	w.stateCounter += 1

	switch w.State {
	case sDefault:
		w.SetState(sWalking)

	case sWalking:
		if state.Shutdown {
			w.SetState(sHalt)
			break
		}

		if w.paused.Load() {
			w.SetState(sStopped)
			break
		}

		a, d, err := w.gait.TickDone()
		if err != nil {
			return err
		}

		if w.cycle.Run(d.LeftHip) {
			w.cycles += 1
			log.Infof("cycle=%d t=%0.3f", w.cycles, w.gait.Now())
		}

		return w.send(w.gait.Now(), a)

	// Hold the last position until resumed.
	case sStopped:
		if state.Shutdown {
			w.SetState(sHalt)
			break
		}

		if !w.paused.Load() {
			w.SetState(sWalking)
			break
		}

		if w.sent {
			return w.send(w.lastTime, w.last)
		}

	case sHalt:
		if w.stateCounter == 1 {
			log.Infof("halted after %d frames, %d cycles", w.enc.Frames(), w.cycles)
		}

		state.Halted = true

	default:
		return fmt.Errorf("unknown state: %#v", w.State)
	}

	return nil
}

func (w *Walker) send(t float64, a gait.Angles) error {
	err := w.enc.Encode(t, a)
	if err != nil {
		return err
	}

	w.last = a
	w.lastTime = t
	w.sent = true
	log.Debugf("t=%0.3f %s", t, a)
	return nil
}
