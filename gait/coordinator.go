package gait

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "gait",
})

// leg owns the generators of one leg. They're never shared.
type leg struct {
	side Side
	hip  Hip
	knee Knee
}

// Coordinator plays back the hip and knee trajectories of both legs, and
// combines them into one Angles per tick. The right leg mirrors the left for
// the first half step, then runs from its own generators, half a cycle
// behind.
//
// A Coordinator must only be ticked from one goroutine.
type Coordinator struct {
	cfg   Config
	log   logrus.FieldLogger
	left  leg
	right leg

	// The left hip's elapsed time at the end of the first half step. It's
	// the same product the generator's clock computes, so the strict
	// comparison flips exactly one sample after the half step.
	halfStep float64

	phase Phase
	ticks int
	done  Done
}

// New creates a Coordinator, and configures and arms its four generators. If
// the config is invalid, or any generator fails to initialize, a
// *ConfigurationError is returned and no coordinator is.
func New(cfg Config, opts ...Option) (*Coordinator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	steps, err := cfg.StepSamples()
	if err != nil {
		return nil, &ConfigurationError{Problems: []error{err}}
	}

	c := &Coordinator{
		cfg:      cfg,
		log:      o.log,
		halfStep: float64(steps) * cfg.SampleTime,
		phase:    Mirroring,
	}

	c.left, err = c.configureLeg(Left, o)
	if err != nil {
		return nil, err
	}

	c.right, err = c.configureLeg(Right, o)
	if err != nil {
		return nil, err
	}

	c.log.Debugf("armed: sample=%vs half_step=%vs onset=%v walking_angle=%v", cfg.SampleTime, cfg.HalfStepTime, cfg.FlexionOnset(), cfg.WalkingAngle)
	return c, nil
}

// configureLeg creates the generators for one leg, applies every parameter,
// and initializes them. Both legs go through here so they can't drift apart.
func (c *Coordinator) configureLeg(side Side, o options) (leg, error) {
	steps, err := c.cfg.StepSamples()
	if err != nil {
		return leg{}, &ConfigurationError{Problems: []error{err}}
	}

	sh := c.cfg.Shape
	l := leg{
		side: side,
		hip:  o.newHip(),
		knee: o.newKnee(),
	}

	for _, g := range []Generator{l.hip, l.knee} {
		g.Reset()
		g.SetSampleTime(c.cfg.SampleTime)
		g.SetStepTime(float64(steps))
		g.SetMaxHipFlexionTime(c.cfg.FlexionOnset())
	}

	l.hip.SetMaxHipFlexion(sh.MaxHipFlexion)
	l.hip.SetWalkingAngle(c.cfg.WalkingAngle)
	l.hip.SetSwingStart(sh.HipSwingStart)
	l.hip.SetStepRange(sh.StepRange)
	l.hip.SetLegLength(sh.LegLength)

	l.knee.SetMaxKneeFlexion(sh.MaxKneeFlexion)
	l.knee.SetSecondKneeFlexion(sh.SecondKneeFlexion)
	l.knee.SetMinKneeFlexion(sh.MinKneeFlexion)

	if err := l.hip.Init(); err != nil {
		return leg{}, &ConfigurationError{Problems: []error{errors.Wrapf(err, "initializing %s", side.Hip())}}
	}

	if err := l.knee.Init(); err != nil {
		return leg{}, &ConfigurationError{Problems: []error{errors.Wrapf(err, "initializing %s", side.Knee())}}
	}

	return l, nil
}

// Tick advances the gait by one sample, and returns the angles to send to the
// joint controller.
func (c *Coordinator) Tick() (Angles, error) {
	a, _, err := c.TickDone()
	return a, err
}

// TickDone is Tick, but also returns the cycle-completion flags reported by
// the generators. They're informational; the coordinator doesn't act on them.
func (c *Coordinator) TickDone() (Angles, Done, error) {
	var (
		d      Done
		lh, lk float64
		err    error
	)

	d.LeftHip, lh, err = c.left.hip.Advance()
	if err != nil {
		return Angles{}, Done{}, &CollaboratorFault{Joint: LeftHip, Err: err}
	}

	d.LeftKnee, lk, err = c.left.knee.Advance()
	if err != nil {
		return Angles{}, Done{}, &CollaboratorFault{Joint: LeftKnee, Err: err}
	}

	// Until the right leg starts, it copies the left.
	rh, rk := lh, lk

	next := c.phase.Next(c.left.hip.Elapsed(), c.halfStep)
	if next == Independent {
		d.RightHip, rh, err = c.right.hip.Advance()
		if err != nil {
			return Angles{}, Done{}, &CollaboratorFault{Joint: RightHip, Err: err}
		}

		d.RightKnee, rk, err = c.right.knee.Advance()
		if err != nil {
			return Angles{}, Done{}, &CollaboratorFault{Joint: RightKnee, Err: err}
		}
	}

	if next != c.phase {
		c.log.Infof("phase=%v t=%v tick=%d", next, c.Time(), c.ticks+1)
		c.phase = next
	}

	c.ticks += 1
	c.done = d

	w := c.cfg.WalkingAngle
	return Angles{w, lh - w, lk, rh - w, rk}, d, nil
}

// Time returns the elapsed time of the left hip, which is the clock that both
// legs are locked to.
func (c *Coordinator) Time() float64 {
	return c.left.hip.Elapsed()
}

// Now returns the elapsed time offset by the configured initial time.
func (c *Coordinator) Now() float64 {
	return c.cfg.InitialTime + c.Time()
}

// Phase returns the current relationship between the legs.
func (c *Coordinator) Phase() Phase {
	return c.phase
}

// RightLegStarted returns true once the right leg runs from its own
// generators. It never goes back to false.
func (c *Coordinator) RightLegStarted() bool {
	return c.phase == Independent
}

// Ticks returns the number of successful ticks.
func (c *Coordinator) Ticks() int {
	return c.ticks
}

// LastDone returns the completion flags of the last successful tick.
func (c *Coordinator) LastDone() Done {
	return c.done
}

// Config returns a copy of the coordinator's config.
func (c *Coordinator) Config() Config {
	return c.cfg
}
