package gait

import (
	"github.com/sirupsen/logrus"

	"github.com/adammck/biped/gait/trajectory"
)

// Generator is the part of the joint trajectory contract shared by hips and
// knees. Reset may be called at any time; Init must be called exactly once,
// after every setter and before the first Advance.
type Generator interface {
	Reset()
	SetSampleTime(seconds float64)
	SetStepTime(samples float64)
	SetMaxHipFlexionTime(samples float64)
	Init() error
	Advance() (done bool, angle float64, err error)
	Elapsed() float64
}

// Hip is a hip trajectory generator.
type Hip interface {
	Generator
	SetMaxHipFlexion(deg float64)
	SetWalkingAngle(deg float64)
	SetSwingStart(deg float64)
	SetStepRange(r float64)
	SetLegLength(l float64)
}

// Knee is a knee trajectory generator.
type Knee interface {
	Generator
	SetMaxKneeFlexion(deg float64)
	SetSecondKneeFlexion(deg float64)
	SetMinKneeFlexion(deg float64)
}

type options struct {
	newHip  func() Hip
	newKnee func() Knee
	log     logrus.FieldLogger
}

func defaultOptions() options {
	return options{
		newHip:  func() Hip { return trajectory.NewHip() },
		newKnee: func() Knee { return trajectory.NewKnee() },
		log:     log,
	}
}

// Option customizes a Coordinator.
type Option func(*options)

// WithGenerators replaces the constructors used to create the four joint
// generators. Each call must return a new, unshared instance.
func WithGenerators(newHip func() Hip, newKnee func() Knee) Option {
	return func(o *options) {
		o.newHip = newHip
		o.newKnee = newKnee
	}
}

// WithLogger sets the logger which phase changes are reported to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}
