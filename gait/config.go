package gait

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/adammck/biped/utils"
)

// Parameters is a source of gait constants. It's only consulted when building
// a Config, never during ticks.
type Parameters interface {
	MaxHipFlexion() float64
	MaxHipFlexionTimePortion() float64
	HipSwingStart() float64
	StepRange() float64
	LegLength() float64
	MaxKneeFlexion() float64
	SecondKneeFlexion() float64
	MinKneeFlexion() float64
	WalkingAngle() float64
	SampleTime() float64
	HalfStepTime() float64
}

// Shape holds the joint shape parameters. The coordinator doesn't interpret
// them (other than the flexion time portion), it just forwards them to each
// generator.
type Shape struct {
	MaxHipFlexion float64

	// The fraction of the half step at which the hip reaches max flexion.
	MaxHipFlexionTimePortion float64

	HipSwingStart     float64
	StepRange         float64
	LegLength         float64
	MaxKneeFlexion    float64
	SecondKneeFlexion float64
	MinKneeFlexion    float64
}

// Config is everything needed to construct a Coordinator. It is copied into
// the coordinator, so changing it afterwards has no effect.
type Config struct {
	InitialTime  float64
	WalkingAngle float64

	// Seconds per tick.
	SampleTime float64

	// Seconds for one leg's half cycle. Must be a whole number of samples.
	HalfStepTime float64

	Shape Shape
}

// ConfigFrom reads a Config from the given parameter source.
func ConfigFrom(p Parameters) Config {
	return Config{
		WalkingAngle: p.WalkingAngle(),
		SampleTime:   p.SampleTime(),
		HalfStepTime: p.HalfStepTime(),
		Shape: Shape{
			MaxHipFlexion:            p.MaxHipFlexion(),
			MaxHipFlexionTimePortion: p.MaxHipFlexionTimePortion(),
			HipSwingStart:            p.HipSwingStart(),
			StepRange:                p.StepRange(),
			LegLength:                p.LegLength(),
			MaxKneeFlexion:           p.MaxKneeFlexion(),
			SecondKneeFlexion:        p.SecondKneeFlexion(),
			MinKneeFlexion:           p.MinKneeFlexion(),
		},
	}
}

// StepSamples returns the number of samples in a half step.
func (c Config) StepSamples() (int, error) {
	n, ok := utils.Samples(c.HalfStepTime, c.SampleTime)
	if !ok {
		return 0, errors.Errorf("half step time (%v) is not a whole, positive number of samples (%v) of %vs", c.HalfStepTime, n, c.SampleTime)
	}

	return int(n), nil
}

// FlexionOnset returns the sample (within a half step) at which the hip
// reaches max flexion. It isn't necessarily whole.
func (c Config) FlexionOnset() float64 {
	return c.Shape.MaxHipFlexionTimePortion * c.HalfStepTime / c.SampleTime
}

// Validate returns a *ConfigurationError listing every problem with the
// config, or nil if it's usable.
func (c Config) Validate() error {
	var err error

	named := []struct {
		name string
		val  float64
	}{
		{"initial time", c.InitialTime},
		{"walking angle", c.WalkingAngle},
		{"sample time", c.SampleTime},
		{"half step time", c.HalfStepTime},
		{"max hip flexion", c.Shape.MaxHipFlexion},
		{"max hip flexion time portion", c.Shape.MaxHipFlexionTimePortion},
		{"hip swing start", c.Shape.HipSwingStart},
		{"step range", c.Shape.StepRange},
		{"leg length", c.Shape.LegLength},
		{"max knee flexion", c.Shape.MaxKneeFlexion},
		{"second knee flexion", c.Shape.SecondKneeFlexion},
		{"min knee flexion", c.Shape.MinKneeFlexion},
	}

	for _, n := range named {
		if !utils.Finite(n.val) {
			err = multierr.Append(err, errors.Errorf("%s is not finite: %v", n.name, n.val))
		}
	}

	if !(c.SampleTime > 0) {
		err = multierr.Append(err, errors.Errorf("sample time must be positive: %v", c.SampleTime))
	}

	if !(c.HalfStepTime > 0) {
		err = multierr.Append(err, errors.Errorf("half step time must be positive: %v", c.HalfStepTime))
	}

	if p := c.Shape.MaxHipFlexionTimePortion; !(p > 0 && p < 1) {
		err = multierr.Append(err, errors.Errorf("max hip flexion time portion must be within (0, 1): %v", p))
	}

	// Only worth deriving once the inputs are sane.
	if err == nil {
		if _, serr := c.StepSamples(); serr != nil {
			err = multierr.Append(err, serr)
		}
	}

	if err != nil {
		return &ConfigurationError{Problems: multierr.Errors(err)}
	}

	return nil
}
