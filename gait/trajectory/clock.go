package trajectory

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"
)

// ErrNotInitialized is returned by Advance when Init has not (successfully)
// been called since the last Reset.
var ErrNotInitialized = errors.New("trajectory: advance called before init")

// clock is the timing half of a joint trajectory. It counts whole samples,
// so the elapsed time is always samples*sampleTime and never drifts.
type clock struct {
	sampleTime  float64
	stepTime    float64
	flexionTime float64

	// Set by init.
	steps   int
	samples int
	curve   *interp.FritschButland
}

// SetSampleTime sets the duration (in seconds) of a single sample.
func (c *clock) SetSampleTime(s float64) {
	c.sampleTime = s
}

// SetStepTime sets the number of samples in a half cycle (one swing).
func (c *clock) SetStepTime(samples float64) {
	c.stepTime = samples
}

// SetMaxHipFlexionTime sets the sample (within the swing) at which the hip
// reaches its maximum flexion.
func (c *clock) SetMaxHipFlexionTime(samples float64) {
	c.flexionTime = samples
}

// StepTime returns the number of samples in a half cycle, once initialized.
func (c *clock) StepTime() int {
	return c.steps
}

// Elapsed returns the time (in seconds) which has been played back since the
// last reset.
func (c *clock) Elapsed() float64 {
	return float64(c.samples) * c.sampleTime
}

func (c *clock) validate() error {
	if !(c.sampleTime > 0) || math.IsInf(c.sampleTime, 0) {
		return errors.Errorf("trajectory: invalid sample time: %v", c.sampleTime)
	}

	if math.IsNaN(c.stepTime) || c.stepTime < 1 || c.stepTime != math.Trunc(c.stepTime) || math.IsInf(c.stepTime, 0) {
		return errors.Errorf("trajectory: step time must be a whole number of samples: %v", c.stepTime)
	}

	if !(c.flexionTime > 0) || c.flexionTime >= c.stepTime {
		return errors.Errorf("trajectory: max hip flexion time (%v) must be within the step (%v)", c.flexionTime, c.stepTime)
	}

	return nil
}

// fit builds the interpolation curve through the given keyframes. The x
// values are in samples from the start of the cycle.
func (c *clock) fit(xs, ys []float64) error {
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return errors.Errorf("trajectory: keyframe #%d is not finite", i)
		}
	}

	curve := &interp.FritschButland{}
	if err := curve.Fit(xs, ys); err != nil {
		return errors.Wrap(err, "trajectory: fitting keyframes")
	}

	c.steps = int(c.stepTime)
	c.samples = 0
	c.curve = curve
	return nil
}

// advance moves forwards one sample, and returns the interpolated value at
// the new position. The cycle (swing then stance) is 2*steps long. When it
// completes, done is true and the next sample starts the following cycle.
func (c *clock) advance() (bool, float64, error) {
	if c.curve == nil {
		return false, 0, ErrNotInitialized
	}

	c.samples += 1
	period := 2 * c.steps
	pos := c.samples % period
	done := pos == 0
	if done {
		pos = period
	}

	return done, c.curve.Predict(float64(pos)), nil
}
