package trajectory

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adammck/biped/utils"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "trajectory",
})

// Hip generates the flexion angle of one hip over a full gait cycle. The swing
// starts with the leg extended behind the body (the swing start angle), peaks
// at the max flexion, and settles at heel strike at half of the angle spanned
// by a step. The stance then carries it back to the swing start.
//
// All angles are offset by the walking angle.
type Hip struct {
	clock

	maxFlexion   float64
	walkingAngle float64
	swingStart   float64
	stepRange    float64
	legLength    float64
}

func NewHip() *Hip {
	return &Hip{}
}

// Reset clears all parameters and the elapsed time.
func (h *Hip) Reset() {
	*h = Hip{}
}

// SetMaxHipFlexion sets the peak flexion (in degrees) reached during swing.
func (h *Hip) SetMaxHipFlexion(deg float64) {
	h.maxFlexion = deg
}

func (h *Hip) SetWalkingAngle(deg float64) {
	h.walkingAngle = deg
}

// SetSwingStart sets the angle (in degrees) of the hip at toe-off.
func (h *Hip) SetSwingStart(deg float64) {
	h.swingStart = deg
}

// SetStepRange sets the length of a step, in the same unit as the leg length.
func (h *Hip) SetStepRange(r float64) {
	h.stepRange = r
}

func (h *Hip) SetLegLength(l float64) {
	h.legLength = l
}

// StepAngle returns the angle (in degrees) between the legs when both feet
// are on the ground a step range apart.
func (h *Hip) StepAngle() float64 {
	return utils.Deg(2 * math.Asin(h.stepRange/(2*h.legLength)))
}

// Init builds the interpolation curve from the current parameters. It must be
// called after every parameter has been set, and before Advance.
func (h *Hip) Init() error {
	if err := h.validate(); err != nil {
		return err
	}

	if !(h.legLength > 0) {
		return errors.Errorf("trajectory: invalid leg length: %v", h.legLength)
	}

	if h.stepRange < 0 || h.stepRange > 2*h.legLength {
		return errors.Errorf("trajectory: step range %v is out of reach of leg length %v", h.stepRange, h.legLength)
	}

	w := h.walkingAngle
	s := h.stepTime
	xs := []float64{0, h.flexionTime, s, 2 * s}
	ys := []float64{
		h.swingStart + w,
		h.maxFlexion + w,
		h.StepAngle()/2 + w,
		h.swingStart + w,
	}

	log.Debugf("hip keyframes: xs=%v ys=%v", xs, ys)
	return h.fit(xs, ys)
}

// Advance moves the hip forwards one sample, and returns the new angle. The
// done flag is true on the sample which completes a cycle.
func (h *Hip) Advance() (bool, float64, error) {
	return h.advance()
}
