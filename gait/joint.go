package gait

import (
	"fmt"
	"math"
)

// Side identifies a leg.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Joint identifies one of the four driven joints.
type Joint string

const (
	LeftHip   Joint = "left_hip"
	LeftKnee  Joint = "left_knee"
	RightHip  Joint = "right_hip"
	RightKnee Joint = "right_knee"
)

// Joints returns all joints, in the order they are advanced each tick.
func Joints() []Joint {
	return []Joint{
		LeftHip,
		LeftKnee,
		RightHip,
		RightKnee,
	}
}

// Hip returns the hip joint of the leg.
func (s Side) Hip() Joint {
	if s == Right {
		return RightHip
	}

	return LeftHip
}

// Knee returns the knee joint of the leg.
func (s Side) Knee() Joint {
	if s == Right {
		return RightKnee
	}

	return LeftKnee
}

// Indices into Angles.
const (
	iWalkingAngle = iota
	iLeftHip
	iLeftKnee
	iRightHip
	iRightKnee
)

// Angles is the output of a single tick, in the order expected by the joint
// controller: walking angle, left hip, left knee, right hip, right knee. Hip
// angles are relative to the walking angle; knee angles are absolute.
type Angles [5]float64

func (a Angles) WalkingAngle() float64 { return a[iWalkingAngle] }
func (a Angles) LeftHip() float64      { return a[iLeftHip] }
func (a Angles) LeftKnee() float64     { return a[iLeftKnee] }
func (a Angles) RightHip() float64     { return a[iRightHip] }
func (a Angles) RightKnee() float64    { return a[iRightKnee] }

// Finite returns true if no angle is NaN or infinite.
func (a Angles) Finite() bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func (a Angles) String() string {
	return fmt.Sprintf("&Angles{w=%0.3f lh=%0.3f lk=%0.3f rh=%0.3f rk=%0.3f}", a[0], a[1], a[2], a[3], a[4])
}

// Done holds the cycle-completion flags reported by each generator during the
// last tick. The right leg's flags stay false while it mirrors the left.
type Done struct {
	LeftHip   bool
	LeftKnee  bool
	RightHip  bool
	RightKnee bool
}

// Any returns true if any generator completed a cycle.
func (d Done) Any() bool {
	return d.LeftHip || d.LeftKnee || d.RightHip || d.RightKnee
}
