package gait

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseNext(t *testing.T) {
	type eg struct {
		from    Phase
		elapsed float64
		exp     Phase
	}

	examples := []eg{
		{Mirroring, 0.0, Mirroring},
		{Mirroring, 0.9, Mirroring},
		{Mirroring, 1.0, Mirroring},
		{Mirroring, 1.0000001, Independent},
		{Independent, 0.0, Independent},
		{Independent, 5.0, Independent},
	}

	for i, x := range examples {
		assert.Equal(t, x.exp, x.from.Next(x.elapsed, 1.0), "example #%d", i+1)
	}
}

func TestSideJoints(t *testing.T) {
	assert.Equal(t, LeftHip, Left.Hip())
	assert.Equal(t, LeftKnee, Left.Knee())
	assert.Equal(t, RightHip, Right.Hip())
	assert.Equal(t, RightKnee, Right.Knee())
	assert.Equal(t, []Joint{LeftHip, LeftKnee, RightHip, RightKnee}, Joints())
}

func TestAnglesAccessors(t *testing.T) {
	a := Angles{1, 2, 3, 4, 5}
	assert.Equal(t, 1.0, a.WalkingAngle())
	assert.Equal(t, 2.0, a.LeftHip())
	assert.Equal(t, 3.0, a.LeftKnee())
	assert.Equal(t, 4.0, a.RightHip())
	assert.Equal(t, 5.0, a.RightKnee())
	assert.True(t, a.Finite())
	assert.False(t, Done{}.Any())
	assert.True(t, Done{RightKnee: true}.Any())
}
