package trajectory

// Knee generates the flexion angle of one knee over a full gait cycle. It is
// partly flexed at toe-off, peaks during swing in step with the hip, extends
// fully at heel strike, then flexes slightly (loading response) and extends
// again during stance before flexing towards the next toe-off.
//
// Knee angles have no yaw component, so the walking angle doesn't apply.
type Knee struct {
	clock

	maxFlexion    float64
	secondFlexion float64
	minFlexion    float64
}

func NewKnee() *Knee {
	return &Knee{}
}

// Reset clears all parameters and the elapsed time.
func (k *Knee) Reset() {
	*k = Knee{}
}

// SetMaxKneeFlexion sets the peak flexion (in degrees) reached during swing.
func (k *Knee) SetMaxKneeFlexion(deg float64) {
	k.maxFlexion = deg
}

// SetSecondKneeFlexion sets the smaller flexion peak of the stance phase,
// which is also the angle at toe-off.
func (k *Knee) SetSecondKneeFlexion(deg float64) {
	k.secondFlexion = deg
}

// SetMinKneeFlexion sets the angle of the (almost) straight knee.
func (k *Knee) SetMinKneeFlexion(deg float64) {
	k.minFlexion = deg
}

// Init builds the interpolation curve from the current parameters. It must be
// called after every parameter has been set, and before Advance.
func (k *Knee) Init() error {
	if err := k.validate(); err != nil {
		return err
	}

	s := k.stepTime
	xs := []float64{0, k.flexionTime, s, s + s/3, s + 2*s/3, 2 * s}
	ys := []float64{
		k.secondFlexion,
		k.maxFlexion,
		k.minFlexion,
		k.secondFlexion,
		k.minFlexion,
		k.secondFlexion,
	}

	log.Debugf("knee keyframes: xs=%v ys=%v", xs, ys)
	return k.fit(xs, ys)
}

// Advance moves the knee forwards one sample, and returns the new angle. The
// done flag is true on the sample which completes a cycle.
func (k *Knee) Advance() (bool, float64, error) {
	return k.advance()
}
