package gait

// Phase is the relationship between the two legs. The right leg mirrors the
// left until the left has played back a full half step, and then runs from
// its own generators forever.
type Phase string

const (
	Mirroring   Phase = "mirroring"
	Independent Phase = "independent"
)

// Next returns the phase which follows p, given the elapsed time of the left
// hip and the half step time. The comparison is strict: at exactly one half
// step, the right leg is still mirroring.
func (p Phase) Next(elapsed, halfStep float64) Phase {
	if p == Independent || elapsed > halfStep {
		return Independent
	}

	return Mirroring
}
