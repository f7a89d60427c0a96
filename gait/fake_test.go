package gait

import (
	"github.com/adammck/biped/gait/trajectory"
)

// fakeGen is a generator which records the calls made to it, and returns a
// ramp (or a canned error) from Advance.
type fakeGen struct {
	joint   string
	calls   []string
	initErr error
	advErr  error

	sampleTime float64
	stepTime   float64
	onset      float64
	samples    int
}

func (f *fakeGen) Reset()                         { f.calls = append(f.calls, "reset"); f.samples = 0 }
func (f *fakeGen) SetSampleTime(s float64)        { f.calls = append(f.calls, "set"); f.sampleTime = s }
func (f *fakeGen) SetStepTime(s float64)          { f.calls = append(f.calls, "set"); f.stepTime = s }
func (f *fakeGen) SetMaxHipFlexionTime(s float64) { f.calls = append(f.calls, "set"); f.onset = s }
func (f *fakeGen) SetMaxHipFlexion(float64)       { f.calls = append(f.calls, "set") }
func (f *fakeGen) SetWalkingAngle(float64)        { f.calls = append(f.calls, "set") }
func (f *fakeGen) SetSwingStart(float64)          { f.calls = append(f.calls, "set") }
func (f *fakeGen) SetStepRange(float64)           { f.calls = append(f.calls, "set") }
func (f *fakeGen) SetLegLength(float64)           { f.calls = append(f.calls, "set") }
func (f *fakeGen) SetMaxKneeFlexion(float64)      { f.calls = append(f.calls, "set") }
func (f *fakeGen) SetSecondKneeFlexion(float64)   { f.calls = append(f.calls, "set") }
func (f *fakeGen) SetMinKneeFlexion(float64)      { f.calls = append(f.calls, "set") }
func (f *fakeGen) Elapsed() float64               { return float64(f.samples) * f.sampleTime }

func (f *fakeGen) Init() error {
	f.calls = append(f.calls, "init")
	return f.initErr
}

func (f *fakeGen) Advance() (bool, float64, error) {
	f.calls = append(f.calls, "advance")
	if f.advErr != nil {
		return false, 0, f.advErr
	}

	f.samples += 1
	return f.samples%int(2*f.stepTime) == 0, float64(f.samples), nil
}

// fakes hands out fakeGens in creation order, so tests can get at the
// generators owned by a coordinator: [left hip, left knee, right hip, right
// knee].
type fakes struct {
	gens  []*fakeGen
	setup func(i int, f *fakeGen)
}

func (fs *fakes) next(joint string) *fakeGen {
	f := &fakeGen{joint: joint}
	if fs.setup != nil {
		fs.setup(len(fs.gens), f)
	}
	fs.gens = append(fs.gens, f)
	return f
}

func (fs *fakes) option() Option {
	return WithGenerators(
		func() Hip { return fs.next("hip") },
		func() Knee { return fs.next("knee") },
	)
}

// spyHip records the raw angle returned by a real hip generator.
type spyHip struct {
	*trajectory.Hip
	last float64
}

func (s *spyHip) Advance() (bool, float64, error) {
	done, a, err := s.Hip.Advance()
	s.last = a
	return done, a, err
}
