package biped

import (
	"time"

	"github.com/pkg/errors"
)

// State is shared by all components, and may be mutated by any of them during
// a tick.
type State struct {

	// Components can set this to true to indicate that the biped should stop
	// walking and shut down.
	Shutdown bool

	// Set once walking has stopped, and it's safe to exit.
	Halted bool
}

type Biped struct {
	Components []Component
	State      State
}

type Component interface {
	Boot() error
	Tick(now time.Time, state *State) error
}

func New() *Biped {
	return &Biped{
		Components: []Component{},
	}
}

// Add registers a component to receive ticks every frame.
func (b *Biped) Add(c Component) {
	b.Components = append(b.Components, c)
}

// Boot calls Boot on each component, stopping at the first error.
func (b *Biped) Boot() error {
	for i, c := range b.Components {
		err := c.Boot()
		if err != nil {
			return errors.Wrapf(err, "booting component #%d", i)
		}
	}

	return nil
}

// Tick calls Tick on each component, in the order they were added. An error
// from any component aborts the tick.
func (b *Biped) Tick(now time.Time) error {
	for i, c := range b.Components {
		err := c.Tick(now, &b.State)
		if err != nil {
			return errors.Wrapf(err, "ticking component #%d", i)
		}
	}

	return nil
}
