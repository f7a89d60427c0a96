package gait

import (
	"fmt"
	"strings"
)

// ConfigurationError is returned by New when the configuration cannot drive
// the generators. No coordinator is returned alongside it.
type ConfigurationError struct {
	Problems []error
}

func (e *ConfigurationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}

	return fmt.Sprintf("gait: invalid configuration: %s", strings.Join(msgs, "; "))
}

// CollaboratorFault wraps an error returned by one of the joint generators
// during a tick.
type CollaboratorFault struct {
	Joint Joint
	Err   error
}

func (e *CollaboratorFault) Error() string {
	return fmt.Sprintf("gait: %s generator: %s", e.Joint, e.Err)
}

// Cause returns the generator's own error, for github.com/pkg/errors.
func (e *CollaboratorFault) Cause() error {
	return e.Err
}

func (e *CollaboratorFault) Unwrap() error {
	return e.Err
}
