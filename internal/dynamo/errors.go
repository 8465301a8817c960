package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for setup and simulation operations.
var (
	// ErrInvalidState indicates a particle position or velocity went NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside its valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrNoSources indicates a setup without any gravity source.
	ErrNoSources = errors.New("dynamo: at least one gravity source is required")

	// ErrUnknownName indicates an unknown integrator or policy name.
	ErrUnknownName = errors.New("dynamo: unknown name")

	// ErrContextCanceled indicates a headless run was interrupted.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")
)

// SimError records a numerical failure for one particle at one frame.
type SimError struct {
	Frame    int
	Particle int
	Wrapped  error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("frame %d particle %d: %v", e.Frame, e.Particle, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
