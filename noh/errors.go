package noh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a solver is built from, or evaluated with,
	// a physical parameter outside its valid range.
	ErrInvalidParameter = errors.New("noh: invalid parameter")

	// ErrSingularInput is returned when a sample coordinate is NaN or infinite.
	ErrSingularInput = errors.New("noh: singular input")

	// ErrShapeMismatch is returned when parallel input arrays differ in length.
	ErrShapeMismatch = errors.New("noh: input arrays differ in length")
)

// ParameterError names the offending parameter and wraps ErrInvalidParameter.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %v, %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
