package array

import "errors"

// Sentinel errors shared by every implementation. Callers match them with
// errors.Is; implementations add context via fmt.Errorf("...: %w", Err...).
var (
	ErrInvalidDimensionality = errors.New("invalid dimensionality")
	ErrInvalidAxis           = errors.New("axis out of range")
	ErrIndexOutOfRange       = errors.New("index out of range")
	ErrIncompatibleShape     = errors.New("incompatible shapes")
	ErrInvalidShape          = errors.New("invalid shape")
	ErrUnknownImplementation = errors.New("unknown array implementation")
)
