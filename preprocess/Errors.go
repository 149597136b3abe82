package preprocess

import (
	"errors"
	"fmt"
)

// PreprocessError implements errors unique to preprocessing
// observations
type PreprocessError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *PreprocessError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *PreprocessError) Unwrap() error {
	return e.Err
}

var (
	// ErrShape reports that a layer stack does not match the shape
	// described by its feature table
	ErrShape = errors.New("shape mismatch")

	// ErrActionRange reports an available action id outside of the
	// action space
	ErrActionRange = errors.New("action id out of range")

	// ErrActionSpace reports an action space with no actions
	ErrActionSpace = errors.New("action space must be > 0")

	// ErrEmptyBatch reports an attempt to assemble a batch from zero
	// transitions
	ErrEmptyBatch = errors.New("empty batch")

	// ErrPolicy reports a selection policy that is inconsistent with
	// the feature table it is applied to
	ErrPolicy = errors.New("invalid policy")
)

// newError returns a new PreprocessError for operation op wrapping
// err with a formatted detail message
func newError(op string, err error, format string, args ...interface{}) error {
	return &PreprocessError{
		Op:  op,
		Err: fmt.Errorf("%w: "+format, append([]interface{}{err}, args...)...),
	}
}

// IsShapeMismatch returns whether or not an error reports that a
// layer stack had the wrong shape
func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShape)
}

// IsActionOutOfRange returns whether or not an error reports an
// available action outside of the action space
func IsActionOutOfRange(err error) bool {
	return errors.Is(err, ErrActionRange)
}

// IsEmptyBatch returns whether or not an error reports that a batch
// was requested from zero transitions
func IsEmptyBatch(err error) bool {
	return errors.Is(err, ErrEmptyBatch)
}
