package trajectory

import "errors"

// BufferError implements errors unique to a trajectory buffer
type BufferError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *BufferError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *BufferError) Unwrap() error {
	return e.Err
}

var errFullBuffer = errors.New("buffer at maximum capacity")

// IsFull returns whether or not an error reports that a trajectory
// buffer is full.
func IsFull(err error) bool {
	if bufferErr, ok := err.(*BufferError); ok {
		err = bufferErr.Err
	}
	return err == errFullBuffer
}
