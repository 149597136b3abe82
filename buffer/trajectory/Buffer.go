// Package trajectory implements a buffer of transitions collected
// while acting in an environment. The buffer is filled during a
// rollout and consumed all at once when the policy is updated.
package trajectory

import (
	"fmt"

	"github.com/samuelfneumann/gosc2/timestep"
)

// Buffer stores the transitions of a trajectory in insertion order.
// A Buffer is not safe for concurrent mutation.
type Buffer struct {
	transitions []timestep.Transition
	capacity    int
}

// New creates and returns a new Buffer which holds at most capacity
// transitions
func New(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("new: capacity must be >= 1")
	}
	return &Buffer{
		transitions: make([]timestep.Transition, 0, capacity),
		capacity:    capacity,
	}, nil
}

// Add adds a transition to the end of the buffer
func (b *Buffer) Add(t timestep.Transition) error {
	if len(b.transitions) >= b.capacity {
		return &BufferError{Op: "add", Err: errFullBuffer}
	}
	b.transitions = append(b.transitions, t)
	return nil
}

// Len returns the number of transitions in the buffer
func (b *Buffer) Len() int {
	return len(b.transitions)
}

// Capacity returns the maximum number of transitions the buffer holds
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Full returns whether the buffer is at maximum capacity
func (b *Buffer) Full() bool {
	return len(b.transitions) >= b.capacity
}

// Transitions returns the transitions in the buffer, oldest first
func (b *Buffer) Transitions() []timestep.Transition {
	t := make([]timestep.Transition, len(b.transitions))
	copy(t, b.transitions)
	return t
}

// Reversed returns the transitions in the buffer, most recent first
func (b *Buffer) Reversed() []timestep.Transition {
	n := len(b.transitions)
	t := make([]timestep.Transition, n)
	for i, tr := range b.transitions {
		t[n-1-i] = tr
	}
	return t
}

// Clear removes all transitions from the buffer
func (b *Buffer) Clear() {
	b.transitions = b.transitions[:0]
}

// String returns a string representation of the buffer
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer | Transitions: %d  |  Capacity: %d",
		b.Len(), b.capacity)
}
