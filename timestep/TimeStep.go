// Package timestep implements timesteps of the agent-environment
// interaction and the raw observations they carry
package timestep

import (
	"fmt"

	"gorgonia.org/tensor"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// Observation is a single raw observation of the environment. Minimap
// and Screen are layer stacks of shape (channels, height, width) holding
// integer feature values. AvailableActions lists the ids of the actions
// that are legal at the current step.
type Observation struct {
	Minimap          *tensor.Dense
	Screen           *tensor.Dense
	AvailableActions []int
}

// FunctionCall is an action taken in the environment: a function id
// together with its arguments
type FunctionCall struct {
	Function  int
	Arguments [][]int
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	stepType    StepType
	Reward      float64
	Discount    float64
	Observation Observation
	Number      int
}

func New(t StepType, r, d float64, o Observation, n int) TimeStep {
	return TimeStep{t, r, d, o, n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

// StepType returns the type of the TimeStep
func (t *TimeStep) StepType() StepType {
	return t.stepType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Discount, t.Number)
}

// Transition is a single (observation, action, next observation)
// triple of a trajectory
type Transition struct {
	Observation Observation
	Action      FunctionCall
	Next        Observation
}

// NewTransition returns the Transition from step to next caused by
// taking action a
func NewTransition(step TimeStep, a FunctionCall, next TimeStep) Transition {
	return Transition{
		Observation: step.Observation,
		Action:      a,
		Next:        next.Observation,
	}
}
