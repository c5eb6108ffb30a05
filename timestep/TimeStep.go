// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
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

// EndType describes how an episode ended
type EndType int

const (
	// NotEnded means the episode is still running
	NotEnded EndType = iota

	// TerminalStateReached means the agent entered an absorbing state
	TerminalStateReached

	// Timeout means the episode was cut off by a step limit
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "NotEnded"
	}
}

// TimeStep packages together a single timestep in a grid world. The
// Observation is the integer state the agent occupies after the step.
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation int
	Number      int
	endType     EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, o int, n int) TimeStep {
	return TimeStep{t, r, d, o, n, NotEnded}
}

// SetEnd records how the episode ended
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns how the episode ended. Steps that are not the last in an
// episode return NotEnded.
func (t *TimeStep) EndType() EndType {
	return t.endType
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  State: %v  |  Reward:  %.2f  |  " +
		"Discount: %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Observation, t.Reward, t.Discount,
		t.Number)
}
