// Package environment outlines the interfaces and structs needed to implement
// concrete grid world environments
package environment

import (
	"github.com/samuelfneumann/gridmdp/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() int
}

// Ender determines when an episode should be cut off. If End returns
// true, it should have already set the StepType of the TimeStep to
// timestep.Last.
type Ender interface {
	End(t *timestep.TimeStep) bool
}

// Observer receives every transition taken in an environment after it
// has been computed. Observers are sinks: they cannot change the
// transition they are shown.
type Observer interface {
	Observe(state, action, nextState int, reward float64)
}

// ObserverFunc adapts an ordinary function to the Observer interface
type ObserverFunc func(state, action, nextState int, reward float64)

// Observe calls f(state, action, nextState, reward)
func (f ObserverFunc) Observe(state, action, nextState int, reward float64) {
	f(state, action, nextState, reward)
}

// Environment implements a simulated episodic environment over integer
// states and actions
type Environment interface {
	Reset() (timestep.TimeStep, error) // Resets between episodes
	Step(action int) (timestep.TimeStep, bool, error)
	CurrentTimeStep() timestep.TimeStep
	LegalActions() []int // Actions available in the current state
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
