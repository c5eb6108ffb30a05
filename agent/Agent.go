// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/gridmdp/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns from the timesteps it
// observes, and a Policy which chooses actions in each state.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how an agent is
// updated.
type Learner interface {
	// Step performs a single update to the learner
	Step() error

	// Observe records that an action lead to some timestep
	Observe(action int, nextObs timestep.TimeStep) error

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep) error

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy represents a policy that an agent can have.
//
// Grid states have differing action sets, so policies are given the
// legal actions of the state the timestep is in and must select one of
// them, or fail if there are none.
type Policy interface {
	SelectAction(t timestep.TimeStep, legal []int) (int, error)
}
