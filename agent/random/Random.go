// Package random implements an agent which acts uniformly at random
package random

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridmdp/timestep"
)

// Agent selects each legal action with equal probability and never
// learns. It is useful as a baseline and for driving experiments.
type Agent struct {
	rng *rand.Rand

	episodes int
	steps    int
}

// New returns a new random Agent
func New(seed uint64) *Agent {
	return &Agent{rng: rand.New(rand.NewSource(seed))}
}

// SelectAction selects one of the legal actions uniformly at random
func (a *Agent) SelectAction(t timestep.TimeStep, legal []int) (int, error) {
	if len(legal) == 0 {
		return 0, fmt.Errorf("selectAction: no legal actions in state %d",
			t.Observation)
	}
	return legal[a.rng.Intn(len(legal))], nil
}

// ObserveFirst records the start of a new episode
func (a *Agent) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		return fmt.Errorf("observeFirst: timestep %d is not the first of "+
			"an episode", t.Number)
	}
	a.episodes++
	return nil
}

// Observe records a transition
func (a *Agent) Observe(_ int, _ timestep.TimeStep) error {
	a.steps++
	return nil
}

// Step does nothing, a random agent does not learn
func (a *Agent) Step() error {
	return nil
}

// EndEpisode does nothing
func (a *Agent) EndEpisode() {}

// Counts returns the number of episodes started and transitions observed
func (a *Agent) Counts() (episodes, steps int) {
	return a.episodes, a.steps
}
