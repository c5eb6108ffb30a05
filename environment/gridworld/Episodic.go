package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/environment"
	ts "github.com/samuelfneumann/gridmdp/timestep"
)

// Episodic wraps a GridWorld as an episodic environment.Environment which
// tracks the state of a single agent. Episodes end when the agent is
// absorbed, or when the optional Ender cuts the episode off.
//
// Episodes never start in a dead end, a walkable state without legal
// actions. The reset density is conditioned on the remaining states.
type Episodic struct {
	*GridWorld
	ender   environment.Ender
	starter *environment.CategoricalStarter

	currentStep ts.TimeStep
}

// NewEpisodic returns a new episodic environment on gw together with the
// first timestep of the first episode. If ender is nil, episodes only end
// on absorption.
func NewEpisodic(gw *GridWorld, ender environment.Ender) (*Episodic,
	ts.TimeStep, error) {
	if gw.NumStates() == 0 {
		return nil, ts.TimeStep{}, fmt.Errorf("newEpisodic: %w",
			ErrEmptyStateSpace)
	}

	weights := gw.ResetWeights()
	for s := range weights {
		if len(gw.Actions(s)) == 0 {
			weights[s] = 0
		}
	}
	starter, err := environment.NewCategoricalStarter(weights, gw.source)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEpisodic: every start "+
			"state is a dead end: %w", ErrNoStartState)
	}

	e := &Episodic{GridWorld: gw, ender: ender, starter: starter}
	step, err := e.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEpisodic: %w", err)
	}
	return e, step, nil
}

// Reset starts a new episode in a state drawn from the reset density
func (e *Episodic) Reset() (ts.TimeStep, error) {
	state := e.starter.Start()

	step := ts.New(ts.First, 0, e.discount, state, 0)
	e.currentStep = step
	return step, nil
}

// Step takes action in the current state, returning the next timestep and
// whether it is the last in the episode. Stepping after the episode has
// ended is an error, call Reset first.
func (e *Episodic) Step(action int) (ts.TimeStep, bool, error) {
	if e.currentStep.Last() {
		return ts.TimeStep{}, true, fmt.Errorf("step: episode has ended")
	}

	state := e.currentStep.Observation
	t, err := e.GridWorld.StepTransition(state, Action(action))
	if err != nil {
		return ts.TimeStep{}, false, err
	}

	step := ts.New(ts.Mid, t.Reward, e.discount, t.NextState,
		e.currentStep.Number+1)
	if t.Absorb {
		step.StepType = ts.Last
		step.SetEnd(ts.TerminalStateReached)
	} else if e.ender != nil {
		e.ender.End(&step)
	}

	e.currentStep = step
	return step, step.Last(), nil
}

// CurrentTimeStep returns the most recent timestep of the environment
func (e *Episodic) CurrentTimeStep() ts.TimeStep {
	return e.currentStep
}

// LegalActions returns the actions available in the current state
func (e *Episodic) LegalActions() []int {
	actions := e.Actions(e.currentStep.Observation)
	legal := make([]int, len(actions))
	for i, a := range actions {
		legal[i] = int(a)
	}
	return legal
}

func (e *Episodic) String() string {
	r, c := e.grid.CoordOf(e.currentStep.Observation)
	return fmt.Sprintf("Episodic | At: (%d, %d)  |  %v", r, c, e.currentStep)
}
