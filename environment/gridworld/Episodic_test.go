package gridworld

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/gridmdp/environment"
	ts "github.com/samuelfneumann/gridmdp/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var _ environment.Environment = &Episodic{}

func startAt(t *testing.T, r, c int, ender environment.Ender) (*Episodic,
	ts.TimeStep) {
	t.Helper()
	density := mat.NewDense(3, 4, nil)
	density.Set(r, c, 1)

	gw := newDemo(t, WithResetDensity(density), WithSuccessProbability(1))
	e, step, err := NewEpisodic(gw, ender)
	require.NoError(t, err)
	return e, step
}

func TestEpisodicReachesGoal(t *testing.T) {
	e, step := startAt(t, 0, 0, nil)
	assert.True(t, step.First())
	assert.Equal(t, 0, step.Observation)
	assert.Equal(t, []int{int(Right), int(Down)}, e.LegalActions())

	var last bool
	var err error
	for i := 0; i < 3; i++ {
		step, last, err = e.Step(int(Right))
		require.NoError(t, err)
	}

	assert.True(t, last)
	assert.True(t, step.Last())
	assert.Equal(t, ts.TerminalStateReached, step.EndType())
	assert.Equal(t, 1.0, step.Reward)
	assert.Equal(t, 3, step.Number)
	assert.Equal(t, e.Grid().StateOf(0, 3), step.Observation)
	assert.Equal(t, step, e.CurrentTimeStep())

	_, _, err = e.Step(int(Right))
	assert.Error(t, err)

	step, err = e.Reset()
	require.NoError(t, err)
	assert.True(t, step.First())
}

func TestEpisodicStepLimit(t *testing.T) {
	e, _ := startAt(t, 2, 0, environment.NewStepLimit(4))

	actions := []Action{Right, Left, Right, Left}
	var step ts.TimeStep
	var last bool
	var err error
	for i, a := range actions {
		step, last, err = e.Step(int(a))
		require.NoError(t, err)
		assert.Equal(t, i == len(actions)-1, last)
	}
	assert.Equal(t, ts.Timeout, step.EndType())
	assert.Equal(t, 0.0, step.Reward)
}

func TestEpisodicInvalidAction(t *testing.T) {
	e, step := startAt(t, 0, 1, nil)

	_, _, err := e.Step(int(Down))
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, step, e.CurrentTimeStep())
}

func TestEpisodicDeadEndStart(t *testing.T) {
	// (0, 0) is walled off and has no legal actions
	g := NewGrid(MustParseLayout([][]string{{"", "x", "", "1"}}))
	deadEnd := g.StateOf(0, 0)

	gw, err := New(g, WithSeed(3))
	require.NoError(t, err)
	e, step, err := NewEpisodic(gw, nil)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		assert.NotEqual(t, deadEnd, step.Observation)
		assert.NotEmpty(t, e.LegalActions())
		step, err = e.Reset()
		require.NoError(t, err)
	}

	// The underlying GridWorld still samples from the full density
	assert.InDelta(t, 1.0/3, gw.ResetWeights()[deadEnd], 1e-12)

	density := mat.NewDense(1, 4, []float64{1, 0, 0, 0})
	gw, err = New(g, WithSeed(3), WithResetDensity(density))
	require.NoError(t, err)
	_, _, err = NewEpisodic(gw, nil)
	assert.True(t, errors.Is(err, ErrNoStartState))

	gw, err = New(NewGrid(MustParseLayout([][]string{{"x"}})))
	require.NoError(t, err)
	_, _, err = NewEpisodic(gw, nil)
	assert.True(t, errors.Is(err, ErrEmptyStateSpace))
}
