package experiment

import (
	"testing"

	"github.com/samuelfneumann/gridmdp/agent/random"
	"github.com/samuelfneumann/gridmdp/environment/envconfig"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
	"github.com/samuelfneumann/gridmdp/experiment/trackers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOnline(t *testing.T, steps uint, cutoff uint,
	tr ...trackers.Tracker) (*Online, *random.Agent) {
	t.Helper()
	c := envconfig.Default()
	c.EpisodeCutoff = cutoff

	e, _, err := c.Create(11)
	require.NoError(t, err)

	a := random.New(11)
	return NewOnline(e, a, steps, tr...), a
}

func TestOnlineRun(t *testing.T) {
	returns := trackers.NewReturn("")
	lengths := trackers.NewEpisodeLength("")
	o, a := newOnline(t, 500, 20, returns, lengths)

	require.NoError(t, o.Run())
	assert.Equal(t, uint(500), o.Steps())

	episodes, steps := a.Counts()
	assert.Equal(t, 500, steps)
	assert.NotEmpty(t, lengths.Data())
	assert.Len(t, returns.Data(), len(lengths.Data()))
	assert.GreaterOrEqual(t, episodes, len(lengths.Data()))

	total := 0.0
	for i, l := range lengths.Data() {
		assert.LessOrEqual(t, l, 20.0)
		assert.GreaterOrEqual(t, l, 1.0)
		assert.Contains(t, []float64{-1, 0, 1}, returns.Data()[i])
		total += l
	}
	assert.LessOrEqual(t, total, 500.0)

	// The step budget is spent, further episodes do nothing
	ended, err := o.RunEpisode()
	require.NoError(t, err)
	assert.True(t, ended)
	assert.Equal(t, uint(500), o.Steps())
}

func TestOnlineRegister(t *testing.T) {
	o, _ := newOnline(t, 50, 5)
	lengths := trackers.NewEpisodeLength("")
	o.Register(lengths)

	require.NoError(t, o.Run())
	assert.NotEmpty(t, lengths.Data())
	for _, l := range lengths.Data() {
		assert.LessOrEqual(t, l, 5.0)
	}
}

func TestCreateExp(t *testing.T) {
	c := Config{Type: OnlineExp, MaxSteps: 10, EnvConf: envconfig.Default()}
	exp, err := c.CreateExp(1, random.New(1))
	require.NoError(t, err)
	require.NoError(t, exp.Run())

	c.Type = "Offline"
	_, err = c.CreateExp(1, random.New(1))
	assert.Error(t, err)
}

func TestOnlineSkipsDeadEnds(t *testing.T) {
	// (0, 0) is walled off from the rest of the row and has no actions
	c := envconfig.Config{
		Layout:             envconfig.Literal,
		Cells:              [][]string{{"", "x", "", "1"}},
		SuccessProbability: gridworld.DefaultSuccessProbability,
		Discount:           gridworld.DefaultDiscount,
	}
	e, _, err := c.Create(3)
	require.NoError(t, err)
	deadEnd := e.Grid().StateOf(0, 0)
	require.Empty(t, e.Actions(deadEnd))

	lengths := trackers.NewEpisodeLength("")
	o := NewOnline(e, random.New(3), 200, lengths)
	require.NoError(t, o.Run())
	assert.Equal(t, uint(200), o.Steps())
	assert.NotEmpty(t, lengths.Data())

	for i := 0; i < 100; i++ {
		step, err := e.Reset()
		require.NoError(t, err)
		assert.NotEqual(t, deadEnd, step.Observation)
	}
}
