package random

import (
	"testing"

	"github.com/samuelfneumann/gridmdp/agent"
	"github.com/samuelfneumann/gridmdp/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ agent.Agent = &Agent{}

func TestSelectAction(t *testing.T) {
	a := New(7)
	step := timestep.New(timestep.First, 0, 1, 0, 0)
	legal := []int{1, 3}

	counts := make(map[int]int)
	for i := 0; i < 1000; i++ {
		action, err := a.SelectAction(step, legal)
		require.NoError(t, err)
		counts[action]++
	}

	assert.Len(t, counts, 2)
	assert.InDelta(t, 500, counts[1], 100)

	_, err := a.SelectAction(step, nil)
	assert.Error(t, err)
}

func TestObserveFirst(t *testing.T) {
	a := New(7)
	require.NoError(t, a.ObserveFirst(timestep.New(timestep.First, 0, 1, 0, 0)))
	assert.Error(t, a.ObserveFirst(timestep.New(timestep.Mid, 0, 1, 0, 1)))

	require.NoError(t, a.Observe(0, timestep.New(timestep.Mid, 0, 1, 0, 1)))
	episodes, steps := a.Counts()
	assert.Equal(t, 1, episodes)
	assert.Equal(t, 1, steps)
}
