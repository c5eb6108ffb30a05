package trackers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ts "github.com/samuelfneumann/gridmdp/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// episode returns the timesteps of an episode with the given rewards
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, 0, 0)}
	for i, r := range rewards {
		kind := ts.Mid
		if i == len(rewards)-1 {
			kind = ts.Last
		}
		steps = append(steps, ts.New(kind, r, 1, 0, i+1))
	}
	return steps
}

func TestReturn(t *testing.T) {
	r := NewReturn(filepath.Join(t.TempDir(), "return.bin"))
	for _, step := range episode(0, 0, 1) {
		r.Track(step)
	}
	for _, step := range episode(-1, 0.5) {
		r.Track(step)
	}
	// Unfinished episodes are not recorded
	r.Track(ts.New(ts.First, 0, 1, 0, 0))
	r.Track(ts.New(ts.Mid, 3, 1, 0, 1))

	assert.Equal(t, []float64{1, -0.5}, r.Data())

	assert.Panics(t, func() { r.Track(ts.New(ts.Mid, 0, 1, 0, 5)) })
}

func TestEpisodeLength(t *testing.T) {
	e := NewEpisodeLength(filepath.Join(t.TempDir(), "length.bin"))
	for _, step := range episode(0, 0, 1) {
		e.Track(step)
	}
	for _, step := range episode(1) {
		e.Track(step)
	}
	assert.Equal(t, []float64{3, 1}, e.Data())
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	trackers := []Tracker{
		NewReturn(filepath.Join(dir, "return.bin")),
		NewEpisodeLength(filepath.Join(dir, "length.bin")),
	}

	for _, step := range episode(0, 2) {
		for _, tracker := range trackers {
			tracker.Track(step)
		}
	}
	for _, tracker := range trackers {
		require.NoError(t, tracker.Save())
	}

	returns, err := LoadData(filepath.Join(dir, "return.bin"))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, returns)

	lengths, err := LoadData(filepath.Join(dir, "length.bin"))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, lengths)

	_, err = LoadData(filepath.Join(dir, "missing.bin"))
	assert.Error(t, err)

	bad := NewReturn(filepath.Join(dir, "missing", "return.bin"))
	assert.Error(t, bad.Save())
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "returns.html")

	r := NewReturn("")
	for _, step := range episode(0, 1) {
		r.Track(step)
	}

	err := Plot(path, "Episodic Return", SeriesOf("return", r),
		Series{Name: "baseline", Data: []float64{0.5, 0.5, 0.5}})
	require.NoError(t, err)

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(html), "Episodic Return"))
	assert.True(t, strings.Contains(string(html), "baseline"))

	assert.Error(t, Plot(path, "empty"))
}
