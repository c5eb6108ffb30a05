package gridworld

import (
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newDemo(t testing.TB, opts ...Option) *GridWorld {
	t.Helper()
	opts = append([]Option{WithSeed(1923812)}, opts...)
	gw, err := Demo(opts...)
	require.NoError(t, err)
	return gw
}

func TestTransition(t *testing.T) {
	g := NewGrid(DemoLayout())
	d, err := NewDynamics(g, DefaultSuccessProbability)
	require.NoError(t, err)

	tests := []struct {
		name       string
		r, c       int
		a          Action
		slipped    bool
		wantR      int
		wantC      int
		wantReward float64
		wantAbsorb bool
	}{
		{"Success", 0, 0, Right, false, 0, 1, 0, false},
		{"SlipIntoBoundary", 0, 0, Right, true, 0, 0, 0, false},
		{"SlipIntoWall", 1, 2, Right, true, 1, 2, 0, false},
		{"SlipAwayFromWall", 2, 1, Left, true, 2, 2, 0, false},
		{"IntoGoal", 0, 2, Right, false, 0, 3, 1, true},
		{"IntoTrap", 1, 2, Right, false, 1, 3, -1, true},
		{"SlipUp", 1, 2, Down, true, 0, 2, 0, false},
		{"UpIntoTrap", 2, 3, Up, false, 1, 3, -1, true},
		{"SlipDownIntoBoundary", 2, 3, Up, true, 2, 3, 0, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := g.StateOf(test.r, test.c)
			tr := d.Transition(s, test.a, test.slipped)

			assert.Equal(t, g.StateOf(test.wantR, test.wantC), tr.NextState)
			assert.Equal(t, test.wantReward, tr.Reward)
			assert.Equal(t, test.wantAbsorb, tr.Absorb)
		})
	}
}

func TestSampleThreshold(t *testing.T) {
	g := NewGrid(DemoLayout())
	d, err := NewDynamics(g, 0.9)
	require.NoError(t, err)

	s := g.StateOf(0, 1)
	assert.Equal(t, g.StateOf(0, 2), d.Sample(s, Right, 0.9).NextState)
	assert.Equal(t, g.StateOf(0, 0), d.Sample(s, Right, 0.95).NextState)

	_, err = NewDynamics(g, 1.5)
	assert.Error(t, err)
}

func TestAbsorbingTerminal(t *testing.T) {
	gw := newDemo(t)

	for _, s := range gw.Grid().TerminalStates() {
		for i := 0; i < 100; i++ {
			next, reward, absorb, err := gw.Step(s, Right)
			require.NoError(t, err)
			assert.Equal(t, s, next)
			assert.Equal(t, 0.0, reward)
			assert.True(t, absorb)
		}
	}
}

func TestInvalidAction(t *testing.T) {
	gw := newDemo(t)

	// (0, 1) cannot move down into the wall
	_, _, _, err := gw.Step(gw.Grid().StateOf(0, 1), Down)
	assert.True(t, errors.Is(err, ErrInvalidAction))

	// Terminal states only have the single canonical action
	_, _, _, err = gw.Step(gw.Grid().StateOf(0, 3), Up)
	assert.True(t, errors.Is(err, ErrInvalidAction))

	_, _, _, err = gw.Step(gw.Grid().StateOf(0, 1), Action(7))
	assert.True(t, errors.Is(err, ErrInvalidAction))

	_, _, _, err = gw.Step(42, Right)
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestEmptyStateSpace(t *testing.T) {
	gw, err := New(NewGrid(MustParseLayout([][]string{{"x"}})))
	require.NoError(t, err)

	_, err = gw.Reset()
	assert.True(t, errors.Is(err, ErrEmptyStateSpace))

	_, _, _, err = gw.Step(0, Right)
	assert.True(t, errors.Is(err, ErrEmptyStateSpace))

	_, err = gw.MatrixRepresentation()
	assert.True(t, errors.Is(err, ErrEmptyStateSpace))
}

func TestResetDensity(t *testing.T) {
	t.Run("Concentrated", func(t *testing.T) {
		density := mat.NewDense(3, 4, nil)
		density.Set(2, 1, 1)
		gw := newDemo(t, WithResetDensity(density))

		want := gw.Grid().StateOf(2, 1)
		for i := 0; i < 1000; i++ {
			s, err := gw.Reset()
			require.NoError(t, err)
			require.Equal(t, want, s)
		}
	})

	t.Run("Rows", func(t *testing.T) {
		gw := newDemo(t, WithResetDensityRows([][]float64{
			{0, 0.5},
			{0, 7}, // the wall at (1, 1) is dropped
			{0, 0, 0, 0.5},
		}))

		weights := gw.ResetWeights()
		assert.InDelta(t, 0.5, weights[gw.Grid().StateOf(0, 1)], 1e-12)
		assert.InDelta(t, 0.5, weights[gw.Grid().StateOf(2, 3)], 1e-12)

		counts := make(map[int]int)
		for i := 0; i < 1000; i++ {
			s, err := gw.Reset()
			require.NoError(t, err)
			counts[s]++
		}
		assert.Len(t, counts, 2)
	})

	t.Run("Uniform", func(t *testing.T) {
		gw := newDemo(t)
		for _, w := range gw.ResetWeights() {
			assert.InDelta(t, 1.0/11, w, 1e-12)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Demo(WithResetDensity(mat.NewDense(2, 2, nil)))
		assert.True(t, errors.Is(err, ErrInvalidDensity))

		_, err = Demo(WithResetDensity(mat.NewDense(3, 4, nil)))
		assert.True(t, errors.Is(err, ErrInvalidDensity))

		_, err = Demo(WithResetDensityRows([][]float64{{0, 0, 0, 0, 1}}))
		assert.True(t, errors.Is(err, ErrInvalidDensity))

		_, err = Demo(WithResetDensityRows([][]float64{
			{1, math.NaN(), 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}))
		assert.True(t, errors.Is(err, ErrInvalidDensity))
	})
}

func TestObserver(t *testing.T) {
	var seen []Transition
	observer := environment.ObserverFunc(func(s, a, n int, r float64) {
		seen = append(seen, Transition{s, Action(a), n, r, false})
	})
	gw := newDemo(t, WithObserver(observer))

	s := gw.Grid().StateOf(0, 2)
	next, reward, _, err := gw.Step(s, Right)
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, Transition{s, Right, next, reward, false}, seen[0])

	// Failing steps are not observed
	_, _, _, err = gw.Step(s, Left+5)
	require.Error(t, err)
	assert.Len(t, seen, 1)
}

func TestSeededReproducibility(t *testing.T) {
	a, b := newDemo(t), newDemo(t)
	s := a.Grid().StateOf(1, 2)

	for i := 0; i < 100; i++ {
		ra, err := a.Reset()
		require.NoError(t, err)
		rb, err := b.Reset()
		require.NoError(t, err)
		require.Equal(t, ra, rb)

		na, _, _, err := a.Step(s, Up)
		require.NoError(t, err)
		nb, _, _, err := b.Step(s, Up)
		require.NoError(t, err)
		require.Equal(t, na, nb)
	}
}

func TestStaticFilter(t *testing.T) {
	gw := newDemo(t)
	assert.True(t, gw.StaticFilter()(0))

	filter := DistanceFilter(gw.Grid(), 0, 3, 2)
	gw = newDemo(t, WithStaticFilter(filter))
	assert.False(t, gw.StaticFilter()(gw.Grid().StateOf(0, 2)))
	assert.True(t, gw.StaticFilter()(gw.Grid().StateOf(0, 1)))
	assert.True(t, gw.StaticFilter()(gw.Grid().StateOf(2, 0)))
}

func TestDiscount(t *testing.T) {
	gw := newDemo(t)
	assert.Equal(t, DefaultDiscount, gw.Discount())

	_, err := Demo(WithDiscount(0))
	assert.Error(t, err)
	_, err = Demo(WithDiscount(1.1))
	assert.Error(t, err)

	gw = newDemo(t, WithDiscount(1))
	assert.Equal(t, 1.0, gw.DiscountSpec().LowerBound.AtVec(0))
	assert.Equal(t, 10.0, gw.ObservationSpec().UpperBound.AtVec(0))
}

func BenchmarkStep(b *testing.B) {
	gw := newDemo(b)
	s := gw.Grid().StateOf(1, 2)

	for i := 0; i < b.N; i++ {
		gw.Step(s, Up)
	}
}
