package gridworld

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridmdp/environment"
	"github.com/samuelfneumann/gridmdp/utils/matutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultDiscount is the discount factor of a GridWorld unless another is
// configured
const DefaultDiscount = 0.95

// GridWorld is a grid world MDP that can be sampled one transition at a
// time. A GridWorld does not track the position of an agent: every call to
// Step is an independent sample from the state given. See Episodic for an
// environment which tracks the current state.
//
// A GridWorld is not safe for concurrent use, all randomness is drawn from
// a single source owned by the GridWorld.
type GridWorld struct {
	grid     *Grid
	dynamics Dynamics
	discount float64

	source  rand.Source
	starter *environment.CategoricalStarter
	coin    distuv.Uniform

	// resetWeights are the per-state probabilities of starting in each
	// state
	resetWeights []float64

	staticFilter func(int) bool
	observers    []environment.Observer

	// mdp caches the matrix representation once built
	mdp *MDP
}

type config struct {
	discount     float64
	pSucc        float64
	density      *mat.Dense
	densityRows  [][]float64
	staticFilter func(int) bool
	observers    []environment.Observer
	source       rand.Source
}

// Option configures a GridWorld
type Option func(*config)

// WithDiscount sets the discount factor, which must be in (0, 1]
func WithDiscount(discount float64) Option {
	return func(c *config) { c.discount = discount }
}

// WithSuccessProbability sets the probability that an action moves the
// agent in the intended direction
func WithSuccessProbability(p float64) Option {
	return func(c *config) { c.pSucc = p }
}

// WithResetDensity sets the distribution of starting states. The density
// must have the dimensions of the grid, entry (r, c) being the weight of
// starting at (r, c). Weights on walls are ignored.
func WithResetDensity(density *mat.Dense) Option {
	return func(c *config) { c.density, c.densityRows = density, nil }
}

// WithResetDensityRows is like WithResetDensity with the density given as
// rows of weights. Short rows are padded with zeroes.
func WithResetDensityRows(density [][]float64) Option {
	return func(c *config) { c.density, c.densityRows = nil, density }
}

// WithStaticFilter sets a predicate over states which downstream users may
// use to filter trajectories. The GridWorld does not use it.
func WithStaticFilter(f func(state int) bool) Option {
	return func(c *config) { c.staticFilter = f }
}

// WithObserver attaches an observer which is shown every transition
// sampled with Step
func WithObserver(o environment.Observer) Option {
	return func(c *config) { c.observers = append(c.observers, o) }
}

// WithSeed seeds the random source of the GridWorld
func WithSeed(seed uint64) Option {
	return func(c *config) { c.source = rand.NewSource(seed) }
}

// WithSource sets the random source of the GridWorld
func WithSource(src rand.Source) Option {
	return func(c *config) { c.source = src }
}

// New creates a new GridWorld on grid g
func New(g *Grid, opts ...Option) (*GridWorld, error) {
	cfg := config{
		discount:     DefaultDiscount,
		pSucc:        DefaultSuccessProbability,
		staticFilter: func(int) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.discount <= 0 || cfg.discount > 1 {
		return nil, fmt.Errorf("new: discount must be in (0, 1], got %v",
			cfg.discount)
	}
	if cfg.source == nil {
		cfg.source = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	dynamics, err := NewDynamics(g, cfg.pSucc)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	weights, err := resetWeights(g, cfg)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	gw := &GridWorld{
		grid:         g,
		dynamics:     dynamics,
		discount:     cfg.discount,
		source:       cfg.source,
		coin:         distuv.Uniform{Min: 0, Max: 1, Src: cfg.source},
		resetWeights: weights,
		staticFilter: cfg.staticFilter,
		observers:    cfg.observers,
	}

	// A grid without states is valid, but cannot be sampled from
	if g.NumStates() > 0 {
		gw.starter, err = environment.NewCategoricalStarter(weights,
			cfg.source)
		if err != nil {
			return nil, fmt.Errorf("new: %v: %w", err, ErrInvalidDensity)
		}
	}

	return gw, nil
}

// resetWeights converts the configured per-cell reset density into
// per-state weights. Without a density every state is equally likely.
func resetWeights(g *Grid, cfg config) ([]float64, error) {
	n := g.NumStates()
	density := cfg.density
	if cfg.densityRows != nil {
		var err error
		density, err = matutils.DenseFromRows(cfg.densityRows, g.Cols())
		if err != nil {
			return nil, fmt.Errorf("resetWeights: %v: %w", err,
				ErrInvalidDensity)
		}
	}

	weights := make([]float64, n)
	if density == nil {
		for s := range weights {
			weights[s] = 1.0 / float64(n)
		}
		return weights, nil
	}

	if r, c := density.Dims(); r != g.Rows() || c != g.Cols() {
		return nil, fmt.Errorf("resetWeights: density has shape (%d, %d), "+
			"grid has shape (%d, %d): %w", r, c, g.Rows(), g.Cols(),
			ErrInvalidDensity)
	}
	for s := range weights {
		weights[s] = density.At(g.CoordOf(s))
	}
	if n > 0 && floats.Sum(weights) <= 0 {
		return nil, fmt.Errorf("resetWeights: density has no mass on any "+
			"state: %w", ErrInvalidDensity)
	}
	return weights, nil
}

// Grid returns the geometry of the GridWorld
func (gw *GridWorld) Grid() *Grid {
	return gw.grid
}

// Dynamics returns the transition rule of the GridWorld
func (gw *GridWorld) Dynamics() Dynamics {
	return gw.dynamics
}

// NumStates returns the number of states of the GridWorld
func (gw *GridWorld) NumStates() int {
	return gw.grid.NumStates()
}

// Actions returns the legal actions of state s
func (gw *GridWorld) Actions(s int) []Action {
	return gw.grid.Actions(s)
}

// Discount returns the discount factor of the GridWorld
func (gw *GridWorld) Discount() float64 {
	return gw.discount
}

// ResetWeights returns the normalized probability of each state being
// drawn by Reset
func (gw *GridWorld) ResetWeights() []float64 {
	if gw.starter == nil {
		return nil
	}
	return gw.starter.Weights()
}

// StaticFilter returns the configured predicate over states
func (gw *GridWorld) StaticFilter() func(int) bool {
	return gw.staticFilter
}

// Observe attaches an observer which is shown every subsequent transition
// sampled with Step
func (gw *GridWorld) Observe(o environment.Observer) {
	gw.observers = append(gw.observers, o)
}

// Reset returns an initial state drawn from the reset density
func (gw *GridWorld) Reset() (int, error) {
	if gw.starter == nil {
		return NoState, fmt.Errorf("reset: %w", ErrEmptyStateSpace)
	}
	return gw.starter.Start(), nil
}

// Step samples the outcome of taking action a in state s. It returns the
// next state, the reward, and whether the next state is absorbing. The
// action must be one of the legal actions of s.
func (gw *GridWorld) Step(s int, a Action) (int, float64, bool, error) {
	t, err := gw.StepTransition(s, a)
	if err != nil {
		return NoState, 0, false, err
	}
	return t.NextState, t.Reward, t.Absorb, nil
}

// StepTransition is like Step but returns the sampled Transition
func (gw *GridWorld) StepTransition(s int, a Action) (Transition, error) {
	if gw.grid.NumStates() == 0 {
		return Transition{}, fmt.Errorf("step: %w", ErrEmptyStateSpace)
	}
	if !gw.grid.ValidState(s) {
		return Transition{}, fmt.Errorf("step: state %d: %w", s,
			ErrInvalidState)
	}
	if !gw.grid.HasAction(s, a) {
		return Transition{}, fmt.Errorf("step: action %v in state %d "+
			"(legal: %v): %w", a, s, gw.grid.Actions(s), ErrInvalidAction)
	}

	t := gw.dynamics.Sample(s, a, gw.coin.Rand())

	for _, o := range gw.observers {
		o.Observe(t.State, int(t.Action), t.NextState, t.Reward)
	}
	return t, nil
}

// ActionSpec returns the action specification of the GridWorld
func (gw *GridWorld) ActionSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Action, float64(Right),
		float64(Up), environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// GridWorld. Observations are state ids.
func (gw *GridWorld) ObservationSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Observation, 0,
		float64(gw.grid.NumStates()-1), environment.Discrete)
}

// DiscountSpec returns the discount specification of the GridWorld
func (gw *GridWorld) DiscountSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Discount, gw.discount,
		gw.discount, environment.Continuous)
}

func (gw *GridWorld) String() string {
	str := "GridWorld | States: %d  |  Bounds: (%d, %d)  |  Discount: %.2f\n%v"
	return fmt.Sprintf(str, gw.grid.NumStates(), gw.grid.Rows(),
		gw.grid.Cols(), gw.discount, gw.grid)
}
