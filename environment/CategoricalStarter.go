package environment

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states sampled from a categorical
// distribution over (0, 1, 2, ... N-1).
type CategoricalStarter struct {
	weights []float64
	rand    distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter sampling state i
// with probability proportional to weights[i]. Weights must be finite
// and non-negative with a positive sum.
func NewCategoricalStarter(weights []float64,
	source rand.Source) (*CategoricalStarter, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no states to sample")
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("newCategoricalStarter: weight %d must "+
				"be finite and non-negative, got %v", i, w)
		}
	}
	if floats.Sum(weights) <= 0 {
		return nil, fmt.Errorf("newCategoricalStarter: weights sum to zero")
	}

	w := make([]float64, len(weights))
	copy(w, weights)
	return &CategoricalStarter{w, distuv.NewCategorical(w, source)}, nil
}

// NewUniformCategoricalStarter returns a new CategoricalStarter which samples
// each of n states with equal probability
func NewUniformCategoricalStarter(n int,
	source rand.Source) (*CategoricalStarter, error) {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}
	return NewCategoricalStarter(weights, source)
}

// Start returns a starting state
func (c *CategoricalStarter) Start() int {
	return int(c.rand.Rand())
}

// Weights returns the normalized probability of starting in each state
func (c *CategoricalStarter) Weights() []float64 {
	w := make([]float64, len(c.weights))
	copy(w, c.weights)
	floats.Scale(1/floats.Sum(w), w)
	return w
}
