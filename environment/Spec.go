package environment

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an action, an observation, a discount, or a reward
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	case Discount:
		return "Discount"
	default:
		return "Reward"
	}
}

// Cardinality determines whether values are discrete or continuous
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type,
// shape, and bounds of an action, observation, discount, or reward in
// an environment. Grid worlds only produce scalar specs.
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec constructs a new environment specification. It panics if the
// bounds do not have the length of shape.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() {
		panic(fmt.Sprintf("shape length %v must match lower bounds length %v",
			shape.Len(), lowerBound.Len()))
	}
	if shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("shape length %v must match upper bounds length %v",
			shape.Len(), upperBound.Len()))
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// NewScalarSpec returns a Spec for a single value bounded by [low, high]
func NewScalarSpec(t SpecType, low, high float64, c Cardinality) Spec {
	shape := matutils.VecOnes(1)
	lowerBound := mat.NewVecDense(1, []float64{low})
	upperBound := mat.NewVecDense(1, []float64{high})

	return NewSpec(shape, t, lowerBound, upperBound, c)
}

// Bounds returns the bounds of the first element described by the Spec
func (s Spec) Bounds() (low, high float64) {
	return s.LowerBound.AtVec(0), s.UpperBound.AtVec(0)
}

// Count returns the number of values a discrete scalar Spec admits, or 0
// for continuous specs
func (s Spec) Count() int {
	if s.Cardinality != Discrete {
		return 0
	}
	low, high := s.Bounds()
	return int(high-low) + 1
}

func (s Spec) String() string {
	low, high := s.Bounds()
	return fmt.Sprintf("%v | %v  |  Bounds: [%v, %v]", s.Type,
		s.Cardinality, low, high)
}
