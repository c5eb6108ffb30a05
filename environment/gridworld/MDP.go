package gridworld

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gridmdp/utils/intutils"
	"github.com/samuelfneumann/gridmdp/utils/matutils"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// Padding is stored in the transition tensor and reward matrix of an MDP
// at action indices beyond the number of legal actions of a state
var Padding = math.Inf(1)

// IsPadding returns whether v marks an unused action slot of an MDP
func IsPadding(v float64) bool {
	return math.IsInf(v, 1)
}

// MDP is the tabular form of a grid world.
//
// Actions are indexed per state: action index i of state s is the i-th
// legal action of s, A[s][i]. P has shape S x maxA x S, where P[s, i, n]
// is the probability of moving to n when taking action index i in s. R
// has shape S x maxA, R[s, i] being the expected reward of taking action
// index i in s. Entries for i >= len(A[s]) are Padding.
//
// D0 is the uniform distribution over states, regardless of the reset
// density of the GridWorld the MDP was built from.
type MDP struct {
	S     int
	A     [][]Action
	P     *tensor.Dense
	R     *mat.Dense
	Gamma float64
	D0    *mat.VecDense

	maxActions int
	p          []float64
}

// MatrixRepresentation returns the tabular form of the GridWorld. The MDP
// is computed on the first call and the same MDP is returned on every
// subsequent call. The returned MDP must not be modified.
func (gw *GridWorld) MatrixRepresentation() (*MDP, error) {
	if gw.mdp != nil {
		return gw.mdp, nil
	}

	mdp, err := newMDP(gw.grid, gw.dynamics.SuccessProbability(),
		gw.discount)
	if err != nil {
		return nil, fmt.Errorf("matrixRepresentation: %w", err)
	}
	gw.mdp = mdp
	return mdp, nil
}

func newMDP(g *Grid, pSucc, gamma float64) (*MDP, error) {
	nStates := g.NumStates()
	if nStates == 0 {
		return nil, ErrEmptyStateSpace
	}

	// A state enclosed on all sides has no actions, keep a padded slot so
	// that the tensor is never empty
	nActions := intutils.Max(g.MaxActions(), 1)

	p := make([]float64, nStates*nActions*nStates)
	r := make([]float64, nStates*nActions)
	for i := range p {
		p[i] = Padding
	}
	for i := range r {
		r[i] = Padding
	}

	actions := make([][]Action, nStates)
	for s := 0; s < nStates; s++ {
		actions[s] = append([]Action(nil), g.Actions(s)...)

		for i, a := range actions[s] {
			row := p[(s*nActions+i)*nStates : (s*nActions+i+1)*nStates]
			for n := range row {
				row[n] = 0
			}

			// Terminal rewards are paid on entry, leaving is free
			if g.IsTerminal(s) {
				row[s] = 1
				r[s*nActions+i] = 0
				continue
			}

			succ, fail := g.Outcomes(s, a)
			row[succ] += pSucc
			row[fail] += 1 - pSucc

			r[s*nActions+i] = pSucc*g.Cell(succ).Reward() +
				(1-pSucc)*g.Cell(fail).Reward()
		}
	}

	return &MDP{
		S: nStates,
		A: actions,
		P: tensor.New(
			tensor.WithShape(nStates, nActions, nStates),
			tensor.WithBacking(p),
		),
		R:          mat.NewDense(nStates, nActions, r),
		Gamma:      gamma,
		D0:         matutils.VecFill(nStates, 1.0/float64(nStates)),
		maxActions: nActions,
		p:          p,
	}, nil
}

// MaxActions returns the size of the action dimension of P and R
func (m *MDP) MaxActions() int {
	return m.maxActions
}

// Prob returns P[s, i, n]
func (m *MDP) Prob(s, i, n int) float64 {
	return m.p[(s*m.maxActions+i)*m.S+n]
}

// Row returns the distribution P[s, i, :] over next states. The returned
// slice shares memory with P and must not be modified.
func (m *MDP) Row(s, i int) []float64 {
	start := (s*m.maxActions + i) * m.S
	return m.p[start : start+m.S : start+m.S]
}

// Reward returns R[s, i]
func (m *MDP) Reward(s, i int) float64 {
	return m.R.At(s, i)
}

func (m *MDP) String() string {
	str := "MDP | States: %d  |  Max Actions: %d  |  Gamma: %.2f"
	return fmt.Sprintf(str, m.S, m.maxActions, m.Gamma)
}
