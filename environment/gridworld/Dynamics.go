package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/utils/intutils"
)

// DefaultSuccessProbability is the probability that an action moves the
// agent in the intended direction
const DefaultSuccessProbability = 0.9

// Transition is a single outcome of taking an action in a state
type Transition struct {
	State     int
	Action    Action
	NextState int
	Reward    float64
	Absorb    bool
}

// move returns the cell reached by moving from (r, c) in direction a. The
// destination is clamped to the grid edge, and moving into a wall leaves
// the agent at (r, c).
func (g *Grid) move(r, c int, a Action) (int, int) {
	dr, dc := a.Delta()
	nr := intutils.Clip(r+dr, 0, g.rows-1)
	nc := intutils.Clip(c+dc, 0, g.cols-1)

	if g.CellAt(nr, nc).IsWall() {
		return r, c
	}
	return nr, nc
}

// Outcomes returns the state reached when action a succeeds in state s and
// the state reached when the agent slips in the opposite direction.
// Terminal states lead to themselves.
func (g *Grid) Outcomes(s int, a Action) (succ, fail int) {
	r, c := g.CoordOf(s)
	if g.CellAt(r, c).IsTerminal() {
		return s, s
	}

	sr, sc := g.move(r, c, a)
	fr, fc := g.move(r, c, a.Opposite())
	return g.StateOf(sr, sc), g.StateOf(fr, fc)
}

// Dynamics implements the stochastic transition rule of a grid world
type Dynamics struct {
	grid  *Grid
	pSucc float64
}

// NewDynamics returns the dynamics of grid g where actions succeed with
// probability pSucc
func NewDynamics(g *Grid, pSucc float64) (Dynamics, error) {
	if pSucc < 0 || pSucc > 1 {
		return Dynamics{}, fmt.Errorf("newDynamics: success probability "+
			"must be in [0, 1], got %v", pSucc)
	}
	return Dynamics{g, pSucc}, nil
}

// SuccessProbability returns the probability that an action succeeds
func (d Dynamics) SuccessProbability() float64 {
	return d.pSucc
}

// Transition returns the deterministic outcome of taking action a in state
// s, where slipped determines whether the agent moves in the opposite
// direction. The action must be legal in s.
func (d Dynamics) Transition(s int, a Action, slipped bool) Transition {
	if d.grid.IsTerminal(s) {
		return Transition{State: s, Action: a, NextState: s, Absorb: true}
	}

	succ, fail := d.grid.Outcomes(s, a)
	next := succ
	if slipped {
		next = fail
	}

	cell := d.grid.Cell(next)
	return Transition{
		State:     s,
		Action:    a,
		NextState: next,
		Reward:    cell.Reward(),
		Absorb:    cell.IsTerminal(),
	}
}

// Sample returns the outcome of taking action a in state s given a draw u
// from the uniform distribution on [0, 1). The agent slips when u exceeds
// the success probability.
func (d Dynamics) Sample(s int, a Action, u float64) Transition {
	return d.Transition(s, a, u > d.pSucc)
}
