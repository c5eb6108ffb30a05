// Package gridworld implements stochastic 2D grid world MDPs.
//
// A grid world is built from a Layout of walkable, wall, and terminal
// cells. Every non-wall cell is a state, numbered in row-major order.
// From a walkable state the agent can take one of the four directional
// actions which do not immediately run off the grid or into a wall. An
// action succeeds with a fixed probability, otherwise the agent slips in
// the opposite direction. Moves onto walls or off the grid leave the
// agent in place. Entering a terminal cell pays that cell's reward and
// absorbs the agent.
//
// The dynamics are available both as a sampled step function (GridWorld)
// and in tabular form (MDP).
package gridworld

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gridmdp/utils/intutils"
)

// NoState is the state id of cells which are not states
const NoState = -1

// Grid is the immutable geometry of a grid world: its cells, the
// bijection between coordinates and states, and the legal actions of
// each state.
type Grid struct {
	layout     Layout
	rows, cols int

	coordToState [][]int
	stateToCoord [][2]int
	actions      [][]Action
	maxActions   int
}

// NewGrid creates a new Grid from a layout. The layout is copied. The
// number of columns of the grid is the length of the longest row; cells
// missing from shorter rows are treated as walls.
func NewGrid(l Layout) *Grid {
	g := &Grid{layout: l.Clone(), rows: len(l)}
	for _, row := range l {
		g.cols = intutils.Max(g.cols, len(row))
	}

	// Map coordinates (r, c) to a scalar state and vice-versa
	g.coordToState = make([][]int, g.rows)
	for i := 0; i < g.rows; i++ {
		g.coordToState[i] = make([]int, g.cols)
		for j := 0; j < g.cols; j++ {
			if g.CellAt(i, j).IsWall() {
				g.coordToState[i][j] = NoState
				continue
			}
			g.coordToState[i][j] = len(g.stateToCoord)
			g.stateToCoord = append(g.stateToCoord, [2]int{i, j})
		}
	}

	g.actions = make([][]Action, len(g.stateToCoord))
	for s, coord := range g.stateToCoord {
		g.actions[s] = g.availableActions(coord[0], coord[1])
		g.maxActions = intutils.Max(g.maxActions, len(g.actions[s]))
	}

	return g
}

// Dims returns the number of rows and columns of the grid
func (g *Grid) Dims() (r, c int) {
	return g.rows, g.cols
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// NumStates returns the number of states in the grid
func (g *Grid) NumStates() int {
	return len(g.stateToCoord)
}

// Layout returns a copy of the layout of the grid
func (g *Grid) Layout() Layout {
	return g.layout.Clone()
}

// CellAt returns the cell at (r, c). Coordinates outside the grid, or
// beyond the end of a short row, are walls.
func (g *Grid) CellAt(r, c int) Cell {
	if r < 0 || r >= len(g.layout) || c < 0 || c >= len(g.layout[r]) {
		return WallCell()
	}
	return g.layout[r][c]
}

// StateOf returns the state at coordinates (r, c), or NoState if there is
// no state there
func (g *Grid) StateOf(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return NoState
	}
	return g.coordToState[r][c]
}

// CoordOf returns the coordinates of state s. CoordOf panics if s is not a
// state of the grid.
func (g *Grid) CoordOf(s int) (r, c int) {
	if !g.ValidState(s) {
		panic(fmt.Sprintf("coordOf: no such state %d", s))
	}
	return g.stateToCoord[s][0], g.stateToCoord[s][1]
}

// ValidState returns whether s is a state of the grid
func (g *Grid) ValidState(s int) bool {
	return s >= 0 && s < len(g.stateToCoord)
}

// Cell returns the cell of state s
func (g *Grid) Cell(s int) Cell {
	r, c := g.CoordOf(s)
	return g.CellAt(r, c)
}

// IsTerminal returns whether state s is terminal
func (g *Grid) IsTerminal(s int) bool {
	return g.ValidState(s) && g.Cell(s).IsTerminal()
}

// TerminalStates returns the terminal states of the grid in ascending order
func (g *Grid) TerminalStates() []int {
	var terminals []int
	for s := range g.stateToCoord {
		if g.IsTerminal(s) {
			terminals = append(terminals, s)
		}
	}
	return terminals
}

// String returns the grid literal of the grid, one row per line with
// walkable cells drawn as '.'
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			cell := g.CellAt(i, j)
			switch {
			case cell.IsTerminal():
				b.WriteString(cell.String())
			case cell.IsWall():
				b.WriteString(Wall)
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
