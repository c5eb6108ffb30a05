// Package render implements observers which draw the transitions of a
// grid world
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/gridmdp/environment/gridworld"
)

// Terminal draws the grid and the position of the agent to a writer
// after every transition
type Terminal struct {
	grid  *gridworld.Grid
	out   io.Writer
	au    aurora.Aurora
	steps int
}

// NewTerminal returns a new Terminal observer drawing grid g to out. If
// colours is false, no escape codes are written.
func NewTerminal(g *gridworld.Grid, out io.Writer, colours bool) *Terminal {
	return &Terminal{grid: g, out: out, au: aurora.NewAurora(colours)}
}

// Observe draws the grid with the agent at nextState
func (t *Terminal) Observe(state, action, nextState int, reward float64) {
	t.steps++
	fmt.Fprint(t.out, t.Frame(nextState))
	fmt.Fprintf(t.out, "step: %d  r= %.1f  action: %v\n\n", t.steps, reward,
		gridworld.Action(action))
}

// Frame returns the drawing of the grid with the agent in state agent
func (t *Terminal) Frame(agent int) string {
	var b strings.Builder
	rows, cols := t.grid.Dims()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := t.grid.CellAt(r, c)
			s := t.grid.StateOf(r, c)

			switch {
			case s == agent && s != gridworld.NoState:
				b.WriteString(t.au.Red(fmt.Sprintf("%5s ", "@")).String())
			case cell.IsWall():
				b.WriteString(t.au.Gray(12, fmt.Sprintf("%5s ",
					gridworld.Wall)).String())
			case cell.IsTerminal():
				b.WriteString(t.au.Blue(fmt.Sprintf("%5.1f ",
					cell.Reward())).String())
			default:
				b.WriteString(t.au.White(fmt.Sprintf("%5s ", ".")).String())
			}
			b.WriteString(t.au.White("|").String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
