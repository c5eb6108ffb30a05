package gridworld

import "fmt"

// Action is one of the four directional moves of a grid world
type Action int

// Actions are encoded as integers shared by every component
const (
	Right Action = iota
	Down
	Left
	Up
)

// NumActions is the number of directional actions
const NumActions = 4

var actionNames = [NumActions]string{"right", "down", "left", "up"}

// AllActions returns the four directional actions in encoding order
func AllActions() []Action {
	return []Action{Right, Down, Left, Up}
}

// Opposite returns the action moving in the opposite direction. This is
// the direction the agent moves in when it slips.
func (a Action) Opposite() Action {
	return (a + 2) % NumActions
}

// Delta returns the change in row and column of moving one cell in the
// direction of a
func (a Action) Delta() (dr, dc int) {
	switch a {
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	}
	panic(fmt.Sprintf("delta: no such action %d", int(a)))
}

// Valid returns whether a is one of the four directional actions
func (a Action) Valid() bool {
	return a >= Right && a <= Up
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// availableActions computes the legal actions of the cell at (r, c).
// Terminal cells have the single self-looping action Right.
func (g *Grid) availableActions(r, c int) []Action {
	if g.CellAt(r, c).IsTerminal() {
		return []Action{Right}
	}

	actions := make([]Action, 0, NumActions)
	for _, a := range AllActions() {
		dr, dc := a.Delta()
		nr, nc := r+dr, c+dc

		// Running off the grid boundary
		if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.cols {
			continue
		}

		// Running straight into a wall
		if g.CellAt(nr, nc).IsWall() {
			continue
		}
		actions = append(actions, a)
	}
	return actions
}

// Actions returns the legal actions of state s in ascending order. The
// returned slice must not be modified.
func (g *Grid) Actions(s int) []Action {
	if s < 0 || s >= len(g.actions) {
		return nil
	}
	return g.actions[s]
}

// HasAction returns whether a is legal in state s
func (g *Grid) HasAction(s int, a Action) bool {
	return g.ActionIndex(s, a) >= 0
}

// ActionIndex returns the position of a in the action list of s, or -1 if
// a is not legal in s. This is the action index used by the matrix
// representation of the grid world.
func (g *Grid) ActionIndex(s int, a Action) int {
	for i, legal := range g.Actions(s) {
		if legal == a {
			return i
		}
	}
	return -1
}

// MaxActions returns the largest number of legal actions of any state
func (g *Grid) MaxActions() int {
	return g.maxActions
}
