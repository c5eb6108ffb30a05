package gridworld

import (
	"fmt"
	"strconv"
)

// Wall is the grid literal marker for a wall cell. The empty string
// marks a walkable cell and any number marks a terminal cell.
const Wall = "x"

// CellKind tags the variant of a Cell
type CellKind int

const (
	Walkable CellKind = iota
	Blocked
	Terminal
)

func (k CellKind) String() string {
	switch k {
	case Blocked:
		return "Wall"
	case Terminal:
		return "Terminal"
	default:
		return "Walkable"
	}
}

// Cell is a single cell of a grid world. A Cell is either walkable, a
// wall, or a terminal cell carrying a reward. The zero value is a
// walkable cell.
type Cell struct {
	kind   CellKind
	reward float64
}

// WalkableCell returns a walkable cell
func WalkableCell() Cell {
	return Cell{kind: Walkable}
}

// WallCell returns a wall cell
func WallCell() Cell {
	return Cell{kind: Blocked}
}

// TerminalCell returns a terminal cell paying reward r on entry
func TerminalCell(r float64) Cell {
	return Cell{kind: Terminal, reward: r}
}

// Kind returns the variant of the cell
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsWall returns whether the cell is a wall
func (c Cell) IsWall() bool {
	return c.kind == Blocked
}

// IsTerminal returns whether the cell is terminal
func (c Cell) IsTerminal() bool {
	return c.kind == Terminal
}

// Reward returns the reward for entering the cell. Only terminal cells
// have a non-zero reward.
func (c Cell) Reward() float64 {
	if c.kind != Terminal {
		return 0
	}
	return c.reward
}

// String returns the grid literal marker of the cell
func (c Cell) String() string {
	switch c.kind {
	case Blocked:
		return Wall
	case Terminal:
		return strconv.FormatFloat(c.reward, 'g', -1, 64)
	default:
		return ""
	}
}

// ParseCell parses a single grid literal marker
func ParseCell(marker string) (Cell, error) {
	switch marker {
	case "":
		return WalkableCell(), nil
	case Wall:
		return WallCell(), nil
	}

	r, err := strconv.ParseFloat(marker, 64)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidMarker, marker)
	}
	return TerminalCell(r), nil
}

// Layout is a possibly ragged 2D array of cells, indexed [row][col]
type Layout [][]Cell

// ParseLayout parses a grid literal. Rows may have different lengths.
func ParseLayout(rows [][]string) (Layout, error) {
	layout := make(Layout, len(rows))
	for i, row := range rows {
		layout[i] = make([]Cell, len(row))
		for j, marker := range row {
			cell, err := ParseCell(marker)
			if err != nil {
				return nil, fmt.Errorf("parseLayout: cell (%d, %d): %w", i,
					j, err)
			}
			layout[i][j] = cell
		}
	}
	return layout, nil
}

// MustParseLayout is like ParseLayout but panics if the literal cannot be
// parsed
func MustParseLayout(rows [][]string) Layout {
	layout, err := ParseLayout(rows)
	if err != nil {
		panic(err)
	}
	return layout
}

// Strings returns the grid literal of the layout
func (l Layout) Strings() [][]string {
	rows := make([][]string, len(l))
	for i, row := range l {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = cell.String()
		}
	}
	return rows
}

// Clone returns a deep copy of the layout
func (l Layout) Clone() Layout {
	clone := make(Layout, len(l))
	for i, row := range l {
		clone[i] = make([]Cell, len(row))
		copy(clone[i], row)
	}
	return clone
}
