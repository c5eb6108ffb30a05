package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/utils/intutils"
)

// GoalReward is the reward of the goal cell placed by the generators
const GoalReward = 1.0

// blankLayout returns a rows x cols layout of walkable cells
func blankLayout(rows, cols int) Layout {
	layout := make(Layout, rows)
	for i := range layout {
		layout[i] = make([]Cell, cols)
	}
	return layout
}

// fill sets the cells in rows [r0, r1) and columns [c0, c1) to cell. The
// ranges are clipped to the layout.
func (l Layout) fill(r0, r1, c0, c1 int, cell Cell) {
	r0, r1 = intutils.Clip(r0, 0, len(l)), intutils.Clip(r1, 0, len(l))
	for i := r0; i < r1; i++ {
		lo := intutils.Clip(c0, 0, len(l[i]))
		hi := intutils.Clip(c1, 0, len(l[i]))
		for j := lo; j < hi; j++ {
			l[i][j] = cell
		}
	}
}

// doorwayTop returns the first index of a doorway of the given height
// whose last cell is pos cells before the end of a room of size bound
func doorwayTop(bound, pos, height int) int {
	return bound - pos - height
}

func checkRooms(roomWidth, roomHeight, doorwayHeight int) error {
	if roomWidth <= 0 || roomHeight <= 0 {
		return fmt.Errorf("%w: rooms must be at least 1x1, got %dx%d",
			ErrConfiguration, roomWidth, roomHeight)
	}
	if doorwayHeight <= 0 {
		return fmt.Errorf("%w: doorway height must be positive, got %d",
			ErrConfiguration, doorwayHeight)
	}
	return nil
}

func checkDoorway(name string, pos, height, bound int) error {
	if pos < 0 {
		return fmt.Errorf("%w: %s position must be non-negative, got %d",
			ErrConfiguration, name, pos)
	}
	if pos+height > bound {
		return fmt.Errorf("%w: %s position + doorway height = %d exceeds "+
			"room dimension %d", ErrConfiguration, name, pos+height, bound)
	}
	return nil
}

// TwoRooms returns the layout of two roomWidth x roomHeight rooms side by
// side, separated by a wall column with a doorway. The doorway spans
// doorwayHeight cells starting doorwayPos cells above the bottom row. The
// goal is placed in the rightmost column at row goalRow.
func TwoRooms(roomWidth, roomHeight, doorwayPos, doorwayHeight,
	goalRow int) (Layout, error) {
	if err := checkRooms(roomWidth, roomHeight, doorwayHeight); err != nil {
		return nil, fmt.Errorf("twoRooms: %w", err)
	}
	if err := checkDoorway("doorway", doorwayPos, doorwayHeight,
		roomHeight); err != nil {
		return nil, fmt.Errorf("twoRooms: %w", err)
	}
	if goalRow < 0 || goalRow >= roomHeight {
		return nil, fmt.Errorf("twoRooms: %w: goal row %d outside [0, %d)",
			ErrConfiguration, goalRow, roomHeight)
	}

	width := 2*roomWidth + 1
	height := roomHeight
	layout := blankLayout(height, width)

	// Dividing wall and its doorway
	layout.fill(0, height, roomWidth, roomWidth+1, WallCell())
	door := doorwayTop(height, doorwayPos, doorwayHeight)
	layout.fill(door, door+doorwayHeight, roomWidth, roomWidth+1,
		WalkableCell())

	layout[goalRow][width-1] = TerminalCell(GoalReward)
	return layout, nil
}

// FourRooms returns the layout of four roomWidth x roomHeight rooms
// arranged in a 2x2 grid and separated by a wall row and a wall column.
// Each half of the wall column has a doorway doorwayPosH cells away from
// the wall row, and each half of the wall row has a doorway doorwayPosV
// cells away from the wall column. All doorways are doorwayHeight cells
// wide. The goal is placed at (goalRow, goalCol).
func FourRooms(roomWidth, roomHeight, doorwayPosV, doorwayPosH,
	doorwayHeight, goalCol, goalRow int) (Layout, error) {
	if err := checkRooms(roomWidth, roomHeight, doorwayHeight); err != nil {
		return nil, fmt.Errorf("fourRooms: %w", err)
	}
	if err := checkDoorway("vertical doorway", doorwayPosV, doorwayHeight,
		roomWidth); err != nil {
		return nil, fmt.Errorf("fourRooms: %w", err)
	}
	if err := checkDoorway("horizontal doorway", doorwayPosH, doorwayHeight,
		roomHeight); err != nil {
		return nil, fmt.Errorf("fourRooms: %w", err)
	}

	width := 2*roomWidth + 1
	height := 2*roomHeight + 1
	if goalRow < 0 || goalRow >= height || goalCol < 0 || goalCol >= width {
		return nil, fmt.Errorf("fourRooms: %w: goal (%d, %d) outside "+
			"(%d, %d) grid", ErrConfiguration, goalRow, goalCol, height,
			width)
	}
	layout := blankLayout(height, width)

	// Dividing walls
	layout.fill(0, height, roomWidth, roomWidth+1, WallCell())
	layout.fill(roomHeight, roomHeight+1, 0, width, WallCell())

	// Doorways in the wall column, above and below the wall row. Each
	// doorway lies entirely within its half of the grid.
	upper := doorwayTop(roomHeight, doorwayPosH, doorwayHeight)
	layout.fill(upper, upper+doorwayHeight, roomWidth, roomWidth+1,
		WalkableCell())
	lower := roomHeight + 1 + doorwayPosH
	layout.fill(lower, lower+doorwayHeight, roomWidth, roomWidth+1,
		WalkableCell())

	// Doorways in the wall row, left and right of the wall column
	left := doorwayTop(roomWidth, doorwayPosV, doorwayHeight)
	layout.fill(roomHeight, roomHeight+1, left, left+doorwayHeight,
		WalkableCell())
	right := roomWidth + 1 + doorwayPosV
	layout.fill(roomHeight, roomHeight+1, right, right+doorwayHeight,
		WalkableCell())

	layout[goalRow][goalCol] = TerminalCell(GoalReward)
	return layout, nil
}
