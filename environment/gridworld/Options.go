package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/utils/intutils"
	"gonum.org/v1/gonum/mat"
)

// Options are the two handcrafted options of a TwoRooms layout, which
// lead an agent in the left room to the doorway. Every matrix has the
// shape of the layout.
//
// DownwardInit and UpwardInit are the initiation sets (1 where the option
// may be started) of the options which approach the doorway from above
// and from below. Quit is 1 on the doorway cells, where both options
// terminate. DownwardPolicy and UpwardPolicy hold the action taken by
// each option in each cell.
type Options struct {
	DownwardInit   *mat.Dense
	UpwardInit     *mat.Dense
	Quit           *mat.Dense
	DownwardPolicy *mat.Dense
	UpwardPolicy   *mat.Dense
}

// fillDense sets the entries of m in rows [r0, r1) and columns [c0, c1)
// to v, clipping the ranges to the matrix
func fillDense(m *mat.Dense, r0, r1, c0, c1 int, v float64) {
	rows, cols := m.Dims()
	for i := intutils.Max(r0, 0); i < intutils.Min(r1, rows); i++ {
		for j := intutils.Max(c0, 0); j < intutils.Min(c1, cols); j++ {
			m.Set(i, j, v)
		}
	}
}

// TwoRoomsOptions returns the doorway options of the layout created by
// TwoRooms with the same room and doorway parameters
func TwoRoomsOptions(roomWidth, roomHeight, doorwayPos,
	doorwayHeight int) (Options, error) {
	if err := checkRooms(roomWidth, roomHeight, doorwayHeight); err != nil {
		return Options{}, fmt.Errorf("twoRoomsOptions: %w", err)
	}
	if err := checkDoorway("doorway", doorwayPos, doorwayHeight,
		roomHeight); err != nil {
		return Options{}, fmt.Errorf("twoRoomsOptions: %w", err)
	}

	width := 2*roomWidth + 1
	height := roomHeight
	door := doorwayTop(height, doorwayPos, doorwayHeight)

	o := Options{
		DownwardInit:   mat.NewDense(height, width, nil),
		UpwardInit:     mat.NewDense(height, width, nil),
		Quit:           mat.NewDense(height, width, nil),
		DownwardPolicy: mat.NewDense(height, width, nil),
		UpwardPolicy:   mat.NewDense(height, width, nil),
	}

	fillDense(o.UpwardInit, door, height, 0, roomWidth, 1)

	// Down to and including the doorway rows
	fillDense(o.DownwardInit, 0, height-doorwayPos, 0, roomWidth, 1)

	fillDense(o.Quit, door, door+doorwayHeight, roomWidth, roomWidth+1, 1)

	fillDense(o.UpwardPolicy, door+doorwayHeight, height, 0, roomWidth,
		float64(Up))
	fillDense(o.UpwardPolicy, door, door+doorwayHeight, 0, roomWidth+1,
		float64(Right))

	fillDense(o.DownwardPolicy, 0, door, 0, roomWidth, float64(Down))
	fillDense(o.DownwardPolicy, door, door+doorwayHeight, 0, roomWidth+1,
		float64(Right))

	return o, nil
}
