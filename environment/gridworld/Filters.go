package gridworld

import (
	"gonum.org/v1/gonum/floats"
)

// DistanceFilter returns a static filter which accepts the states of g at
// Euclidean distance at least dist from the cell (r, c)
func DistanceFilter(g *Grid, r, c int, dist float64) func(int) bool {
	target := []float64{float64(r), float64(c)}

	return func(s int) bool {
		sr, sc := g.CoordOf(s)
		coord := []float64{float64(sr), float64(sc)}
		return floats.Distance(target, coord, 2) >= dist
	}
}
