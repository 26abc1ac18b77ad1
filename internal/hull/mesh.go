package hull

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// ringSamples is the fixed number of angular stations used when sweeping
// the profile around the axis. The ring includes both 0 and 2π, so the
// seam column is duplicated and consumers need no wrap-around handling.
const ringSamples = 120

// Surface is the hull profile revolved about the x axis: a rectangular
// grid with one row per angle and one column per axial station.
// Y[i][j] = R[j]·cos(Theta[i]) and Z[i][j] = R[j]·sin(Theta[i]).
type Surface struct {
	Theta []float64
	X     []float64
	Y     [][]float64
	Z     [][]float64
}

// revolve sweeps the (x, r) profile through a full turn.
func revolve(xs, rs []float64) *Surface {
	s := &Surface{
		Theta: floats.Span(make([]float64, ringSamples), 0, 2*math.Pi),
		X:     xs,
		Y:     make([][]float64, ringSamples),
		Z:     make([][]float64, ringSamples),
	}
	for i, t := range s.Theta {
		cos, sin := math.Cos(t), math.Sin(t)
		s.Y[i] = make([]float64, len(xs))
		s.Z[i] = make([]float64, len(xs))
		for j, r := range rs {
			s.Y[i][j] = r * cos
			s.Z[i][j] = r * sin
		}
	}
	return s
}

// Rings returns the number of angular rows in the grid.
func (s *Surface) Rings() int { return len(s.Theta) }

// Stations returns the number of axial columns in the grid.
func (s *Surface) Stations() int { return len(s.X) }

// Node returns the grid vertex at angular row i and axial column j.
func (s *Surface) Node(i, j int) r3.Vec {
	return r3.Vec{X: s.X[j], Y: s.Y[i][j], Z: s.Z[i][j]}
}
