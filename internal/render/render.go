// Package render turns a revolved hull surface into a triangle mesh and
// writes it out in binary STL form.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/hull"
)

// Triangle is a 3D triangle described by its three vertices.
type Triangle struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle, following the
// right-hand rule over the vertex order.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate reports whether the triangle has near-zero area, within
// tol on each cross-product component.
func (t Triangle) Degenerate(tol float64) bool {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	c := r3.Cross(e1, e2)
	return abs(c.X) < tol && abs(c.Y) < tol && abs(c.Z) < tol
}

// Triangulate converts the surface grid into triangles, two per grid
// quad. Quads collapsed to a point or a line (the stern tip when the
// tail is cut all the way down to zero radius) are skipped.
func Triangulate(s *hull.Surface) []Triangle {
	const tol = 1e-18
	rings, stations := s.Rings(), s.Stations()
	tris := make([]Triangle, 0, 2*(rings-1)*(stations-1))
	for i := 0; i < rings-1; i++ {
		for j := 0; j < stations-1; j++ {
			a := s.Node(i, j)
			b := s.Node(i+1, j)
			c := s.Node(i+1, j+1)
			d := s.Node(i, j+1)
			for _, t := range [2]Triangle{{V: [3]r3.Vec{a, b, c}}, {V: [3]r3.Vec{a, c, d}}} {
				if !t.Degenerate(tol) {
					tris = append(tris, t)
				}
			}
		}
	}
	return tris
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
