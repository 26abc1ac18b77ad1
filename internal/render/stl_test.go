package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Hafeezqazi/myring-explorer-AUV/internal/hull"
)

func testSurface(t *testing.T) *hull.Surface {
	t.Helper()
	p := hull.DefaultParameters()
	p.SamplesPerMeter = 10
	res, err := hull.Compute(p)
	require.NoError(t, err)
	return res.Surface
}

func TestTriangleNormal(t *testing.T) {
	tri := Triangle{V: [3]r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}}
	n := tri.Normal()
	assert.InDelta(t, 0, n.X, 1e-15)
	assert.InDelta(t, 0, n.Y, 1e-15)
	assert.InDelta(t, 1, n.Z, 1e-15)
}

func TestTriangleDegenerate(t *testing.T) {
	pt := r3.Vec{X: 1, Y: 2, Z: 3}
	tri := Triangle{V: [3]r3.Vec{pt, pt, pt}}
	assert.True(t, tri.Degenerate(1e-12))

	tri = Triangle{V: [3]r3.Vec{{}, {X: 1}, {Y: 1}}}
	assert.False(t, tri.Degenerate(1e-12))
}

func TestTriangulate(t *testing.T) {
	s := testSurface(t)
	tris := Triangulate(s)

	require.NotEmpty(t, tris)
	// Two triangles per quad is the ceiling; degenerate quads may be
	// dropped.
	assert.LessOrEqual(t, len(tris), 2*(s.Rings()-1)*(s.Stations()-1))

	for _, tri := range tris {
		assert.False(t, tri.Degenerate(1e-18))
	}
}

func TestWriteSTL(t *testing.T) {
	tris := Triangulate(testSurface(t))

	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, tris))

	// 80-byte header + count + 50 bytes per triangle.
	assert.Equal(t, 84+50*len(tris), buf.Len())

	// Triangle count is a little-endian uint32 right after the header.
	count := uint32(buf.Bytes()[80]) |
		uint32(buf.Bytes()[81])<<8 |
		uint32(buf.Bytes()[82])<<16 |
		uint32(buf.Bytes()[83])<<24
	assert.Equal(t, uint32(len(tris)), count)
}

func TestWriteSTLEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteSTL(&buf, nil))
}
