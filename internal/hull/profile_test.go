package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero diameter", func(p *Parameters) { p.Diameter = 0 }},
		{"negative diameter", func(p *Parameters) { p.Diameter = -0.1 }},
		{"zero head length", func(p *Parameters) { p.HeadLength = 0 }},
		{"zero tail length", func(p *Parameters) { p.TailLength = 0 }},
		{"zero exponent", func(p *Parameters) { p.HeadExponent = 0 }},
		{"too few samples", func(p *Parameters) { p.SamplesPerMeter = 2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParameters()
			tc.mutate(&p)
			_, err := Compute(p)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestComputeDefaultScenario(t *testing.T) {
	res, err := Compute(DefaultParameters())
	require.NoError(t, err)

	// 0.155−0.055 head, 1.987 mid, 0.7715−0.2235 tail.
	assert.InDelta(t, 0.100, res.HeadEffective, 1e-12)
	assert.InDelta(t, 0.548, res.TailEffective, 1e-12)
	assert.InDelta(t, 2.635, res.TotalLength, 1e-12)
	assert.InDelta(t, res.HeadEffective+res.MidLength+res.TailEffective, res.TotalLength, 0)
	assert.InDelta(t, 2.635/0.254, res.LengthOverDiameter, 1e-12)

	assert.Greater(t, res.Volume, 0.0)
	assert.Greater(t, res.WettedArea, 0.0)
	assert.Greater(t, res.BuoyancyCenterX, 0.0)
	assert.Less(t, res.BuoyancyCenterX, res.TotalLength)

	require.NotNil(t, res.ReynoldsNumber)
	require.NotNil(t, res.FrictionCoefficient)
	require.NotNil(t, res.FrictionDrag)
	assert.InDelta(t, 2.0*2.635/1.19e-6, *res.ReynoldsNumber, 1)
	assert.InDelta(t, 0.5*1030*4*res.WettedArea*(*res.FrictionCoefficient),
		*res.FrictionDrag, 1e-9)
}

func TestComputeProfileShape(t *testing.T) {
	res, err := Compute(DefaultParameters())
	require.NoError(t, err)

	require.Equal(t, len(res.X), len(res.R))
	require.Equal(t, len(res.X), len(res.Areas))

	assert.Equal(t, 0.0, res.X[0], "profile starts at the nose cut")
	assert.InDelta(t, res.TotalLength, res.X[len(res.X)-1], 1e-12, "profile ends at the stern cut")

	for i := 1; i < len(res.X); i++ {
		assert.Greater(t, res.X[i], res.X[i-1], "stations strictly increasing at %d", i)
	}
	for i, r := range res.R {
		assert.GreaterOrEqual(t, r, 0.0, "radius at %d", i)
	}

	assert.Equal(t, res.R[0], res.FrontRadius)
	assert.Equal(t, res.R[len(res.R)-1], res.SternRadius)

	// The midbody holds the full radius.
	assert.InDelta(t, 0.254/2, res.R[len(res.X)/2], 1e-12)
}

func TestComputeIsPure(t *testing.T) {
	p := DefaultParameters()
	a, err := Compute(p)
	require.NoError(t, err)
	b, err := Compute(p)
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.R, b.R)
	assert.Equal(t, a.Volume, b.Volume)
	assert.Equal(t, a.WettedArea, b.WettedArea)
	assert.Equal(t, a.BuoyancyCenterX, b.BuoyancyCenterX)
}

func TestComputeWithoutSpeed(t *testing.T) {
	p := DefaultParameters()
	p.Speed = nil
	res, err := Compute(p)
	require.NoError(t, err)
	assert.Nil(t, res.ReynoldsNumber)
	assert.Nil(t, res.FrictionCoefficient)
	assert.Nil(t, res.FrictionDrag)

	zero := 0.0
	p.Speed = &zero
	res, err = Compute(p)
	require.NoError(t, err)
	assert.Nil(t, res.ReynoldsNumber, "zero speed disables the estimate")
	assert.Nil(t, res.FrictionDrag)
}

func TestComputeDegenerateOffsets(t *testing.T) {
	p := DefaultParameters()
	p.HeadOffset = p.HeadLength
	_, err := Compute(p)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	p = DefaultParameters()
	p.TailOffset = p.TailLength + 0.1
	_, err = Compute(p)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestComputeTargetOverridesOffset(t *testing.T) {
	p := DefaultParameters()
	target := 0.09 // m; attainable, between 0 and D/2
	p.FrontRadiusTarget = &target
	p.HeadOffset = 0.001 // should be ignored

	res, err := Compute(p)
	require.NoError(t, err)
	assert.NotEqual(t, 0.001, res.HeadOffset)
	assert.InDelta(t, target, res.FrontRadius, 1e-9,
		"resolved offset reproduces the requested radius")
}

func TestComputeSternTarget(t *testing.T) {
	p := DefaultParameters()
	target := 0.05
	p.SternRadiusTarget = &target

	res, err := Compute(p)
	require.NoError(t, err)
	assert.InDelta(t, target, res.SternRadius, 1e-4)
}

func TestComputeCoarseSampling(t *testing.T) {
	p := DefaultParameters()
	p.SamplesPerMeter = 3

	res, err := Compute(p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(res.X), 7, "three segments with shared junctions")
	assert.Greater(t, res.Volume, 0.0)
}

func TestDedupeClip(t *testing.T) {
	xs := []float64{0, 1, 1, 2, 3}
	rs := []float64{1, 2, 9, -0.5, 4}
	gotX, gotR := dedupeClip(xs, rs)
	assert.Equal(t, []float64{0, 1, 2, 3}, gotX)
	assert.Equal(t, []float64{1, 2, 0, 4}, gotR)
}
