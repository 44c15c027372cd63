package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubicExactAtSamples(t *testing.T) {
	ps := []CubicPoint{
		{X: 0, Y: 1, InTangent: 3, OutTangent: -2},
		{X: 2, Y: 5, InTangent: 0.5, OutTangent: 7},
		{X: 3, Y: -1, InTangent: 1, OutTangent: 1},
		{X: 7, Y: 4, InTangent: -4, OutTangent: 2},
	}

	c := NewCubicCurve(ps...)

	for _, p := range ps {
		assert.EqualValues(t, p.Y, c.At(p.X))
	}

	// the segment ends are exact even when reached through Interpolate
	assert.EqualValues(t, ps[0].Y, ps[0].Interpolate(ps[1], ps[0].X))
	assert.EqualValues(t, ps[1].Y, ps[0].Interpolate(ps[1], ps[1].X))
}

func TestCubicReproducesLine(t *testing.T) {
	c := NewCubicCurve(
		CubicPoint{X: 0, Y: 0, InTangent: 2, OutTangent: 2},
		CubicPoint{X: 1, Y: 2, InTangent: 2, OutTangent: 2},
	)

	for x := 0.0; x <= 1; x += 0.125 {
		assert.InDelta(t, 2*x, c.At(x), 1e-12)
	}
}

func TestCubicReproducesCube(t *testing.T) {
	// y = x^3: y'(0) = 0, y'(1) = 3
	c := NewCubicCurve(
		CubicPoint{X: 0, Y: 0, InTangent: 0, OutTangent: 0},
		CubicPoint{X: 1, Y: 1, InTangent: 3, OutTangent: 3},
	)

	for x := 0.0; x <= 1; x += 0.1 {
		assert.InDelta(t, x*x*x, c.At(x), 1e-12)
	}

	// scaled key range: y = (x/4)^3 on [0, 4], y'(4) = 3/4
	scaled := NewCubicCurve(
		CubicPoint{X: 0, Y: 0},
		CubicPoint{X: 4, Y: 1, InTangent: 0.75},
	)

	for x := 0.0; x <= 4; x += 0.5 {
		u := x / 4
		assert.InDelta(t, u*u*u, scaled.At(x), 1e-12)
	}
}

func TestCubicUsesTangents(t *testing.T) {
	flat := NewCubicCurve(
		CubicPoint{X: 0, Y: 0},
		CubicPoint{X: 1, Y: 1},
	)

	// smoothstep: 3t^2 - 2t^3
	assert.InDelta(t, 0.15625, flat.At(0.25), 1e-12)
	assert.InDelta(t, 0.5, flat.At(0.5), 1e-12)

	steep := NewCubicCurve(
		CubicPoint{X: 0, Y: 0, OutTangent: 4},
		CubicPoint{X: 1, Y: 1},
	)

	assert.Greater(t, steep.At(0.25), flat.At(0.25))
	assert.NotEqual(t, (0.0+1.0)/2.0, steep.At(0.25))
}

func TestCubicClamp(t *testing.T) {
	c := NewCubicCurve(
		CubicPoint{X: -1, Y: 3, OutTangent: 10},
		CubicPoint{X: 1, Y: 7, InTangent: -10},
	)

	assert.EqualValues(t, 3, c.At(-50))
	assert.EqualValues(t, 7, c.At(50))
}
