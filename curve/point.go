package curve

import (
	"cmp"
	"fmt"
	"math"
)

// Point is one sample of a curve. Ordering and equality use Key only; the
// payload and any interpolation hints never take part in comparisons.
type Point[P any] interface {
	Key() float64
	Value() float64
	// Interpolate returns the value at x for the segment starting at the
	// receiver and ending at upper. Callers guarantee
	// Key() <= x <= upper.Key() and Key() < upper.Key().
	Interpolate(upper P, x float64) float64
}

type keyed interface {
	Key() float64
}

// Compare orders two points by key.
func Compare[P keyed](a, b P) int {
	return cmp.Compare(a.Key(), b.Key())
}

func Less[P keyed](a, b P) bool {
	return a.Key() < b.Key()
}

// Equal reports key equality. Use it instead of == on point structs, which
// would also compare the payload.
func Equal[P keyed](a, b P) bool {
	return a.Key() == b.Key()
}

//
// linear
//

type LinearPoint struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// QueryPoint builds a search-only point; its payload is NaN.
func QueryPoint(x float64) LinearPoint {
	return LinearPoint{X: x, Y: math.NaN()}
}

func (p LinearPoint) Key() float64   { return p.X }
func (p LinearPoint) Value() float64 { return p.Y }

// Interpolate blends the two samples linearly:
//
//	t = (x - x0) / (x1 - x0), y = (1 - t)*y0 + t*y1
func (p LinearPoint) Interpolate(upper LinearPoint, x float64) float64 {
	t := (x - p.X) / (upper.X - p.X)

	return (1.0-t)*p.Y + t*upper.Y
}

func (p LinearPoint) Less(o LinearPoint) bool           { return p.X < o.X }
func (p LinearPoint) LessOrEqual(o LinearPoint) bool    { return !(p.X > o.X) }
func (p LinearPoint) Greater(o LinearPoint) bool        { return p.X > o.X }
func (p LinearPoint) GreaterOrEqual(o LinearPoint) bool { return !(p.X < o.X) }
func (p LinearPoint) Equal(o LinearPoint) bool          { return p.X == o.X }
func (p LinearPoint) NotEqual(o LinearPoint) bool       { return !p.Equal(o) }

func (p LinearPoint) String() string {
	return fmt.Sprintf("x: %v; y: %v", p.X, p.Y)
}

//
// cubic
//

// CubicPoint is a keyframe with tangents, in the style of animation curves.
// Tangents are slopes (dy/dx): InTangent applies to the segment ending at the
// point, OutTangent to the segment starting at it.
type CubicPoint struct {
	X          float64 `yaml:"x" json:"x"`
	Y          float64 `yaml:"y" json:"y"`
	InTangent  float64 `yaml:"in" json:"in"`
	OutTangent float64 `yaml:"out" json:"out"`
}

func (p CubicPoint) Key() float64   { return p.X }
func (p CubicPoint) Value() float64 { return p.Y }

// Interpolate evaluates the cubic Hermite segment matching both end values
// and the end slopes p.OutTangent and upper.InTangent.
func (p CubicPoint) Interpolate(upper CubicPoint, x float64) float64 {
	h := upper.X - p.X
	t := (x - p.X) / h

	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*p.Y + h10*h*p.OutTangent + h01*upper.Y + h11*h*upper.InTangent
}

func (p CubicPoint) Less(o CubicPoint) bool           { return p.X < o.X }
func (p CubicPoint) LessOrEqual(o CubicPoint) bool    { return !(p.X > o.X) }
func (p CubicPoint) Greater(o CubicPoint) bool        { return p.X > o.X }
func (p CubicPoint) GreaterOrEqual(o CubicPoint) bool { return !(p.X < o.X) }
func (p CubicPoint) Equal(o CubicPoint) bool          { return p.X == o.X }
func (p CubicPoint) NotEqual(o CubicPoint) bool       { return !p.Equal(o) }

func (p CubicPoint) String() string {
	return fmt.Sprintf("x: %v; y: %v; in: %v; out: %v", p.X, p.Y, p.InTangent, p.OutTangent)
}
