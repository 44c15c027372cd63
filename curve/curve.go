package curve

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Curve is an immutable, key-ordered set of points answering "value at x"
// queries. Below the first key and above the last key the boundary value is
// returned; no extrapolation happens.
//
// A Curve is safe for concurrent readers once NewCurve has returned.
type Curve[P Point[P]] struct {
	points []P
}

func NewCurve[P Point[P]](points []P, opts ...Option) (*Curve[P], error) {
	o := optionNew(opts...)

	logger := o.logger.WithFields(l.StringField(l.ClsKey, "curve"))

	for _, p := range points {
		if math.IsNaN(p.Key()) || math.IsInf(p.Key(), 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, p.Key())
		}
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, Compare[P])

	out := sorted[:0]

	for _, p := range sorted {
		if len(out) == 0 || !Equal(out[len(out)-1], p) {
			out = append(out, p)

			continue
		}

		switch o.duplicatePolicy {
		case DuplicateReject:
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, p.Key())
		case DuplicateFirstWins:
		default:
			out[len(out)-1] = p
		}

		logger.WithFields(l.StringField("key", cast.ToString(p.Key())),
			l.StringField("policy", o.duplicatePolicy.String())).Debug("duplicate key collapsed")
	}

	return &Curve[P]{
		points: slices.Clip(out),
	}, nil
}

// MustNewCurve is NewCurve for literal tables known to be valid.
func MustNewCurve[P Point[P]](points []P, opts ...Option) *Curve[P] {
	c, err := NewCurve(points, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

func NewLinearCurve(points ...LinearPoint) *Curve[LinearPoint] {
	return MustNewCurve(points)
}

func NewCubicCurve(points ...CubicPoint) *Curve[CubicPoint] {
	return MustNewCurve(points)
}

// At returns the value at x. It panics on an empty curve or a NaN x: both are
// programming errors on the caller's side.
func (c *Curve[P]) At(x float64) float64 {
	v, err := c.Evaluate(x)
	if err != nil {
		panic(err)
	}

	return v
}

// Evaluate is At reporting misuse as an error.
func (c *Curve[P]) Evaluate(x float64) (v float64, err error) {
	n := len(c.points)
	if n == 0 {
		err = ErrEmptyCurve

		return
	}

	if math.IsNaN(x) {
		err = fmt.Errorf("%w: x is NaN", ErrInvalidInput)

		return
	}

	first, last := c.points[0], c.points[n-1]

	if x <= first.Key() {
		v = first.Value()

		return
	}

	if x >= last.Key() {
		v = last.Value()

		return
	}

	// 1 <= idx <= n-1 after the clamps above
	idx := sort.Search(n, func(i int) bool {
		return c.points[i].Key() > x
	})

	lower := c.points[idx-1]
	if lower.Key() == x {
		v = lower.Value()

		return
	}

	v = lower.Interpolate(c.points[idx], x)

	return
}

func (c *Curve[P]) Size() int {
	return len(c.points)
}

// Points returns the samples in ascending key order.
func (c *Curve[P]) Points() []P {
	return slices.Clone(c.points)
}

// Lookup returns the sample stored exactly at x.
func (c *Curve[P]) Lookup(x float64) (p P, ok bool) {
	idx, found := slices.BinarySearchFunc(c.points, x, func(e P, t float64) int {
		return cmp.Compare(e.Key(), t)
	})
	if !found {
		return
	}

	return c.points[idx], true
}

// Domain returns the smallest and largest keys.
func (c *Curve[P]) Domain() (lo, hi float64, ok bool) {
	if len(c.points) == 0 {
		return
	}

	return c.points[0].Key(), c.points[len(c.points)-1].Key(), true
}
