package curve

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingEvaluator struct {
	e     Evaluator
	calls atomic.Int64
}

func (c *countingEvaluator) At(x float64) float64 {
	c.calls.Add(1)

	return c.e.At(x)
}

func (c *countingEvaluator) Size() int {
	return c.e.Size()
}

func TestCachedCurve(t *testing.T) {
	inner := &countingEvaluator{
		e: NewLinearCurve(LinearPoint{X: 0, Y: 2}, LinearPoint{X: 1, Y: 4}),
	}

	c := NewCachedCurve(inner, time.Minute)
	assert.Equal(t, 2, c.Size())

	assert.EqualValues(t, 3, c.At(0.5))
	assert.EqualValues(t, 3, c.At(0.5))
	assert.EqualValues(t, 2, c.At(-1))

	assert.EqualValues(t, 2, inner.calls.Load())
	assert.Equal(t, 2, c.Cached())
}

func TestCachedCurveNoExpiration(t *testing.T) {
	c := NewCachedCurve(NewLinearCurve(LinearPoint{X: 0, Y: 1}), 0)

	for i := 0; i < 10; i++ {
		assert.EqualValues(t, 1, c.At(float64(i)))
	}

	assert.Equal(t, 10, c.Cached())
}

func TestCachedCurveEmptyPanics(t *testing.T) {
	c := NewCachedCurve(&Curve[LinearPoint]{}, time.Minute)

	assert.Panics(t, func() {
		_ = c.At(0)
	})
	assert.Equal(t, 0, c.Cached())
}

func TestCachedCurveBounded(t *testing.T) {
	inner := &countingEvaluator{
		e: NewLinearCurve(LinearPoint{X: 0, Y: 101325}, LinearPoint{X: 140000, Y: 0}),
	}

	c := NewCachedCurve(inner, 0)

	for alt := 0.0; alt < 2*MaxCachedResults+10; alt += 1.0 {
		_ = c.At(alt)
		assert.LessOrEqual(t, c.Cached(), MaxCachedResults)
	}

	assert.EqualValues(t, 2*MaxCachedResults+10, inner.calls.Load())
	assert.EqualValues(t, 101325, c.At(0))
}
