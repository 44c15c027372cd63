package curve

// Evaluator is the read side of a curve, as used by atmosphere and engine models.
type Evaluator interface {
	At(x float64) float64
	Size() int
}

var (
	_ Evaluator = (*Curve[LinearPoint])(nil)
	_ Evaluator = (*Curve[CubicPoint])(nil)
	_ Evaluator = (*CachedCurve)(nil)
)

type Storage[P any] interface {
	Load(key string) (ps []P, err error)
	Save(key string, ps []P) error
}
