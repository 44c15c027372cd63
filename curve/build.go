package curve

import "fmt"

// Kind selects the interpolation strategy of a tabulated curve.
type Kind string

const (
	KindLinear Kind = "linear"
	KindCubic  Kind = "cubic"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindLinear:
		return KindLinear, nil
	case KindCubic:
		return KindCubic, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Build turns table rows into a curve. Linear rows are [x, y]; cubic rows are
// [x, y] (flat tangents) or [x, y, inTangent, outTangent].
func Build(kind Kind, rows [][]float64, opts ...Option) (Evaluator, error) {
	switch kind {
	case "", KindLinear:
		ps, err := LinearPoints(rows)
		if err != nil {
			return nil, err
		}

		c, err := NewCurve(ps, opts...)
		if err != nil {
			return nil, err
		}

		return c, nil
	case KindCubic:
		ps, err := CubicPoints(rows)
		if err != nil {
			return nil, err
		}

		c, err := NewCurve(ps, opts...)
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}

func LinearPoints(rows [][]float64) ([]LinearPoint, error) {
	ps := make([]LinearPoint, 0, len(rows))

	for idx, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want 2", ErrBadRow, idx, len(row))
		}

		ps = append(ps, LinearPoint{X: row[0], Y: row[1]})
	}

	return ps, nil
}

func CubicPoints(rows [][]float64) ([]CubicPoint, error) {
	ps := make([]CubicPoint, 0, len(rows))

	for idx, row := range rows {
		switch len(row) {
		case 2:
			ps = append(ps, CubicPoint{X: row[0], Y: row[1]})
		case 4:
			ps = append(ps, CubicPoint{X: row[0], Y: row[1], InTangent: row[2], OutTangent: row[3]})
		default:
			return nil, fmt.Errorf("%w: row %d has %d columns, want 2 or 4", ErrBadRow, idx, len(row))
		}
	}

	return ps, nil
}
