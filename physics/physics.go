// Package physics holds the point-in-time relations shared by the atmosphere
// and vehicle models.
package physics

import (
	"fmt"
	"math"
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// IdealGasDensity returns rho = p / (R * T) for dry air, p in [Pa], T in [K].
func IdealGasDensity(p, T float64) (rho float64, err error) {
	if !finite(p, T) {
		err = fmt.Errorf("%w: p=%v T=%v", ErrInvalidInput, p, T)

		return
	}

	if T <= 0 {
		err = fmt.Errorf("%w: non-positive temperature %v", ErrInvalidInput, T)

		return
	}

	rho = p / (RSpecificDryAir * T)

	return
}

// DynamicPressure returns q = rho * v^2 / 2 [Pa].
func DynamicPressure(rho, v float64) (q float64, err error) {
	if !finite(rho, v) || rho < 0 || v < 0 {
		err = fmt.Errorf("%w: rho=%v v=%v", ErrInvalidInput, rho, v)

		return
	}

	q = rho * v * v / 2.0

	return
}

// Drag returns F = q * Cd * A [N].
func Drag(q, cd, area float64) (f float64, err error) {
	if !finite(q, cd, area) || q < 0 || cd < 0 || area < 0 {
		err = fmt.Errorf("%w: q=%v cd=%v area=%v", ErrInvalidInput, q, cd, area)

		return
	}

	f = q * cd * area

	return
}
