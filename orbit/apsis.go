package orbit

import "math"

// Apsis is an extreme point of an orbit around a body.
type Apsis struct {
	radius float64
	body   *Body
}

// Apoapsis is the farthest point, a*(1+e).
func Apoapsis(sma SemiMajorAxis, ecc Eccentricity, body *Body) Apsis {
	return Apsis{
		radius: float64(sma) * (1 + float64(ecc)),
		body:   body,
	}
}

// Periapsis is the closest point, a*(1-e).
func Periapsis(sma SemiMajorAxis, ecc Eccentricity, body *Body) Apsis {
	return Apsis{
		radius: float64(sma) * (1 - float64(ecc)),
		body:   body,
	}
}

// Radius is measured from the body's center [m].
func (a Apsis) Radius() float64 {
	return a.radius
}

// Altitude is measured from the body's surface [m]. Without a body it is NaN.
func (a Apsis) Altitude() float64 {
	if a.body == nil {
		return math.NaN()
	}

	return a.radius - a.body.Radius
}
