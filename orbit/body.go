package orbit

import (
	"fmt"
	"math"

	"github.com/sgostarter/libchrysaor/atmosphere"
)

// Body is a celestial body something can orbit or launch from.
type Body struct {
	Mu             float64 // standard gravitational parameter [m^3/s^2]
	Radius         float64 // [m]
	RotationPeriod float64 // stellar day [s], zero for a body that does not spin

	Atmosphere *atmosphere.Atmosphere // nil for airless bodies
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func NewBody(mu, radius, rotationPeriod float64, atm *atmosphere.Atmosphere) (*Body, error) {
	if !finite(mu, radius, rotationPeriod) || mu <= 0 || radius < 0 || rotationPeriod < 0 {
		return nil, fmt.Errorf("%w: mu %v, radius %v, rotation period %v", ErrInvalidBody, mu, radius, rotationPeriod)
	}

	return &Body{
		Mu:             mu,
		Radius:         radius,
		RotationPeriod: rotationPeriod,
		Atmosphere:     atm,
	}, nil
}

func (b *Body) radiusAt(altitude float64) (r float64, err error) {
	if !finite(altitude) || altitude < 0 {
		err = fmt.Errorf("%w: %v", ErrInvalidAltitude, altitude)

		return
	}

	r = b.Radius + altitude
	if r == 0 {
		err = fmt.Errorf("%w: zero radius", ErrInvalidAltitude)
	}

	return
}

// GravitationalAcceleration is mu/r^2 at altitude above the surface [m/s^2].
func (b *Body) GravitationalAcceleration(altitude float64) (g float64, err error) {
	r, err := b.radiusAt(altitude)
	if err != nil {
		return
	}

	g = b.Mu / (r * r)

	return
}

// EquatorialSpeed is the surface rotation speed at the equator [m/s].
func (b *Body) EquatorialSpeed() float64 {
	if b.RotationPeriod == 0 {
		return 0
	}

	return 2 * math.Pi * b.Radius / b.RotationPeriod
}

// SpeedAtLatitude is the surface rotation speed at latitude [deg].
func (b *Body) SpeedAtLatitude(latitude float64) (float64, error) {
	if !finite(latitude) || latitude < -90 || latitude > 90 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLatitude, latitude)
	}

	// cos(90 deg) is a hair above zero in floating point
	return math.Max(0, b.EquatorialSpeed()*math.Cos(latitude*math.Pi/180)), nil
}
