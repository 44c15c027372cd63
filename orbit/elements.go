package orbit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SemiMajorAxis is half the long axis of an elliptical orbit [m].
type SemiMajorAxis float64

// Eccentricity is the orbital eccentricity, zero for a circle.
type Eccentricity float64

// SpecificOrbitalEnergy is the vis-viva energy per unit mass [J/kg].
type SpecificOrbitalEnergy float64

// SpecificRelativeAngularMomentum is the angular momentum per unit mass [m^2/s].
type SpecificRelativeAngularMomentum float64

// sqrt0 absorbs rounding that pushes a circular orbit's radicand below zero.
func sqrt0(v float64) float64 {
	if v < 0 {
		return 0
	}

	return math.Sqrt(v)
}

func checkBody(body *Body) error {
	if body == nil || body.Mu <= 0 {
		return fmt.Errorf("%w: no gravitational parameter", ErrInvalidBody)
	}

	return nil
}

func checkRadii(apR, peR float64) error {
	if !finite(apR, peR) || peR <= 0 || apR < peR {
		return fmt.Errorf("%w: apoapsis %v, periapsis %v", ErrInvalidInput, apR, peR)
	}

	return nil
}

// checkState validates a position r, measured from the body's center [m], and
// a velocity v [m/s].
func checkState(r, v r3.Vec, body *Body) (rn float64, err error) {
	if err = checkBody(body); err != nil {
		return
	}

	if !finite(r.X, r.Y, r.Z, v.X, v.Y, v.Z) {
		err = fmt.Errorf("%w: state r=%v v=%v", ErrInvalidInput, r, v)

		return
	}

	rn = r3.Norm(r)
	if rn == 0 {
		err = fmt.Errorf("%w: position at the center of the body", ErrInvalidInput)
	}

	return
}

func checkVelocity(vx, vy float64) error {
	if !finite(vx, vy) {
		return fmt.Errorf("%w: velocity (%v, %v)", ErrInvalidInput, vx, vy)
	}

	return nil
}

// stateRadius validates a state vector given as horizontal and vertical speed
// at altitude and returns the orbital radius.
func stateRadius(vx, vy, altitude float64, body *Body) (r float64, err error) {
	if err = checkBody(body); err != nil {
		return
	}

	if err = checkVelocity(vx, vy); err != nil {
		return
	}

	return body.radiusAt(altitude)
}

//
// semi-major axis
//

func SemiMajorAxisFromRadii(apR, peR float64) (SemiMajorAxis, error) {
	if err := checkRadii(apR, peR); err != nil {
		return 0, err
	}

	return SemiMajorAxis((apR + peR) / 2), nil
}

func SemiMajorAxisFromAltitudes(apA, peA float64, body *Body) (SemiMajorAxis, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	return SemiMajorAxisFromRadii(apA+body.Radius, peA+body.Radius)
}

// SemiMajorAxisFromEnergy is -mu/(2*energy); only bound orbits have one.
func SemiMajorAxisFromEnergy(energy SpecificOrbitalEnergy, body *Body) (SemiMajorAxis, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if !finite(float64(energy)) || energy >= 0 {
		return 0, fmt.Errorf("%w: energy %v", ErrNotBound, energy)
	}

	return SemiMajorAxis(-body.Mu / (2 * float64(energy))), nil
}

// SemiMajorAxisFromMomentum is h^2/((1-e^2)*mu).
func SemiMajorAxisFromMomentum(h SpecificRelativeAngularMomentum, ecc Eccentricity, body *Body) (SemiMajorAxis, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if !finite(float64(h), float64(ecc)) || ecc < 0 {
		return 0, fmt.Errorf("%w: momentum %v, eccentricity %v", ErrInvalidInput, h, ecc)
	}

	if ecc >= 1 {
		return 0, fmt.Errorf("%w: eccentricity %v", ErrNotBound, ecc)
	}

	e := float64(ecc)

	return SemiMajorAxis(float64(h) * float64(h) / ((1 - e*e) * body.Mu)), nil
}

// SemiMajorAxisFromVelocity solves vis-viva for a craft moving at (vx, vy)
// at altitude.
func SemiMajorAxisFromVelocity(vx, vy, altitude float64, body *Body) (sma SemiMajorAxis, err error) {
	r, err := stateRadius(vx, vy, altitude, body)
	if err != nil {
		return
	}

	d := 2 - (vx*vx+vy*vy)/(body.Mu/r)
	if d <= 0 {
		err = fmt.Errorf("%w: escape velocity reached", ErrNotBound)

		return
	}

	sma = SemiMajorAxis(r / d)

	return
}

//
// eccentricity
//

func EccentricityFromRadii(apR, peR float64) (Eccentricity, error) {
	if err := checkRadii(apR, peR); err != nil {
		return 0, err
	}

	return Eccentricity((apR - peR) / (apR + peR)), nil
}

func EccentricityFromAltitudes(apA, peA float64, body *Body) (Eccentricity, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if err := checkRadii(apA+body.Radius, peA+body.Radius); err != nil {
		return 0, err
	}

	return Eccentricity((apA - peA) / (2*body.Radius + peA + apA)), nil
}

// EccentricityFromMomentum is sqrt((a*mu - h^2)/(a*mu)).
func EccentricityFromMomentum(sma SemiMajorAxis, h SpecificRelativeAngularMomentum, body *Body) (Eccentricity, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if !finite(float64(sma), float64(h)) || sma <= 0 {
		return 0, fmt.Errorf("%w: semi-major axis %v, momentum %v", ErrInvalidInput, sma, h)
	}

	am := float64(sma) * body.Mu

	return Eccentricity(sqrt0((am - float64(h)*float64(h)) / am)), nil
}

// EccentricityFromEnergy is sqrt(1 + 2*energy*h^2/mu^2).
func EccentricityFromEnergy(energy SpecificOrbitalEnergy, h SpecificRelativeAngularMomentum, body *Body) (Eccentricity, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if !finite(float64(energy), float64(h)) {
		return 0, fmt.Errorf("%w: energy %v, momentum %v", ErrInvalidInput, energy, h)
	}

	hh := float64(h) * float64(h)

	return Eccentricity(sqrt0(1 + 2*float64(energy)*hh/(body.Mu*body.Mu))), nil
}

func EccentricityFromVelocity(vx, vy, altitude float64, body *Body) (ecc Eccentricity, err error) {
	r, err := stateRadius(vx, vy, altitude, body)
	if err != nil {
		return
	}

	mu := body.Mu
	vx2 := vx * vx
	r2 := r * r

	ecc = Eccentricity(sqrt0((r2*vx2*vx2 + r2*vx2*vy*vy + mu*mu - 2*r*mu*vx2) / (mu * mu)))

	return
}

// EccentricityFromState is the length of the eccentricity vector
// ((v^2 - mu/r)*r - (r.v)*v)/mu.
func EccentricityFromState(r, v r3.Vec, body *Body) (ecc Eccentricity, err error) {
	rn, err := checkState(r, v, body)
	if err != nil {
		return
	}

	mu := body.Mu
	e := r3.Sub(r3.Scale(r3.Norm2(v)-mu/rn, r), r3.Scale(r3.Dot(r, v), v))

	ecc = Eccentricity(r3.Norm(e) / mu)

	return
}

//
// specific orbital energy
//

func EnergyFromSemiMajorAxis(sma SemiMajorAxis, body *Body) (SpecificOrbitalEnergy, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if !finite(float64(sma)) || sma <= 0 {
		return 0, fmt.Errorf("%w: semi-major axis %v", ErrInvalidInput, sma)
	}

	return SpecificOrbitalEnergy(-body.Mu / (2 * float64(sma))), nil
}

func EnergyFromAltitudes(apA, peA float64, body *Body) (SpecificOrbitalEnergy, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	apR, peR := apA+body.Radius, peA+body.Radius
	if err := checkRadii(apR, peR); err != nil {
		return 0, err
	}

	return SpecificOrbitalEnergy(-body.Mu / (apR + peR)), nil
}

// EnergyFromMomentum is (e^2*mu^2 - mu^2)/(2*h^2).
func EnergyFromMomentum(ecc Eccentricity, h SpecificRelativeAngularMomentum, body *Body) (SpecificOrbitalEnergy, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if !finite(float64(ecc), float64(h)) || ecc < 0 || h == 0 {
		return 0, fmt.Errorf("%w: eccentricity %v, momentum %v", ErrInvalidInput, ecc, h)
	}

	mu2 := body.Mu * body.Mu
	e := float64(ecc)

	return SpecificOrbitalEnergy((e*e*mu2 - mu2) / (2 * float64(h) * float64(h))), nil
}

func EnergyFromVelocity(vx, vy, altitude float64, body *Body) (energy SpecificOrbitalEnergy, err error) {
	r, err := stateRadius(vx, vy, altitude, body)
	if err != nil {
		return
	}

	energy = SpecificOrbitalEnergy((vx*vx+vy*vy)/2 - body.Mu/r)

	return
}

func EnergyFromState(r, v r3.Vec, body *Body) (energy SpecificOrbitalEnergy, err error) {
	rn, err := checkState(r, v, body)
	if err != nil {
		return
	}

	energy = SpecificOrbitalEnergy(r3.Norm2(v)/2 - body.Mu/rn)

	return
}

//
// specific relative angular momentum
//

// MomentumFromElements is sqrt((1-e^2)*mu*a).
func MomentumFromElements(sma SemiMajorAxis, ecc Eccentricity, body *Body) (SpecificRelativeAngularMomentum, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if !finite(float64(sma), float64(ecc)) || sma <= 0 || ecc < 0 {
		return 0, fmt.Errorf("%w: semi-major axis %v, eccentricity %v", ErrInvalidInput, sma, ecc)
	}

	e := float64(ecc)

	return SpecificRelativeAngularMomentum(sqrt0((1 - e*e) * body.Mu * float64(sma))), nil
}

// MomentumFromEnergy is sqrt((e^2*mu^2 - mu^2)/(2*energy)).
func MomentumFromEnergy(energy SpecificOrbitalEnergy, ecc Eccentricity, body *Body) (SpecificRelativeAngularMomentum, error) {
	if err := checkBody(body); err != nil {
		return 0, err
	}

	if !finite(float64(energy), float64(ecc)) || energy == 0 || ecc < 0 {
		return 0, fmt.Errorf("%w: energy %v, eccentricity %v", ErrInvalidInput, energy, ecc)
	}

	mu2 := body.Mu * body.Mu
	e := float64(ecc)

	return SpecificRelativeAngularMomentum(sqrt0((e*e*mu2 - mu2) / (2 * float64(energy)))), nil
}

// MomentumFromVelocity uses only the horizontal speed; the radial component
// carries no angular momentum.
func MomentumFromVelocity(vx, altitude float64, body *Body) (h SpecificRelativeAngularMomentum, err error) {
	r, err := stateRadius(vx, 0, altitude, body)
	if err != nil {
		return
	}

	h = SpecificRelativeAngularMomentum(vx * r)

	return
}

// MomentumFromState is |r x v|, with r measured from the body's center.
func MomentumFromState(r, v r3.Vec, body *Body) (h SpecificRelativeAngularMomentum, err error) {
	if _, err = checkState(r, v, body); err != nil {
		return
	}

	h = SpecificRelativeAngularMomentum(r3.Norm(r3.Cross(r, v)))

	return
}
