package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularOrbit(t *testing.T) {
	cases := []struct {
		body     *Body
		altitude float64
	}{
		{kerbin(t), 7.0e+04},
		{kerbin(t), 1.0e+05},
		{kerbin(t), 2.86333406e+06},
		{earth(t), 1.6e+05},
		{earth(t), 2.0e+05},
		{earth(t), 3.5786e+07},
	}

	for _, c := range cases {
		r := c.body.Radius + c.altitude
		v := math.Sqrt(c.body.Mu / r)

		sma, err := SemiMajorAxisFromVelocity(v, 0, c.altitude, c.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, r, float64(sma), 1e-9)

		sma, err = SemiMajorAxisFromAltitudes(c.altitude, c.altitude, c.body)
		assert.Nil(t, err)
		assert.EqualValues(t, r, sma)

		ecc, err := EccentricityFromVelocity(v, 0, c.altitude, c.body)
		assert.Nil(t, err)
		assert.InDelta(t, 0, float64(ecc), 1e-6)

		ecc, err = EccentricityFromAltitudes(c.altitude, c.altitude, c.body)
		assert.Nil(t, err)
		assert.EqualValues(t, 0, ecc)

		energy, err := EnergyFromVelocity(v, 0, c.altitude, c.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, -c.body.Mu/(2*r), float64(energy), 1e-9)

		h, err := MomentumFromVelocity(v, c.altitude, c.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, math.Sqrt(c.body.Mu*r), float64(h), 1e-12)

		h2, err := MomentumFromElements(sma, 0, c.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, float64(h), float64(h2), 1e-9)

		h3, err := MomentumFromEnergy(energy, 0, c.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, float64(h), float64(h3), 1e-9)
	}
}

type ellipticalOrbit struct {
	body     *Body
	altitude float64 // periapsis
	velocity float64 // horizontal, at periapsis
	srh      float64
	apoapsis float64
}

func ellipticalOrbits(t *testing.T) []ellipticalOrbit {
	k, e := kerbin(t), earth(t)

	return []ellipticalOrbit{
		{k, 0, 2.4920724702244101536e+03, 1.4952434821346461773e9, 7.0e+04},
		{k, 0, 2.5176912500879116124e+03, 1.5106147500527470112e9, 1.0e+05},
		{k, 0, 3.1676052523016251143e+03, 1.9005631513809750080e9, 2.86333406e+06},
		{k, 7.0e+04, 2.3208767986006064348e+03, 1.5549874550624063015e9, 1.0e+05},
		{k, 7.0e+04, 2.9720785896382690225e+03, 1.9912926550576403141e9, 2.86333406e+06},
		{k, 1.0e+05, 2.8971987833458042587e+03, 2.0280391483420629501e9, 2.86333406e+06},
		{e, 0, 7.9541790227209166915e+03, 5.0732840347768508911e10, 1.6e+05},
	}
}

func TestEllipticalOrbit(t *testing.T) {
	for _, o := range ellipticalOrbits(t) {
		h, err := MomentumFromVelocity(o.velocity, o.altitude, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, o.srh, float64(h), 1e-12)

		smaAlt, err := SemiMajorAxisFromAltitudes(o.apoapsis, o.altitude, o.body)
		assert.Nil(t, err)

		smaVel, err := SemiMajorAxisFromVelocity(o.velocity, 0, o.altitude, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, float64(smaAlt), float64(smaVel), 1e-9)

		smaRadii, err := SemiMajorAxisFromRadii(o.apoapsis+o.body.Radius, o.altitude+o.body.Radius)
		assert.Nil(t, err)
		assert.EqualValues(t, smaAlt, smaRadii)

		eccAlt, err := EccentricityFromAltitudes(o.apoapsis, o.altitude, o.body)
		assert.Nil(t, err)

		eccRadii, err := EccentricityFromRadii(o.apoapsis+o.body.Radius, o.altitude+o.body.Radius)
		assert.Nil(t, err)
		assert.InDelta(t, float64(eccAlt), float64(eccRadii), 1e-12)

		eccVel, err := EccentricityFromVelocity(o.velocity, 0, o.altitude, o.body)
		assert.Nil(t, err)
		assert.InDelta(t, float64(eccAlt), float64(eccVel), 1e-9)

		energy, err := EnergyFromAltitudes(o.apoapsis, o.altitude, o.body)
		assert.Nil(t, err)

		energyVel, err := EnergyFromVelocity(o.velocity, 0, o.altitude, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, float64(energy), float64(energyVel), 1e-9)

		energySma, err := EnergyFromSemiMajorAxis(smaAlt, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, float64(energy), float64(energySma), 1e-12)

		energyH, err := EnergyFromMomentum(eccAlt, h, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, float64(energy), float64(energyH), 1e-9)

		sma, err := SemiMajorAxisFromEnergy(energy, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, float64(smaAlt), float64(sma), 1e-12)

		sma, err = SemiMajorAxisFromMomentum(h, eccAlt, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, float64(smaAlt), float64(sma), 1e-9)

		hElem, err := MomentumFromElements(smaAlt, eccAlt, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, o.srh, float64(hElem), 1e-9)

		hEnergy, err := MomentumFromEnergy(energy, eccAlt, o.body)
		assert.Nil(t, err)
		assert.InEpsilon(t, o.srh, float64(hEnergy), 1e-9)

		ecc, err := EccentricityFromMomentum(smaAlt, h, o.body)
		assert.Nil(t, err)
		assert.InDelta(t, float64(eccAlt), float64(ecc), 1e-6)

		ecc, err = EccentricityFromEnergy(energy, h, o.body)
		assert.Nil(t, err)
		assert.InDelta(t, float64(eccAlt), float64(ecc), 1e-6)
	}
}

func TestApsis(t *testing.T) {
	for _, o := range ellipticalOrbits(t) {
		sma, _ := SemiMajorAxisFromAltitudes(o.apoapsis, o.altitude, o.body)
		ecc, _ := EccentricityFromAltitudes(o.apoapsis, o.altitude, o.body)

		pe := Periapsis(sma, ecc, o.body)
		ap := Apoapsis(sma, ecc, o.body)

		assert.InDelta(t, o.altitude+o.body.Radius, pe.Radius(), 1e-6)
		assert.InDelta(t, o.apoapsis+o.body.Radius, ap.Radius(), 1e-6)
		assert.InDelta(t, o.altitude, pe.Altitude(), 1e-6)
		assert.InDelta(t, o.apoapsis, ap.Altitude(), 1e-6)
	}

	assert.True(t, math.IsNaN(Apoapsis(1, 0, nil).Altitude()))
	assert.EqualValues(t, 1, Apoapsis(1, 0, nil).Radius())
}

func TestUnboundOrbit(t *testing.T) {
	k := kerbin(t)

	_, err := SemiMajorAxisFromEnergy(10, k)
	assert.ErrorIs(t, err, ErrNotBound)

	_, err = SemiMajorAxisFromMomentum(1e9, 1, k)
	assert.ErrorIs(t, err, ErrNotBound)

	escape := math.Sqrt(2 * k.Mu / k.Radius)
	_, err = SemiMajorAxisFromVelocity(escape*1.01, 0, 0, k)
	assert.ErrorIs(t, err, ErrNotBound)

	energy, err := EnergyFromVelocity(escape*1.01, 0, 0, k)
	assert.Nil(t, err)
	assert.Greater(t, float64(energy), 0.0)
}

func TestInvalidElements(t *testing.T) {
	k := kerbin(t)

	_, err := SemiMajorAxisFromRadii(1, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EccentricityFromRadii(1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SemiMajorAxisFromAltitudes(1, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidBody)

	_, err = EnergyFromSemiMajorAxis(-1, k)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EnergyFromVelocity(math.NaN(), 0, 0, k)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = MomentumFromVelocity(100, -1, k)
	assert.ErrorIs(t, err, ErrInvalidAltitude)

	_, err = EnergyFromMomentum(0, 0, k)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
