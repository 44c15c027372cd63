package atmosphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchrysaor/curve"
	"github.com/sgostarter/libchrysaor/physics"
	"github.com/spf13/cast"
)

var (
	ErrNoData          = errors.New("no data")
	ErrInvalidAltitude = errors.New("invalid altitude")
	ErrBadSample       = errors.New("bad sample")
)

// Atmosphere derives air properties from tabulated curves keyed by altitude
// above the surface of the parent body [m].
type Atmosphere struct {
	logger l.Wrapper

	pressure    curve.Evaluator // [m] => [Pa]
	temperature curve.Evaluator // [m] => [K]
}

func NewAtmosphere(pressure, temperature curve.Evaluator, logger l.Wrapper) (*Atmosphere, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "atmosphere"))

	if pressure == nil || pressure.Size() == 0 {
		return nil, fmt.Errorf("%w: pressure curve", ErrNoData)
	}

	if temperature == nil || temperature.Size() == 0 {
		return nil, fmt.Errorf("%w: temperature curve", ErrNoData)
	}

	return &Atmosphere{
		logger:      logger,
		pressure:    pressure,
		temperature: temperature,
	}, nil
}

func checkAltitude(altitude float64) error {
	if math.IsNaN(altitude) || math.IsInf(altitude, 0) || altitude < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAltitude, altitude)
	}

	return nil
}

func (atm *Atmosphere) sample(e curve.Evaluator, name string, altitude float64) (v float64, err error) {
	if err = checkAltitude(altitude); err != nil {
		return
	}

	v = e.At(altitude)

	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		err = fmt.Errorf("%w: %s %v at %v", ErrBadSample, name, v, altitude)

		atm.logger.WithFields(l.StringField("curve", name), l.StringField("altitude", cast.ToString(altitude)),
			l.ErrorField(err)).Error("bad curve sample")

		return
	}

	return
}

// Pressure returns the atmospheric pressure at altitude [Pa].
func (atm *Atmosphere) Pressure(altitude float64) (float64, error) {
	return atm.sample(atm.pressure, "pressure", altitude)
}

// Temperature returns the atmospheric temperature at altitude [K].
func (atm *Atmosphere) Temperature(altitude float64) (float64, error) {
	return atm.sample(atm.temperature, "temperature", altitude)
}

// Density returns the air density at altitude [kg/m^3], treating air as an
// ideal gas.
func (atm *Atmosphere) Density(altitude float64) (rho float64, err error) {
	p, err := atm.Pressure(altitude)
	if err != nil {
		return
	}

	T, err := atm.Temperature(altitude)
	if err != nil {
		return
	}

	return physics.IdealGasDensity(p, T)
}
