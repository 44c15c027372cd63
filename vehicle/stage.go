package vehicle

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchrysaor/physics"
)

// Stage is a single engine with its wet mass and the burnable part of it.
type Stage struct {
	logger l.Wrapper

	Engine    *Engine
	MassTotal float64 // [kg]
	FuelMass  float64 // [kg]
}

func NewStage(engine *Engine, massTotal, fuelMass float64, logger l.Wrapper) (*Stage, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if engine == nil {
		return nil, fmt.Errorf("%w: engine", ErrNoData)
	}

	for _, m := range []float64{massTotal, fuelMass} {
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMass, m)
		}
	}

	if fuelMass > massTotal {
		return nil, fmt.Errorf("%w: fuel %v exceeds total %v", ErrInvalidMass, fuelMass, massTotal)
	}

	return &Stage{
		logger:    logger.WithFields(l.StringField(l.ClsKey, "stage")),
		Engine:    engine,
		MassTotal: massTotal,
		FuelMass:  fuelMass,
	}, nil
}

// MaxBurnTime is how long the stage can fire at pressure p before running dry [s].
func (s *Stage) MaxBurnTime(p float64) (t float64, err error) {
	thrust, err := s.Engine.Thrust(p)
	if err != nil {
		return
	}

	ve, err := s.Engine.ExhaustVelocity(p)
	if err != nil {
		return
	}

	if thrust == 0 {
		err = fmt.Errorf("%w: thrust is zero at %v Pa", ErrDivideByZero, p)

		s.logger.WithFields(l.ErrorField(err)).Error("burn time undefined")

		return
	}

	t = s.FuelMass * ve / thrust

	return
}

// TWR is the thrust to weight ratio against standard gravity.
func (s *Stage) TWR(p float64) (twr float64, err error) {
	thrust, err := s.Engine.Thrust(p)
	if err != nil {
		return
	}

	if s.MassTotal == 0 {
		err = fmt.Errorf("%w: stage mass is zero", ErrDivideByZero)

		s.logger.WithFields(l.ErrorField(err)).Error("thrust to weight undefined")

		return
	}

	twr = thrust / (s.MassTotal * physics.G0)

	return
}
