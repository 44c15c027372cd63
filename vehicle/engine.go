package vehicle

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchrysaor/curve"
	"github.com/sgostarter/libchrysaor/physics"
)

// Engine looks up thrust [N] and specific impulse [s] by ambient pressure [Pa].
type Engine struct {
	logger l.Wrapper

	thrust curve.Evaluator
	isp    curve.Evaluator
}

func NewEngine(thrust, isp curve.Evaluator, logger l.Wrapper) (*Engine, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if thrust == nil || thrust.Size() == 0 {
		return nil, fmt.Errorf("%w: thrust curve", ErrNoData)
	}

	if isp == nil || isp.Size() == 0 {
		return nil, fmt.Errorf("%w: isp curve", ErrNoData)
	}

	return &Engine{
		logger: logger.WithFields(l.StringField(l.ClsKey, "engine")),
		thrust: thrust,
		isp:    isp,
	}, nil
}

// NewVacuumEngine builds an engine whose performance does not depend on pressure.
func NewVacuumEngine(thrust0, isp0 float64, logger l.Wrapper) (*Engine, error) {
	return NewEngine(
		curve.NewLinearCurve(curve.LinearPoint{X: 0, Y: thrust0}),
		curve.NewLinearCurve(curve.LinearPoint{X: 0, Y: isp0}),
		logger,
	)
}

func checkPressure(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPressure, p)
	}

	return nil
}

func (e *Engine) Thrust(p float64) (float64, error) {
	if err := checkPressure(p); err != nil {
		return 0, err
	}

	return e.thrust.At(p), nil
}

func (e *Engine) Isp(p float64) (float64, error) {
	if err := checkPressure(p); err != nil {
		return 0, err
	}

	return e.isp.At(p), nil
}

// ExhaustVelocity is the effective exhaust velocity isp*g0 [m/s].
func (e *Engine) ExhaustVelocity(p float64) (ve float64, err error) {
	isp, err := e.Isp(p)
	if err != nil {
		return
	}

	ve = isp * physics.G0

	return
}

// MassFlow is the propellant consumption thrust/(isp*g0) [kg/s].
func (e *Engine) MassFlow(p float64) (mdot float64, err error) {
	thrust, err := e.Thrust(p)
	if err != nil {
		return
	}

	ve, err := e.ExhaustVelocity(p)
	if err != nil {
		return
	}

	if ve == 0 {
		err = fmt.Errorf("%w: isp is zero at %v Pa", ErrDivideByZero, p)

		e.logger.WithFields(l.ErrorField(err)).Error("mass flow undefined")

		return
	}

	mdot = thrust / ve

	return
}
