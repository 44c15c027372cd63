package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchrysaor/atmosphere"
	"github.com/sgostarter/libchrysaor/curve"
	"github.com/sgostarter/libchrysaor/orbit"
	"github.com/sgostarter/libchrysaor/vehicle"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "CHRYSAOR"

var (
	ErrBadCell   = errors.New("bad cell")
	ErrBadEnv    = errors.New("bad environment")
	ErrNoProfile = errors.New("no profile")
)

// Config is a loaded profile plus the settings used to build curves from it.
type Config struct {
	Profile

	CacheTTL        time.Duration
	CacheEnabled    bool
	DuplicatePolicy curve.DuplicatePolicy

	logger l.Wrapper
}

// LoadEnv reads the CHRYSAOR_* environment.
func LoadEnv() (env Env, err error) {
	err = envconfig.Process(EnvPrefix, &env)

	return
}

// Load reads the profile named by the environment.
func Load(logger l.Wrapper) (*Config, error) {
	env, err := LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnv, err)
	}

	return LoadFile(env.Config, env, logger)
}

func LoadFile(fileName string, env Env, logger l.Wrapper) (*Config, error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	return Parse(d, env, logger)
}

func Parse(d []byte, env Env, logger l.Wrapper) (*Config, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "config"))

	cfg := &Config{
		logger: logger,
	}

	if err := yaml.Unmarshal(d, &cfg.Profile); err != nil {
		return nil, err
	}

	policy, ok := curve.ParseDuplicatePolicy(env.DuplicatePolicy)
	if !ok {
		return nil, fmt.Errorf("%w: duplicate policy %q", ErrBadEnv, env.DuplicatePolicy)
	}

	cfg.DuplicatePolicy = policy

	if env.CacheTTL != "" {
		ttl, err := cast.ToDurationE(env.CacheTTL)
		if err != nil || ttl < 0 {
			return nil, fmt.Errorf("%w: cache ttl %q", ErrBadEnv, env.CacheTTL)
		}

		cfg.CacheTTL = ttl
		cfg.CacheEnabled = true
	}

	logger.WithFields(l.IntField("bodies", len(cfg.Bodies)), l.IntField("engines", len(cfg.Engines)),
		l.IntField("stages", len(cfg.Stages))).Debug("profile loaded")

	return cfg, nil
}

// Rows converts table cells to numbers; ints, floats and numeric strings are
// accepted, booleans are not.
func (t Table) Rows() (rows [][]float64, err error) {
	rows = make([][]float64, 0, len(t.Points))

	for idx, point := range t.Points {
		row := make([]float64, 0, len(point))

		for _, cell := range point {
			// cast maps true/false to 1/0
			if _, ok := cell.(bool); ok {
				err = fmt.Errorf("%w: row %d: boolean %v", ErrBadCell, idx, cell)

				return
			}

			v, e := cast.ToFloat64E(cell)
			if e != nil {
				err = fmt.Errorf("%w: row %d: %v", ErrBadCell, idx, e)

				return
			}

			row = append(row, v)
		}

		if floats.HasNaN(row) {
			err = fmt.Errorf("%w: row %d has NaN", ErrBadCell, idx)

			return
		}

		rows = append(rows, row)
	}

	return
}

func (cfg *Config) Curve(t Table) (e curve.Evaluator, err error) {
	kind, err := curve.ParseKind(t.Interpolation)
	if err != nil {
		return
	}

	rows, err := t.Rows()
	if err != nil {
		return
	}

	e, err = curve.Build(kind, rows, curve.DuplicatePolicyOption(cfg.DuplicatePolicy), curve.LoggerOption(cfg.logger))
	if err != nil {
		return
	}

	if cfg.CacheEnabled {
		e = curve.NewCachedCurve(e, cfg.CacheTTL)
	}

	return
}

func notFound(what, name string) error {
	return fmt.Errorf("%s %s: %w", what, name, commerr.ErrNotFound)
}

func (cfg *Config) Atmosphere(body string) (*atmosphere.Atmosphere, error) {
	bc, ok := cfg.Bodies[body]
	if !ok {
		return nil, notFound("body", body)
	}

	if bc.Atmosphere == nil {
		return nil, fmt.Errorf("body %s: %w", body, atmosphere.ErrNoData)
	}

	pressure, err := cfg.Curve(bc.Atmosphere.Pressure)
	if err != nil {
		return nil, fmt.Errorf("body %s pressure: %w", body, err)
	}

	temperature, err := cfg.Curve(bc.Atmosphere.Temperature)
	if err != nil {
		return nil, fmt.Errorf("body %s temperature: %w", body, err)
	}

	return atmosphere.NewAtmosphere(pressure, temperature, cfg.logger)
}

func (cfg *Config) Body(name string) (*orbit.Body, error) {
	bc, ok := cfg.Bodies[name]
	if !ok {
		return nil, notFound("body", name)
	}

	var atm *atmosphere.Atmosphere

	if bc.Atmosphere != nil {
		var err error

		atm, err = cfg.Atmosphere(name)
		if err != nil {
			return nil, err
		}
	}

	return orbit.NewBody(bc.Mu, bc.Radius, bc.RotationPeriod, atm)
}

func (cfg *Config) Engine(name string) (*vehicle.Engine, error) {
	ec, ok := cfg.Engines[name]
	if !ok {
		return nil, notFound("engine", name)
	}

	thrust, err := cfg.Curve(ec.Thrust)
	if err != nil {
		return nil, fmt.Errorf("engine %s thrust: %w", name, err)
	}

	isp, err := cfg.Curve(ec.Isp)
	if err != nil {
		return nil, fmt.Errorf("engine %s isp: %w", name, err)
	}

	return vehicle.NewEngine(thrust, isp, cfg.logger)
}

func (cfg *Config) Stage(name string) (*vehicle.Stage, error) {
	sc, ok := cfg.Stages[name]
	if !ok {
		return nil, notFound("stage", name)
	}

	engine, err := cfg.Engine(sc.Engine)
	if err != nil {
		return nil, err
	}

	return vehicle.NewStage(engine, sc.MassTotal, sc.FuelMass, cfg.logger)
}

func (cfg *Config) LaunchSite(name string) (*orbit.LaunchSite, error) {
	lc, ok := cfg.LaunchSites[name]
	if !ok {
		return nil, notFound("launch site", name)
	}

	body, err := cfg.Body(lc.Body)
	if err != nil {
		return nil, err
	}

	return orbit.NewLaunchSite(body, lc.Latitude, lc.Longitude, lc.Altitude)
}
