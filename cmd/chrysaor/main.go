package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchrysaor/atmosphere"
	"github.com/sgostarter/libchrysaor/config"
	"github.com/sgostarter/libchrysaor/vehicle"
)

func main() {
	var (
		configFile string
		bodyName   string
		engineName string
		maxAlt     float64
		altStep    float64
		pStep      float64
	)

	flag.StringVar(&configFile, "config", "", "profile file, overrides CHRYSAOR_CONFIG")
	flag.StringVar(&bodyName, "body", "", "print the atmosphere table of this body")
	flag.StringVar(&engineName, "engine", "", "print the performance table of this engine")
	flag.Float64Var(&maxAlt, "max-alt", 100000, "highest altitude of the atmosphere table [m]")
	flag.Float64Var(&altStep, "alt-step", 10000, "altitude step [m]")
	flag.Float64Var(&pStep, "p-step", 10132.5, "pressure step of the engine table [Pa]")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	env, err := config.LoadEnv()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("read environment failed")
	}

	if configFile != "" {
		env.Config = configFile
	}

	cfg, err := config.LoadFile(env.Config, env, logger)
	if err != nil {
		logger.WithFields(l.StringField("file", env.Config), l.ErrorField(err)).Fatal("load profile failed")
	}

	if bodyName == "" && engineName == "" {
		flag.Usage()
		os.Exit(2)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	if bodyName != "" {
		atm, err := cfg.Atmosphere(bodyName)
		if err != nil {
			logger.WithFields(l.StringField("body", bodyName), l.ErrorField(err)).Fatal("build atmosphere failed")
		}

		if err = printAtmosphere(w, atm, maxAlt, altStep); err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("print atmosphere failed")
		}
	}

	if engineName != "" {
		engine, err := cfg.Engine(engineName)
		if err != nil {
			logger.WithFields(l.StringField("engine", engineName), l.ErrorField(err)).Fatal("build engine failed")
		}

		if err = printEngine(w, engine, pStep); err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("print engine failed")
		}
	}
}

func printAtmosphere(w *tabwriter.Writer, atm *atmosphere.Atmosphere, maxAlt, step float64) error {
	if step <= 0 {
		return fmt.Errorf("altitude step must be positive, got %v", step)
	}

	fmt.Fprintln(w, "alt [m]\tp [Pa]\tT [K]\trho [kg/m3]\t")

	for alt := 0.0; alt <= maxAlt; alt += step {
		p, err := atm.Pressure(alt)
		if err != nil {
			return err
		}

		T, err := atm.Temperature(alt)
		if err != nil {
			return err
		}

		rho, err := atm.Density(alt)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%.0f\t%.3f\t%.2f\t%.6f\t\n", alt, p, T, rho)
	}

	fmt.Fprintln(w)

	return w.Flush()
}

// printEngine walks from vacuum up to sea level pressure.
func printEngine(w *tabwriter.Writer, engine *vehicle.Engine, step float64) error {
	if step <= 0 {
		return fmt.Errorf("pressure step must be positive, got %v", step)
	}

	fmt.Fprintln(w, "p [Pa]\tthrust [N]\tisp [s]\tve [m/s]\tmdot [kg/s]\t")

	for p := 0.0; p <= 101325; p += step {
		thrust, err := engine.Thrust(p)
		if err != nil {
			return err
		}

		isp, err := engine.Isp(p)
		if err != nil {
			return err
		}

		ve, err := engine.ExhaustVelocity(p)
		if err != nil {
			return err
		}

		mdot, err := engine.MassFlow(p)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%.1f\t%.0f\t%.1f\t%.1f\t%.2f\t\n", p, thrust, isp, ve, mdot)
	}

	fmt.Fprintln(w)

	return w.Flush()
}
