package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchrysaor/atmosphere"
	"github.com/sgostarter/libchrysaor/curve"
	"github.com/sgostarter/libchrysaor/vehicle"
	"github.com/sgostarter/libeasygo/ptl"
)

var ErrNoStorage = errors.New("no storage")

// Catalog turns stored tables into ready to use curves and the collaborators
// built on them.
type Catalog struct {
	storage Storage
	opts    *Options
	logger  l.Wrapper

	lock        sync.RWMutex
	curves      map[string]curve.Evaluator
	generations map[string]uint64 // bumped on every Add and Remove of a name
}

func New(storage Storage, opts ...Option) (*Catalog, error) {
	o := optionNew(opts...)

	if storage == nil {
		return nil, ErrNoStorage
	}

	return &Catalog{
		storage:     storage,
		opts:        o,
		logger:      o.logger.WithFields(l.StringField(l.ClsKey, "catalog")),
		curves:      make(map[string]curve.Evaluator),
		generations: make(map[string]uint64),
	}, nil
}

func (c *Catalog) curveOptions() []curve.Option {
	return []curve.Option{
		curve.DuplicatePolicyOption(c.opts.duplicatePolicy),
		curve.LoggerOption(c.logger),
	}
}

// Add checks that rows build a curve of kind before persisting them.
func (c *Catalog) Add(name string, kind curve.Kind, rows [][]float64) (id uint64, err error) {
	e, err := curve.Build(kind, rows, c.curveOptions()...)
	if err != nil {
		return
	}

	if e.Size() == 0 {
		err = fmt.Errorf("table %s: %w", name, curve.ErrEmptyCurve)

		return
	}

	id, err = c.storage.AddTable(name, kind, rows)
	if err != nil {
		c.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Error("add table failed")

		return
	}

	c.invalidate(name)

	c.logger.WithFields(l.StringField("name", name), l.StringField("kind", string(kind))).Debug("table added")

	return
}

func (c *Catalog) invalidate(name string) {
	c.lock.Lock()
	c.generations[name]++
	delete(c.curves, name)
	c.lock.Unlock()
}

func (c *Catalog) Remove(name string) error {
	err := c.storage.RemoveTable(name)

	c.invalidate(name)

	return err
}

// Names lists stored tables in name order.
func (c *Catalog) Names() (names []string, err error) {
	tables, err := c.storage.ListTables()
	if err != nil {
		return
	}

	names = make([]string, 0, len(tables))
	for _, table := range tables {
		names = append(names, table.Name)
	}

	sort.Strings(names)

	return
}

// Curve builds the named table once and reuses it afterwards. A build that
// raced with Add or Remove of the same name is discarded and redone.
func (c *Catalog) Curve(name string) (curve.Evaluator, error) {
	for {
		c.lock.RLock()
		cached, ok := c.curves[name]
		generation := c.generations[name]
		c.lock.RUnlock()

		if ok {
			return cached, nil
		}

		e, err := c.build(name)
		if err != nil {
			return nil, err
		}

		c.lock.Lock()

		if c.generations[name] != generation {
			c.lock.Unlock()

			c.logger.WithFields(l.StringField("name", name)).Debug("table changed while building, retry")

			continue
		}

		if cached, ok = c.curves[name]; ok {
			e = cached
		} else {
			c.curves[name] = e
		}

		c.lock.Unlock()

		return e, nil
	}
}

func (c *Catalog) build(name string) (e curve.Evaluator, err error) {
	table, err := c.storage.FindTable(name)
	if err != nil {
		if errors.Is(err, commerr.ErrNotFound) {
			err = fmt.Errorf("table %s: %w", name, err)
		}

		return
	}

	e, err = curve.Build(table.Kind, table.Rows, c.curveOptions()...)
	if err != nil {
		c.logger.WithFields(l.StringField("name", name), l.ErrorField(err)).Error("stored table is corrupt")

		err = ptl.NewCodeError(ptl.CodeErrLogic)

		return
	}

	if c.opts.cacheEnabled {
		e = curve.NewCachedCurve(e, c.opts.cacheTTL)
	}

	return
}

func (c *Catalog) Engine(thrustName, ispName string) (*vehicle.Engine, error) {
	thrust, err := c.Curve(thrustName)
	if err != nil {
		return nil, err
	}

	isp, err := c.Curve(ispName)
	if err != nil {
		return nil, err
	}

	return vehicle.NewEngine(thrust, isp, c.logger)
}

func (c *Catalog) Atmosphere(pressureName, temperatureName string) (*atmosphere.Atmosphere, error) {
	pressure, err := c.Curve(pressureName)
	if err != nil {
		return nil, err
	}

	temperature, err := c.Curve(temperatureName)
	if err != nil {
		return nil, err
	}

	return atmosphere.NewAtmosphere(pressure, temperature, c.logger)
}
