package catalog

import "github.com/sgostarter/libchrysaor/curve"

// Table is a named set of curve samples, one row per point.
type Table struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Kind      curve.Kind  `json:"kind"`
	Rows      [][]float64 `json:"rows"`
	CreatedAt int64       `json:"created_at"`
}

type Storage interface {
	AddTable(name string, kind curve.Kind, rows [][]float64) (id uint64, err error)
	FindTable(name string) (table *Table, err error)
	ListTables() (tables []*Table, err error)
	RemoveTable(name string) error
}
