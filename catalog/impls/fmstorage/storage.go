package fmstorage

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libchrysaor/catalog"
	"github.com/sgostarter/libchrysaor/curve"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

func NewFMTableStorage(root string, storage stg.FileStorage) catalog.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmTableStorageImpl{
		tableStorage: mwf.NewMemWithFile[map[string]*catalog.Table, mwf.Serial, mwf.Lock](
			make(map[string]*catalog.Table), &mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, "tables.json"), storage),
	}
}

type fmTableStorageImpl struct {
	tableStorage *mwf.MemWithFile[map[string]*catalog.Table, mwf.Serial, mwf.Lock]
}

func cloneTable(table *catalog.Table) *catalog.Table {
	n := *table

	n.Rows = make([][]float64, 0, len(table.Rows))
	for _, row := range table.Rows {
		n.Rows = append(n.Rows, append([]float64(nil), row...))
	}

	return &n
}

func (impl *fmTableStorageImpl) AddTable(name string, kind curve.Kind, rows [][]float64) (id uint64, err error) {
	err = impl.tableStorage.Change(func(oldM map[string]*catalog.Table) (newM map[string]*catalog.Table, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]*catalog.Table)
		}

		if _, ok := newM[name]; ok {
			err = commerr.ErrExiting

			return
		}

		id = snowflake.ID()
		newM[name] = cloneTable(&catalog.Table{
			ID:        id,
			Name:      name,
			Kind:      kind,
			Rows:      rows,
			CreatedAt: time.Now().Unix(),
		})

		return
	})

	return
}

func (impl *fmTableStorageImpl) FindTable(name string) (table *catalog.Table, err error) {
	impl.tableStorage.Read(func(m map[string]*catalog.Table) {
		if t, ok := m[name]; ok {
			table = cloneTable(t)
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmTableStorageImpl) ListTables() (tables []*catalog.Table, err error) {
	impl.tableStorage.Read(func(m map[string]*catalog.Table) {
		tables = make([]*catalog.Table, 0, len(m))
		for _, t := range m {
			tables = append(tables, cloneTable(t))
		}
	})

	return
}

func (impl *fmTableStorageImpl) RemoveTable(name string) error {
	return impl.tableStorage.Change(func(oldM map[string]*catalog.Table) (newM map[string]*catalog.Table, err error) {
		newM = oldM

		if _, ok := newM[name]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, name)

		return
	})
}
