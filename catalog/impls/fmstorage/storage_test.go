// nolint
package fmstorage

import (
	"os"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libchrysaor/curve"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/stretchr/testify/assert"
)

const (
	utRoot = "ut-data"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestTableStorage(t *testing.T) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	stg := NewFMTableStorage("", rawfs.NewFSStorage(utRoot))

	rows := [][]float64{{0, 101325}, {32500, 1000}, {80000, 1}}

	id, err := stg.AddTable("earth-pressure", curve.KindLinear, rows)
	assert.Nil(t, err)
	assert.NotZero(t, id)

	_, err = stg.AddTable("earth-pressure", curve.KindLinear, rows)
	assert.ErrorIs(t, err, commerr.ErrExiting)

	rows[0][1] = 0

	table, err := stg.FindTable("earth-pressure")
	assert.Nil(t, err)
	assert.EqualValues(t, id, table.ID)
	assert.EqualValues(t, curve.KindLinear, table.Kind)
	assert.EqualValues(t, [][]float64{{0, 101325}, {32500, 1000}, {80000, 1}}, table.Rows)
	assert.NotZero(t, table.CreatedAt)

	_, err = stg.FindTable("mars-pressure")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	_, err = stg.AddTable("merlin-isp", curve.KindCubic, [][]float64{{0, 453, 0, 0}, {101325, 366, 0, 0}})
	assert.Nil(t, err)

	tables, err := stg.ListTables()
	assert.Nil(t, err)
	assert.Len(t, tables, 2)

	// a fresh instance reads what the first one wrote
	stg2 := NewFMTableStorage("", rawfs.NewFSStorage(utRoot))

	table, err = stg2.FindTable("merlin-isp")
	assert.Nil(t, err)
	assert.EqualValues(t, curve.KindCubic, table.Kind)
	assert.Len(t, table.Rows, 2)

	err = stg2.RemoveTable("merlin-isp")
	assert.Nil(t, err)

	err = stg2.RemoveTable("merlin-isp")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	tables, err = stg2.ListTables()
	assert.Nil(t, err)
	assert.Len(t, tables, 1)
	assert.EqualValues(t, "earth-pressure", tables[0].Name)
}
