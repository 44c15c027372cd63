package redisimpls

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchrysaor/catalog"
	"github.com/sgostarter/libchrysaor/curve"
	"github.com/spf13/cast"
)

func NewRedisTableStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) catalog.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "tableStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &tableStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type tableStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *tableStorage) tableKey(name string) string {
	return impl.preKey + ":curve-table:" + name
}

func (impl *tableStorage) tablesKey() string {
	return impl.preKey + ":curve-tables"
}

func (impl *tableStorage) AddTable(name string, kind curve.Kind, rows [][]float64) (id uint64, err error) {
	d, err := json.Marshal(rows)
	if err != nil {
		return
	}

	id = snowflake.ID()

	exists, err := addTableScript.Run(context.Background(), impl.redisCli, []string{impl.tableKey(name), impl.tablesKey()},
		name, id, string(kind), string(d), time.Now().Unix()).Int()
	if err != nil {
		return
	}

	if exists != 0 {
		err = commerr.ErrExiting
	}

	return
}

func (impl *tableStorage) FindTable(name string) (table *catalog.Table, err error) {
	is, err := impl.redisCli.HMGet(context.Background(), impl.tableKey(name), "id", "kind", "rows", "create_at").Result()
	if err != nil {
		return
	}

	if len(is) != 4 || is[0] == nil {
		err = commerr.ErrNotFound

		return
	}

	id, err := cast.ToUint64E(is[0])
	if err != nil {
		return
	}

	kind, err := cast.ToStringE(is[1])
	if err != nil {
		return
	}

	var rows [][]float64

	if err = json.Unmarshal([]byte(cast.ToString(is[2])), &rows); err != nil {
		return
	}

	table = &catalog.Table{
		ID:        id,
		Name:      name,
		Kind:      curve.Kind(kind),
		Rows:      rows,
		CreatedAt: cast.ToInt64(is[3]),
	}

	return
}

func (impl *tableStorage) ListTables() (tables []*catalog.Table, err error) {
	names, err := impl.redisCli.ZRange(context.Background(), impl.tablesKey(), 0, -1).Result()
	if err != nil {
		return
	}

	tables = make([]*catalog.Table, 0, len(names))

	for _, name := range names {
		table, e := impl.FindTable(name)
		if e != nil {
			// removed between ZRANGE and HMGET
			if errors.Is(e, commerr.ErrNotFound) {
				continue
			}

			impl.logger.WithFields(l.ErrorField(e), l.StringField("name", name)).Error("read table failed")

			err = e

			return
		}

		tables = append(tables, table)
	}

	return
}

func (impl *tableStorage) RemoveTable(name string) error {
	n, err := removeTableScript.Run(context.Background(), impl.redisCli, []string{impl.tableKey(name), impl.tablesKey()},
		name).Int()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}
