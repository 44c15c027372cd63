package redisimpls

import "github.com/go-redis/redis/v8"

var (
	addTableScript = redis.NewScript(`
		local tableKey = KEYS[1]
		local tablesKey = KEYS[2]

		local vName = ARGV[1]
		local vID = ARGV[2]
		local vKind = ARGV[3]
		local vRows = ARGV[4]
		local vCreateAt = ARGV[5]

		if redis.call('EXISTS', tableKey) == 1 then
			return 1
		end

		redis.call("HSET", tableKey, "id", vID, "name", vName, "kind", vKind, "rows", vRows, "create_at", vCreateAt)
		redis.call("ZADD", tablesKey, vCreateAt, vName)

		return 0
	`)

	removeTableScript = redis.NewScript(`
		local tableKey = KEYS[1]
		local tablesKey = KEYS[2]

		local vName = ARGV[1]

		local n = redis.call("DEL", tableKey)
		redis.call("ZREM", tablesKey, vName)

		return n
	`)
)
