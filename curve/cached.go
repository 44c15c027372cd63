package curve

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cast"
)

// MaxCachedResults bounds a CachedCurve. Keys are exact query values, so a
// sweep over a continuous range never hits twice; once the bound is reached
// the cache is flushed and refilled.
const MaxCachedResults = 4096

// CachedCurve memoises lookups of a wrapped evaluator, keyed by the exact
// query value.
type CachedCurve struct {
	e       Evaluator
	results *cache.Cache
}

// NewCachedCurve caches results for ttl; ttl <= 0 keeps them until the
// MaxCachedResults flush.
func NewCachedCurve(e Evaluator, ttl time.Duration) *CachedCurve {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	cleanup := ttl * 2
	if ttl == cache.NoExpiration {
		cleanup = 0
	}

	return &CachedCurve{
		e:       e,
		results: cache.New(ttl, cleanup),
	}
}

func (c *CachedCurve) At(x float64) float64 {
	key := cast.ToString(x)

	if i, ok := c.results.Get(key); ok {
		// nolint:forcetypeassert
		return i.(float64)
	}

	v := c.e.At(x)

	if c.results.ItemCount() >= MaxCachedResults {
		c.results.Flush()
	}

	c.results.SetDefault(key, v)

	return v
}

func (c *CachedCurve) Size() int {
	return c.e.Size()
}

// Cached reports how many results are currently held.
func (c *CachedCurve) Cached() int {
	return c.results.ItemCount()
}
