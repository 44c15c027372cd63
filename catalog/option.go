package catalog

import (
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchrysaor/curve"
)

type Options struct {
	logger          l.Wrapper
	cacheTTL        time.Duration
	cacheEnabled    bool
	duplicatePolicy curve.DuplicatePolicy
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// CacheOption memoizes lookups on every curve the catalog hands out. A ttl of
// zero disables expiry; each curve still holds at most curve.MaxCachedResults
// results.
func CacheOption(ttl time.Duration) Option {
	return func(o *Options) {
		o.cacheEnabled = true
		o.cacheTTL = ttl
	}
}

func DuplicatePolicyOption(policy curve.DuplicatePolicy) Option {
	return func(o *Options) {
		o.duplicatePolicy = policy
	}
}
