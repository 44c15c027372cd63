package curve

import "github.com/sgostarter/i/l"

// DuplicatePolicy decides which sample survives when two inputs share a key.
type DuplicatePolicy int

const (
	DuplicateLastWins DuplicatePolicy = iota
	DuplicateFirstWins
	DuplicateReject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateLastWins:
		return "last"
	case DuplicateFirstWins:
		return "first"
	case DuplicateReject:
		return "reject"
	}

	return "unknown"
}

// ParseDuplicatePolicy accepts the names produced by String.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, bool) {
	switch s {
	case "", "last":
		return DuplicateLastWins, true
	case "first":
		return DuplicateFirstWins, true
	case "reject":
		return DuplicateReject, true
	}

	return DuplicateLastWins, false
}

type Options struct {
	duplicatePolicy DuplicatePolicy
	logger          l.Wrapper
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

func DuplicatePolicyOption(policy DuplicatePolicy) Option {
	return func(o *Options) {
		o.duplicatePolicy = policy
	}
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
