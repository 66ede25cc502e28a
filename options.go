package seqdb

import "log/slog"

type options struct {
	locations          LocationRange
	sizer              primeSizer
	growThreshold      float64
	tombstoneThreshold float64
	logger             *Logger
	observer           MetricsObserver
}

// Option configures New.
type Option func(*options)

// WithLocationRange sets the inclusive range of accepted location IDs.
// lo must be at least 1 so that location 0 never names a real record.
func WithLocationRange(lo, hi int) Option {
	return func(o *options) {
		o.locations = LocationRange{Min: lo, Max: hi}
	}
}

// WithCapacityRange sets the bounds for every table the store allocates.
// Both bounds must be prime.
func WithCapacityRange(lo, hi int) Option {
	return func(o *options) {
		o.sizer = primeSizer{min: lo, max: hi}
	}
}

// WithGrowThreshold sets the load factor above which an insert starts a
// rehash. Must lie in (0, 1).
func WithGrowThreshold(f float64) Option {
	return func(o *options) {
		o.growThreshold = f
	}
}

// WithTombstoneThreshold sets the tombstone ratio above which a remove
// starts a rehash. Must lie in (0, 1].
func WithTombstoneThreshold(f float64) Option {
	return func(o *options) {
		o.tombstoneThreshold = f
	}
}

// WithLogger configures the logger used for rehash lifecycle events.
//
// Example:
//
//	logger := seqdb.NewJSONLogger(slog.LevelDebug)
//	s, _ := seqdb.New(101, nil, seqdb.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsObserver configures an observer for operational events.
// Pass nil to disable.
func WithMetricsObserver(obs MetricsObserver) Option {
	return func(o *options) {
		if obs == nil {
			obs = NoopMetricsObserver{}
		}
		o.observer = obs
	}
}

func defaultOptions() options {
	return options{
		locations:          DefaultLocations,
		sizer:              defaultSizer,
		growThreshold:      0.5,
		tombstoneThreshold: 0.8,
		logger:             NoopLogger(),
		observer:           NoopMetricsObserver{},
	}
}

func (o *options) validate() error {
	if !o.locations.valid() {
		return &ConfigError{Field: "location range", Value: o.locations}
	}
	if !o.sizer.valid() {
		return &ConfigError{Field: "capacity range", Value: [2]int{o.sizer.min, o.sizer.max}}
	}
	if o.growThreshold <= 0 || o.growThreshold >= 1 {
		return &ConfigError{Field: "grow threshold", Value: o.growThreshold}
	}
	if o.tombstoneThreshold <= 0 || o.tombstoneThreshold > 1 {
		return &ConfigError{Field: "tombstone threshold", Value: o.tombstoneThreshold}
	}
	return nil
}
