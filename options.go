package longset

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	// DefaultCapacity is the number of buckets of a new set.
	DefaultCapacity = 16

	// DefaultLoadFactor is the ratio of keys to buckets above which a set grows.
	DefaultLoadFactor float32 = 1.3
)

type options struct {
	capacity         int
	loadFactor       float32
	hasher           Hasher
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures New and NewSync.
type Option func(*options)

// WithCapacity sets the initial number of buckets. It must be positive.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithLoadFactor sets the load factor. The set grows once it holds more than
// capacity*loadFactor keys (rounded half up). It must be positive.
//
// Values above 1 trade longer chains for fewer buckets; the default of 1.3
// keeps most chains at one or two nodes.
func WithLoadFactor(loadFactor float32) Option {
	return func(o *options) {
		o.loadFactor = loadFactor
	}
}

// WithHasher replaces the default Fold hash.
//
// Fold is the fastest choice for keys that are spread over their low bits
// (counters, timestamps). For keys an adversary can pick, or keys that only
// differ in a few high bits, use XXHash or Murmur3:
//
//	s, _ := longset.New(longset.WithHasher(longset.XXHash))
func WithHasher(h Hasher) Option {
	return func(o *options) {
		o.hasher = h
	}
}

// WithMetricsCollector configures a metrics collector for set operations.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &longset.BasicMetricsCollector{}
//	s, _ := longset.New(longset.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Rehashes: %d, Avg: %dns\n", stats.RehashCount, stats.RehashAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		capacity:         DefaultCapacity,
		loadFactor:       DefaultLoadFactor,
		hasher:           Fold,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	if o.capacity <= 0 {
		return o, fmt.Errorf("%w: %d", ErrInvalidCapacity, o.capacity)
	}
	if err := validateLoadFactor(o.loadFactor); err != nil {
		return o, err
	}
	if o.hasher == nil {
		return o, ErrNilHasher
	}
	return o, nil
}

func validateLoadFactor(f float32) error {
	// NaN fails the comparison.
	if !(f > 0) || math.IsInf(float64(f), 1) {
		return fmt.Errorf("%w: %v", ErrInvalidLoadFactor, f)
	}
	return nil
}
