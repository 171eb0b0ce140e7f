package vector

import (
	"log/slog"

	"github.com/hupe1980/vector/internal/storage"
	"github.com/hupe1980/vector/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
}

// Option configures a vector at construction time.
//
// Options travel with the vector: Clone and Take hand them to the new
// vector, Swap and MoveAssign exchange them together with the storage.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for allocations,
// relocations and rollbacks.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vector.BasicMetricsCollector{}
//	v := vector.New[int](vector.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Relocations: %d, Avg latency: %dns\n", stats.RelocationCount, stats.RelocationAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging of reallocations and rollbacks.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vector.NewJSONLogger(slog.LevelDebug)
//	v := vector.New[int](vector.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = noopLogger
		}
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

// WithResourceController charges every storage block of the vector against
// rc. When rc has a memory limit, operations that need a block beyond it
// fail with ErrAllocation and leave the vector unchanged.
//
// Call Free when done with a vector that has a controller, otherwise its
// block stays charged.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

func (o *options) acquirer() storage.MemoryAcquirer {
	if o.controller == nil {
		return nil
	}
	return o.controller
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           noopLogger,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
