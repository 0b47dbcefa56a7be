// Package recovery wraps fallible operations with panic recovery and
// structured logging, converting a panic into a returned error instead
// of letting it unwind past the caller.
package recovery

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// MetricsCollector receives a notification every time Guard recovers a
// panic. Implementations are expected to be safe for concurrent use.
type MetricsCollector interface {
	RecordPanic(location string, panicValue interface{})
}

// Recoverer centralizes panic recovery for a single codec instance. A
// header-compression codec runs single-threaded against untrusted wire
// input (malformed integers, truncated strings); Guard turns a bug in
// the primitive codecs into an error the caller can reject the
// connection on, rather than a crash.
type Recoverer struct {
	logger  *zap.Logger
	metrics MetricsCollector
}

// NewRecoverer builds a Recoverer. metrics may be nil.
func NewRecoverer(logger *zap.Logger, metrics MetricsCollector) *Recoverer {
	return &Recoverer{logger: logger, metrics: metrics}
}

// Guard runs fn and recovers any panic it raises, logging it at error
// level with the stack trace and reporting it to metrics if configured.
// A recovered panic is returned as an error; result is the zero value
// of T in that case.
func Guard[T any](r *Recoverer, location string, fn func() (T, error)) (result T, err error) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("panic recovered",
				zap.String("location", location),
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()),
			)
			if r.metrics != nil {
				r.metrics.RecordPanic(location, p)
			}
			err = fmt.Errorf("recovered from panic in %s: %v", location, p)
		}
	}()

	return fn()
}
