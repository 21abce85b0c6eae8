// Package markov provides tunable options and error definitions
// for discrete-time finite Markov chains.
package markov

import (
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Sentinel errors for chain construction, sampling and analysis.
var (
	// ErrInvalidChainDefinition is returned when New receives a matrix and
	// label list that cannot describe a chain (nil or non-square matrix,
	// mismatched counts, negative or non-finite weights, duplicate or empty
	// labels).
	ErrInvalidChainDefinition = errors.New("markov: invalid chain definition")

	// ErrStateNotFound is returned when a label is absent from the state index.
	ErrStateNotFound = errors.New("markov: state not found")

	// ErrNoOutgoingTransitions is returned when the sampled state's column
	// holds no strictly positive weight.
	ErrNoOutgoingTransitions = errors.New("markov: state has no outgoing transitions")

	// ErrInvalidLength is returned when a negative trajectory length is requested.
	ErrInvalidLength = errors.New("markov: trajectory length must be >= 0")

	// ErrNilVisitor is returned when Walk receives a nil callback.
	ErrNilVisitor = errors.New("markov: visitor is nil")
)

// Option configures a Chain via functional arguments.
type Option func(*options)

// options holds the per-chain knobs. The zero value is never used directly;
// see defaultOptions.
type options struct {
	// logger receives construction and sampling diagnostics.
	logger *slog.Logger

	// metrics receives counter updates; nil disables recording.
	metrics *metrics
}

// defaultOptions returns the options applied before user Options:
//   - a logger that discards everything
//   - metrics recorded on prometheus.DefaultRegisterer
func defaultOptions() options {
	return options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: defaultMetrics,
	}
}

// WithLogger routes chain diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics enables or disables Prometheus counter updates for the chain.
// Enabling restores the counters on prometheus.DefaultRegisterer.
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.metrics = defaultMetrics
		} else {
			o.metrics = nil
		}
	}
}

// WithRegisterer records the chain's counters on reg instead of
// prometheus.DefaultRegisterer. Chains given the same registerer share one
// set of counters. A nil reg is ignored.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		if reg != nil {
			o.metrics = newMetrics(reg)
		}
	}
}
