package markov

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Sampling error reasons, used as the "reason" label value.
const (
	reasonStateNotFound = "state_not_found"
	reasonNoOutgoing    = "no_outgoing_transitions"
)

// metrics is one set of chain counters bound to a registerer.
type metrics struct {
	transitions prometheus.Counter
	errors      *prometheus.CounterVec
	searches    prometheus.Counter
}

// defaultMetrics is registered with prometheus.DefaultRegisterer on package
// init and shared by every chain built without WithRegisterer.
var defaultMetrics = newMetrics(prometheus.DefaultRegisterer)

// newMetrics builds the counters and registers them with reg. When reg
// already holds a collector with the same descriptor, that collector is
// reused, so chains sharing a registry also share counts.
func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		transitions: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lvmarkov",
			Name:      "transitions_sampled_total",
			Help:      "Number of successor states drawn by the sampler.",
		})),
		errors: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvmarkov",
			Name:      "sampling_errors_total",
			Help:      "Number of sampling steps that failed, by reason.",
		}, []string{"reason"})),
		searches: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lvmarkov",
			Name:      "reachability_searches_total",
			Help:      "Number of breadth-first reachability searches run.",
		})),
	}
}

// register adds c to reg and returns the collector that reg actually holds.
// Any registration error other than a duplicate panics, as promauto does.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}

func (c *Chain) recordTransition() {
	if m := c.opts.metrics; m != nil {
		m.transitions.Inc()
	}
}

func (c *Chain) recordSamplingError(reason string) {
	if m := c.opts.metrics; m != nil {
		m.errors.WithLabelValues(reason).Inc()
	}
}

func (c *Chain) recordSearch() {
	if m := c.opts.metrics; m != nil {
		m.searches.Inc()
	}
}
