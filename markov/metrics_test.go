package markov

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Recorded(t *testing.T) {
	c, err := NewFromRows([][]float64{
		{0, 0},
		{1, 0},
	}, []string{"A", "B"})
	require.NoError(t, err)
	m := defaultMetrics

	sampled := testutil.ToFloat64(m.transitions)
	missing := testutil.ToFloat64(m.errors.WithLabelValues(reasonStateNotFound))
	dead := testutil.ToFloat64(m.errors.WithLabelValues(reasonNoOutgoing))
	searches := testutil.ToFloat64(m.searches)

	_, err = c.NextState(NewRand(1), "A")
	require.NoError(t, err)
	_, err = c.NextState(nil, "Z")
	require.ErrorIs(t, err, ErrStateNotFound)
	_, err = c.NextState(nil, "B")
	require.ErrorIs(t, err, ErrNoOutgoingTransitions)
	c.IsAccessible("A", "B")

	require.Equal(t, sampled+1, testutil.ToFloat64(m.transitions))
	require.Equal(t, missing+1, testutil.ToFloat64(m.errors.WithLabelValues(reasonStateNotFound)))
	require.Equal(t, dead+1, testutil.ToFloat64(m.errors.WithLabelValues(reasonNoOutgoing)))
	require.Equal(t, searches+1, testutil.ToFloat64(m.searches))
}

func TestMetrics_Disabled(t *testing.T) {
	c, err := NewFromRows([][]float64{{1}}, []string{"A"}, WithMetrics(false))
	require.NoError(t, err)
	require.Nil(t, c.opts.metrics)

	sampled := testutil.ToFloat64(defaultMetrics.transitions)
	searches := testutil.ToFloat64(defaultMetrics.searches)

	_, err = c.GenerateStates(NewRand(1), "A", 10)
	require.NoError(t, err)
	require.True(t, c.IsIrreducible())

	require.Equal(t, sampled, testutil.ToFloat64(defaultMetrics.transitions))
	require.Equal(t, searches, testutil.ToFloat64(defaultMetrics.searches))
}

// TestMetrics_Registerer checks that chains sharing a private registry share
// counters, and that the default counters are left untouched.
func TestMetrics_Registerer(t *testing.T) {
	reg := prometheus.NewRegistry()
	rows := [][]float64{{1}}

	var a, b *Chain
	require.NotPanics(t, func() {
		var err error
		a, err = NewFromRows(rows, []string{"A"}, WithRegisterer(reg))
		require.NoError(t, err)
		b, err = NewFromRows(rows, []string{"A"}, WithRegisterer(reg))
		require.NoError(t, err)
	})
	require.Same(t, a.opts.metrics.transitions, b.opts.metrics.transitions)

	before := testutil.ToFloat64(defaultMetrics.transitions)

	_, err := a.GenerateStates(NewRand(1), "A", 3)
	require.NoError(t, err)
	_, err = b.GenerateStates(NewRand(2), "A", 4)
	require.NoError(t, err)

	require.Equal(t, 7.0, testutil.ToFloat64(a.opts.metrics.transitions))
	require.Equal(t, before, testutil.ToFloat64(defaultMetrics.transitions))

	n, err := testutil.GatherAndCount(reg, "lvmarkov_transitions_sampled_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

// TestMetrics_RegisterConflict checks that a non-duplicate registration
// error still panics.
func TestMetrics_RegisterConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "lvmarkov",
		Name:      "transitions_sampled_total",
		Help:      "Conflicting help text.",
	}))

	require.Panics(t, func() { newMetrics(reg) })
}
