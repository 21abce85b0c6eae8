// Package markov models discrete-time, finite-state Markov chains: it stores
// a transition weight matrix, samples successor states, generates
// trajectories, and classifies the chain through reachability over its
// structural graph.
//
// What
//
//   - Chain: immutable state index (label ↔ dense index) plus an owned
//     matrix.Dense of non-negative weights. Column i holds the out-weights of
//     state i, so T[j][i] is the weight of i→j.
//   - Sampling: NextState draws a successor proportionally to the column
//     weights; GenerateStates and Walk repeat the draw to produce a
//     trajectory.
//   - Structure: Neighbors, IsAccessible, Reachable, IsIrreducible,
//     CommunicatingClasses, IsClosed, IsAbsorbing and IsRecurrent answer
//     questions about the structural graph, whose edges are exactly the
//     strictly positive weights.
//   - Definitions: Definition loads a chain from YAML.
//
// Determinism
//
//	Sampling takes an explicit *rand.Rand (math/rand/v2). Pass NewRand(seed)
//	for reproducible trajectories, or nil to use the package-level source.
//	Structural queries iterate states in index order and are fully
//	deterministic.
//
// Concurrency
//
//	A Chain is never mutated after New, so any number of goroutines may
//	query it. A *rand.Rand is not safe for concurrent use: give each
//	goroutine its own generator, or pass nil.
//
// Complexity (N = states, E = positive weights)
//
//   - NextState: O(N)
//   - GenerateStates(n): O(n·N)
//   - IsAccessible / Reachable: O(N^2) with dense column reads
//   - IsIrreducible: O(N^2) searches, O(N^4) worst case; intended for small N
//   - CommunicatingClasses: O(N^2)
//
// Metrics
//
//	Chains count sampled transitions, sampling errors and reachability
//	searches with Prometheus counters. By default these are registered once
//	with prometheus.DefaultRegisterer when the package is initialised. Use
//	WithRegisterer to record on a private registry, or WithMetrics(false) to
//	turn recording off.
//
// Usage
//
//	chain, err := markov.NewFromRows([][]float64{
//	    {0.5, 0.5, 0.0, 0.0},
//	    {0.25, 0.0, 0.5, 0.25},
//	    {0.25, 0.5, 0.0, 0.25},
//	    {0.0, 0.0, 0.5, 0.5},
//	}, []string{"A", "B", "C", "D"})
//	if err != nil {
//	    // ErrInvalidChainDefinition
//	}
//	next, err := chain.NextState(markov.NewRand(42), "A")
//	irreducible := chain.IsIrreducible()
//
// Errors
//
//   - ErrInvalidChainDefinition  malformed matrix or labels at construction.
//   - ErrStateNotFound           label absent from the state index.
//   - ErrNoOutgoingTransitions   sampled state has an all-zero column.
//   - ErrInvalidLength           negative trajectory length.
//   - ErrNilVisitor              Walk called with a nil callback.
package markov
