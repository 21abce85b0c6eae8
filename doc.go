// Package lvmarkov is a small toolkit for discrete-time, finite-state Markov
// chains: store a transition weight matrix, simulate trajectories, and
// classify the chain by reachability.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ - dense row-major float64 storage, safe accessors and validators
//	markov/ - Chain: state index, sampler, trajectories, reachability,
//	          communicating classes, YAML definitions
//
// and one command:
//
//	cmd/markovchain - load a YAML definition and report its structure
//
// Quick example, two states that always swap:
//
//	on ──1──▶ off
//	 ▲          │
//	 └────1─────┘
//
// is irreducible: every state reaches every other, itself included.
//
//	go get github.com/katalvlaran/lvmarkov
package lvmarkov
