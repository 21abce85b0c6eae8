package markov

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// golden is the 64-bit golden-ratio constant used to derive the second PCG word.
const golden = 0x9e3779b97f4a7c15

// NewRand returns a deterministic generator for seed. Two generators built
// from the same seed produce identical trajectories on the same chain.
// The result is not safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^golden))
}

// NextState samples a successor of current with probability proportional
// to the weights in current's column.
//
// rng supplies the uniform draw; a nil rng uses the package-level source of
// math/rand/v2, which is safe for concurrent use but not reproducible.
//
// Errors:
//   - ErrStateNotFound if current is not a state of the chain.
//   - ErrNoOutgoingTransitions if current's column has no positive weight.
func (c *Chain) NextState(rng *rand.Rand, current string) (string, error) {
	i, err := c.lookup(current)
	if err != nil {
		c.recordSamplingError(reasonStateNotFound)
		c.opts.logger.Warn("sample from unknown state", slog.String("state", current))
		return "", err
	}

	j, err := c.sample(rng, i)
	if err != nil {
		return "", err
	}

	return c.labels[j], nil
}

// sample draws a successor index of state i.
//
// Weights are divided by the column's largest positive weight before they
// are summed, so the total stays finite and in [1, N] for any finite
// non-negative column, from subnormals up to math.MaxFloat64.
func (c *Chain) sample(rng *rand.Rand, i int) (int, error) {
	col := c.column(i)

	var peak float64
	for _, w := range col {
		if isEdge(w) && w > peak {
			peak = w
		}
	}
	if !isEdge(peak) {
		c.recordSamplingError(reasonNoOutgoing)
		c.opts.logger.Warn("sample from state without outgoing transitions",
			slog.String("state", c.labels[i]))
		return 0, fmt.Errorf("%w: %q", ErrNoOutgoingTransitions, c.labels[i])
	}

	var total float64
	for _, w := range col {
		if isEdge(w) {
			total += w / peak
		}
	}

	var u float64
	if rng != nil {
		u = rng.Float64() * total
	} else {
		u = rand.Float64() * total
	}

	j := pick(col, peak, u)
	c.recordTransition()

	return j, nil
}

// pick walks the weights in index order, subtracting each positive weight
// scaled by 1/peak from u, and returns the first index that drives u below
// zero. Zero-weight entries are never returned. If round-off leaves u >= 0
// after the last positive weight, that last positive index is returned.
// col must contain at least one positive weight and peak must be its maximum.
func pick(col []float64, peak, u float64) int {
	last := -1
	for j, w := range col {
		if !isEdge(w) {
			continue
		}
		last = j
		u -= w / peak
		if u < 0 {
			return j
		}
	}

	return last
}
