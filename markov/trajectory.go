package markov

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Walk simulates n steps starting from start and calls fn with each visited
// state (the start itself is not reported). step counts from 0. Returning
// false from fn stops the walk early without error.
//
// The first failing step stops the walk; its error is returned wrapped with
// the step number. States reported before the failure remain valid.
func (c *Chain) Walk(rng *rand.Rand, start string, n int, fn func(step int, state string) bool) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	if fn == nil {
		return ErrNilVisitor
	}
	if n == 0 {
		return nil
	}

	cur, err := c.lookup(start)
	if err != nil {
		c.recordSamplingError(reasonStateNotFound)
		c.opts.logger.Warn("sample from unknown state", slog.String("state", start))
		return fmt.Errorf("step 0: %w", err)
	}
	for step := 0; step < n; step++ {
		next, err := c.sample(rng, cur)
		if err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if !fn(step, c.labels[next]) {
			return nil
		}
		cur = next
	}

	return nil
}

// GenerateStates returns a trajectory of exactly n states obtained by
// repeatedly sampling from start, each output feeding the next step.
// n == 0 yields an empty, non-nil slice.
//
// On failure the states generated so far are returned together with the
// error; no placeholder values are appended.
func (c *Chain) GenerateStates(rng *rand.Rand, start string, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	states := make([]string, 0, n)
	err := c.Walk(rng, start, n, func(_ int, s string) bool {
		states = append(states, s)
		return true
	})

	return states, err
}
