package markov

import "log/slog"

// walker encapsulates mutable BFS state for one reachability search over
// the structural graph.
type walker struct {
	chain *Chain
	queue []int  // FIFO frontier
	seen  []bool // index is in the frontier or already explored
	order []int  // discovery order
}

func newWalker(c *Chain) *walker {
	n := c.Len()

	return &walker{
		chain: c,
		queue: make([]int, 0, n),
		seen:  make([]bool, n),
		order: make([]int, 0, n),
	}
}

// run expands src, then drains the frontier. It stops as soon as match
// reports true for a neighbour of an expanded state. match may be nil, in
// which case every state reachable from src is discovered.
//
// src is not marked as seen up front: it is discovered only if a path of
// length >= 1 leads back to it.
func (w *walker) run(src int, match func(int) bool) bool {
	if w.expand(src, match) {
		return true
	}
	for len(w.queue) > 0 {
		cur := w.dequeue()
		if w.expand(cur, match) {
			return true
		}
	}

	return false
}

// dequeue pops the first item from the frontier.
func (w *walker) dequeue() int {
	cur := w.queue[0]
	w.queue = w.queue[1:]

	return cur
}

// expand enumerates the out-neighbours of i, reports a match, and enqueues
// every neighbour not yet seen.
func (w *walker) expand(i int, match func(int) bool) bool {
	for _, j := range w.chain.neighbors(i) {
		if match != nil && match(j) {
			return true
		}
		if !w.seen[j] {
			w.seen[j] = true
			w.order = append(w.order, j)
			w.queue = append(w.queue, j)
		}
	}

	return false
}

// IsAccessible reports whether target can be reached from source along a
// path of one or more positive-weight transitions.
//
// source is not considered reachable from itself unless it lies on a cycle
// (a self-loop counts). Unknown source or target labels yield false.
func (c *Chain) IsAccessible(source, target string) bool {
	src, ok := c.index[source]
	if !ok {
		return false
	}
	dst, ok := c.index[target]
	if !ok {
		return false
	}

	return c.accessible(src, dst)
}

func (c *Chain) accessible(src, dst int) bool {
	c.recordSearch()

	return newWalker(c).run(src, func(j int) bool { return j == dst })
}

// Reachable returns every state reachable from source by a path of length
// >= 1, in BFS discovery order.
func (c *Chain) Reachable(source string) ([]string, error) {
	src, err := c.lookup(source)
	if err != nil {
		return nil, err
	}
	c.recordSearch()

	w := newWalker(c)
	w.run(src, nil)

	return c.labelsOf(w.order), nil
}

// IsIrreducible reports whether every state is accessible from every state,
// itself included, i.e. whether the structural graph is strongly connected
// and every state lies on a cycle.
//
// Pairs are tested in index order with one BFS each, stopping at the first
// inaccessible pair. Cost is O(N^2) searches of O(N + E) each, which is
// fine for the small chains this package targets; CommunicatingClasses
// answers the same question in a single linear pass.
func (c *Chain) IsIrreducible() bool {
	n := c.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !c.accessible(i, j) {
				c.opts.logger.Debug("chain is reducible",
					slog.String("from", c.labels[i]),
					slog.String("to", c.labels[j]))
				return false
			}
		}
	}

	return true
}

// IsReducible returns the same value as IsIrreducible: true when the chain
// is irreducible.
//
// Deprecated: the name is inverted with respect to the result. Use
// IsIrreducible.
func (c *Chain) IsReducible() bool {
	return c.IsIrreducible()
}
