package markov

import (
	"fmt"
	"slices"
)

// tarjan holds the state of one strongly-connected-components pass.
type tarjan struct {
	chain   *Chain
	counter int
	index   []int // discovery index per state, -1 = unvisited
	low     []int
	onStack []bool
	stack   []int
	classes [][]int
}

// CommunicatingClasses partitions the states into communicating classes:
// the strongly connected components of the structural graph.
//
// Each class lists its members in index order and classes are ordered by
// their smallest member. A chain is irreducible iff there is exactly one
// class and that class contains a cycle (see IsIrreducible).
// Complexity: O(N^2) since adjacency is read from a dense matrix.
func (c *Chain) CommunicatingClasses() [][]string {
	n := c.Len()
	t := &tarjan{
		chain:   c,
		index:   make([]int, n),
		low:     make([]int, n),
		onStack: make([]bool, n),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for i := 0; i < n; i++ {
		if t.index[i] < 0 {
			t.strongConnect(i)
		}
	}

	for _, cls := range t.classes {
		slices.Sort(cls)
	}
	slices.SortFunc(t.classes, func(a, b []int) int { return a[0] - b[0] })

	out := make([][]string, len(t.classes))
	for k, cls := range t.classes {
		out[k] = c.labelsOf(cls)
	}

	return out
}

// strongConnect is the recursive step of Tarjan's algorithm.
func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.chain.neighbors(v) {
		switch {
		case t.index[w] < 0:
			t.strongConnect(w)
			t.low[v] = min(t.low[v], t.low[w])
		case t.onStack[w]:
			t.low[v] = min(t.low[v], t.index[w])
		}
	}

	if t.low[v] != t.index[v] {
		return
	}
	var cls []int
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		cls = append(cls, w)
		if w == v {
			break
		}
	}
	t.classes = append(t.classes, cls)
}

// IsClosed reports whether no positive-weight transition leaves the given
// set of states. An empty set is closed.
func (c *Chain) IsClosed(states []string) (bool, error) {
	member := make([]bool, c.Len())
	idx := make([]int, 0, len(states))
	for _, s := range states {
		i, err := c.lookup(s)
		if err != nil {
			return false, err
		}
		member[i] = true
		idx = append(idx, i)
	}

	for _, i := range idx {
		for _, j := range c.neighbors(i) {
			if !member[j] {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsAbsorbing reports whether label's only positive transition is to itself.
func (c *Chain) IsAbsorbing(label string) (bool, error) {
	i, err := c.lookup(label)
	if err != nil {
		return false, err
	}
	nb := c.neighbors(i)

	return len(nb) == 1 && nb[0] == i, nil
}

// IsRecurrent reports whether label is recurrent: in a finite chain that is
// exactly when its communicating class is closed and the state lies on a
// cycle. States that are not recurrent are transient.
func (c *Chain) IsRecurrent(label string) (bool, error) {
	i, err := c.lookup(label)
	if err != nil {
		return false, err
	}
	for _, cls := range c.CommunicatingClasses() {
		if !slices.Contains(cls, label) {
			continue
		}
		closed, err := c.IsClosed(cls)
		if err != nil {
			return false, err
		}

		return closed && c.accessible(i, i), nil
	}

	// Every state belongs to exactly one class.
	return false, fmt.Errorf("%w: %q has no class", ErrStateNotFound, label)
}
