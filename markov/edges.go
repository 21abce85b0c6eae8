package markov

// isEdge is the single positivity predicate shared by sampling and
// reachability: a weight contributes an edge iff it is strictly positive.
func isEdge(w float64) bool { return w > 0 }

// column returns the out-weights of state i. i must be a valid index.
func (c *Chain) column(i int) []float64 {
	col, err := c.m.Column(i)
	if err != nil {
		// Unreachable for indices produced by the state index.
		return nil
	}

	return col
}

// neighbors returns the indices j with T[j][i] > 0, ascending.
func (c *Chain) neighbors(i int) []int {
	col := c.column(i)
	out := make([]int, 0, len(col))
	for j, w := range col {
		if isEdge(w) {
			out = append(out, j)
		}
	}

	return out
}

// Neighbors returns the labels reachable from label in exactly one step,
// i.e. the out-neighbours of label in the structural graph, in index order.
func (c *Chain) Neighbors(label string) ([]string, error) {
	i, err := c.lookup(label)
	if err != nil {
		return nil, err
	}

	return c.labelsOf(c.neighbors(i)), nil
}

// labelsOf maps indices to labels, preserving order.
func (c *Chain) labelsOf(idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = c.labels[i]
	}

	return out
}
