package markov

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvmarkov/matrix"
)

// Chain is an immutable discrete-time, finite-state Markov chain.
//
// Column i of the transition matrix holds the out-weights of state i:
// T[j][i] is the weight of moving from state i to state j. Weights need not
// be normalised; sampling divides by the column total implicitly.
//
// A Chain is safe for concurrent use by multiple goroutines: nothing is
// mutated after New returns.
type Chain struct {
	m      *matrix.Dense  // owned copy of the transition weights
	labels []string       // index → label
	index  map[string]int // label → index
	opts   options
}

// New builds a Chain from an N×N weight matrix and N distinct labels.
// Label k is bound to row/column k.
//
// The matrix is copied, so later changes made by the caller do not affect
// the chain. Every validation failure wraps ErrInvalidChainDefinition; the
// underlying matrix sentinel (ErrNonSquare, ErrNegativeEntry, ErrNaNInf,
// ErrNilMatrix) is wrapped as well where one applies.
func New(m matrix.Matrix, labels []string, opts ...Option) (*Chain, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateDefinition(m, labels); err != nil {
		o.logger.Debug("rejected chain definition", slog.String("error", err.Error()))
		return nil, err
	}

	owned, err := ownDense(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChainDefinition, err)
	}

	n := len(labels)
	c := &Chain{
		m:      owned,
		labels: make([]string, n),
		index:  make(map[string]int, n),
		opts:   o,
	}
	copy(c.labels, labels)
	for i, l := range c.labels {
		c.index[l] = i
	}

	o.logger.Debug("chain constructed", slog.Int("states", n))

	return c, nil
}

// NewFromRows is a convenience wrapper: it builds a matrix.Dense from rows
// (rows[j][i] is the weight of i→j) and calls New.
func NewFromRows(rows [][]float64, labels []string, opts ...Option) (*Chain, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChainDefinition, err)
	}

	return New(m, labels, opts...)
}

// validateDefinition runs every construction check in a fixed order:
// nil → square → count → finite → non-negative → labels.
func validateDefinition(m matrix.Matrix, labels []string) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChainDefinition, err)
	}
	if len(labels) == 0 {
		return fmt.Errorf("%w: no states", ErrInvalidChainDefinition)
	}
	if m.Rows() != len(labels) {
		return fmt.Errorf("%w: matrix is %dx%d but %d labels were given",
			ErrInvalidChainDefinition, m.Rows(), m.Cols(), len(labels))
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChainDefinition, err)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChainDefinition, err)
	}

	seen := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return fmt.Errorf("%w: empty label at position %d", ErrInvalidChainDefinition, i)
		}
		if prev, dup := seen[l]; dup {
			return fmt.Errorf("%w: label %q at positions %d and %d",
				ErrInvalidChainDefinition, l, prev, i)
		}
		seen[l] = i
	}

	return nil
}

// ownDense returns a private *matrix.Dense copy of m.
func ownDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	d, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Len returns the number of states.
func (c *Chain) Len() int { return len(c.labels) }

// States returns the labels in index order. The slice is a copy.
func (c *Chain) States() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)

	return out
}

// Index returns the dense index bound to label.
func (c *Chain) Index(label string) (int, bool) {
	i, ok := c.index[label]

	return i, ok
}

// Label returns the label bound to index i.
func (c *Chain) Label(i int) (string, bool) {
	if i < 0 || i >= len(c.labels) {
		return "", false
	}

	return c.labels[i], true
}

// Weight returns T[to][from], the weight of the from→to transition.
func (c *Chain) Weight(from, to string) (float64, error) {
	i, err := c.lookup(from)
	if err != nil {
		return 0, err
	}
	j, err := c.lookup(to)
	if err != nil {
		return 0, err
	}

	return c.m.At(j, i)
}

// Matrix returns a copy of the transition matrix.
func (c *Chain) Matrix() *matrix.Dense {
	return c.m.Clone().(*matrix.Dense)
}

// lookup resolves label or returns a wrapped ErrStateNotFound.
func (c *Chain) lookup(label string) (int, error) {
	i, ok := c.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStateNotFound, label)
	}

	return i, nil
}
