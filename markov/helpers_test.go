package markov_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvmarkov/markov"
	"github.com/stretchr/testify/require"
)

var abcd = []string{"A", "B", "C", "D"}

// irreducibleRows is the four-state example chain: every state reaches
// every other. rows[j][i] is the weight of i→j.
//
//	A→{A:0.5, B:0.25, C:0.25}
//	B→{A:0.5, C:0.5}
//	C→{B:0.5, D:0.5}
//	D→{B:0.25, C:0.25, D:0.5}
func irreducibleRows() [][]float64 {
	return [][]float64{
		{0.5, 0.5, 0.0, 0.0},
		{0.25, 0.0, 0.5, 0.25},
		{0.25, 0.5, 0.0, 0.25},
		{0.0, 0.0, 0.5, 0.5},
	}
}

// blockRows splits the states into {A,B} and {C,D} with no cross edges.
func blockRows() [][]float64 {
	return [][]float64{
		{0.5, 0.5, 0, 0},
		{0.5, 0.5, 0, 0},
		{0, 0, 0.5, 0.5},
		{0, 0, 0.5, 0.5},
	}
}

// mustChain builds a chain or fails the test.
func mustChain(t *testing.T, rows [][]float64, labels []string) *markov.Chain {
	t.Helper()
	c, err := markov.NewFromRows(rows, labels, markov.WithMetrics(false))
	require.NoError(t, err)

	return c
}

// randomRows returns an n×n weight matrix where each entry is positive
// with probability density, drawn from a seeded generator.
func randomRows(rng *rand.Rand, n int, density float64) [][]float64 {
	rows := make([][]float64, n)
	for j := range rows {
		rows[j] = make([]float64, n)
		for i := range rows[j] {
			if rng.Float64() < density {
				rows[j][i] = rng.Float64() + 0.01
			}
		}
	}

	return rows
}

// closure computes reach[i][j]: a path of length >= 1 from i to j exists,
// using Warshall's algorithm over the edges i→j iff rows[j][i] > 0.
func closure(rows [][]float64) [][]bool {
	n := len(rows)
	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			reach[i][j] = rows[j][i] > 0
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if reach[k][j] {
					reach[i][j] = true
				}
			}
		}
	}

	return reach
}

// labelsN returns "s000".."s{n-1}", zero-padded so labels sort by index.
func labelsN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("s%03d", i)
	}

	return out
}
