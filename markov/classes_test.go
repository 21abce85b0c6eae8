package markov_test

import (
	"testing"

	"github.com/katalvlaran/lvmarkov/markov"
	"github.com/stretchr/testify/require"
)

func TestCommunicatingClasses(t *testing.T) {
	require.Equal(t, [][]string{{"A", "B", "C", "D"}},
		mustChain(t, irreducibleRows(), abcd).CommunicatingClasses())

	require.Equal(t, [][]string{{"A", "B"}, {"C", "D"}},
		mustChain(t, blockRows(), abcd).CommunicatingClasses())

	// A→B, B→C, C→B, D isolated.
	c := mustChain(t, [][]float64{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}, abcd)
	require.Equal(t, [][]string{{"A"}, {"B", "C"}, {"D"}}, c.CommunicatingClasses())
}

// TestCommunicatingClasses_AgreesWithIsIrreducible cross-checks the
// linear pass against the pairwise search on random chains.
func TestCommunicatingClasses_AgreesWithIsIrreducible(t *testing.T) {
	rng := markov.NewRand(77)
	for trial := 0; trial < 60; trial++ {
		n := 1 + rng.IntN(6)
		c := mustChain(t, randomRows(rng, n, 0.45), labelsN(n))

		classes := c.CommunicatingClasses()
		first, _ := c.Label(0)
		single := len(classes) == 1 && c.IsAccessible(first, first)
		require.Equal(t, single, c.IsIrreducible(), "trial %d", trial)

		total := 0
		for _, cls := range classes {
			total += len(cls)
		}
		require.Equal(t, n, total)
	}
}

func TestIsClosed(t *testing.T) {
	c := mustChain(t, [][]float64{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}, abcd)

	ok, err := c.IsClosed([]string{"B", "C"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.IsClosed([]string{"A"})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = c.IsClosed(nil)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = c.IsClosed([]string{"Z"})
	require.ErrorIs(t, err, markov.ErrStateNotFound)
}

func TestIsAbsorbingAndRecurrent(t *testing.T) {
	// A→{A,B}, B→C, C absorbing.
	c := mustChain(t, [][]float64{
		{0.5, 0, 0},
		{0.5, 0, 0},
		{0, 1, 1},
	}, []string{"A", "B", "C"})

	abs, err := c.IsAbsorbing("C")
	require.NoError(t, err)
	require.True(t, abs)

	abs, err = c.IsAbsorbing("A")
	require.NoError(t, err)
	require.False(t, abs)

	rec, err := c.IsRecurrent("C")
	require.NoError(t, err)
	require.True(t, rec)

	for _, s := range []string{"A", "B"} {
		rec, err = c.IsRecurrent(s)
		require.NoError(t, err)
		require.False(t, rec, s)
	}

	_, err = c.IsAbsorbing("Z")
	require.ErrorIs(t, err, markov.ErrStateNotFound)
	_, err = c.IsRecurrent("Z")
	require.ErrorIs(t, err, markov.ErrStateNotFound)
}
