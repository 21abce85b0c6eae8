package markov_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmarkov/markov"
)

// benchChain builds an n-state chain with roughly 30% positive entries plus
// the ring i→i+1 (mod n), so the chain is irreducible and IsIrreducible
// has to visit every pair.
func benchChain(b *testing.B, n int) *markov.Chain {
	b.Helper()
	rows := randomRows(markov.NewRand(uint64(n)), n, 0.3)
	for i := 0; i < n; i++ {
		rows[(i+1)%n][i] += 1
	}
	c, err := markov.NewFromRows(rows, labelsN(n), markov.WithMetrics(false))
	if err != nil {
		b.Fatalf("NewFromRows: %v", err)
	}

	return c
}

func BenchmarkIsIrreducible(b *testing.B) {
	for _, n := range []int{32, 128} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			c := benchChain(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = c.IsIrreducible()
			}
		})
	}
}

func BenchmarkCommunicatingClasses(b *testing.B) {
	for _, n := range []int{32, 128} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			c := benchChain(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = c.CommunicatingClasses()
			}
		})
	}
}
