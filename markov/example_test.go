package markov_test

import (
	"fmt"

	"github.com/katalvlaran/lvmarkov/markov"
)

// ExampleChain_IsIrreducible runs the classic four-state chain in which
// every state reaches every other.
func ExampleChain_IsIrreducible() {
	chain, err := markov.NewFromRows([][]float64{
		{0.5, 0.5, 0.0, 0.0},
		{0.25, 0.0, 0.5, 0.25},
		{0.25, 0.5, 0.0, 0.25},
		{0.0, 0.0, 0.5, 0.5},
	}, []string{"A", "B", "C", "D"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(chain.IsIrreducible())
	// Output:
	// true
}

// ExampleChain_CommunicatingClasses shows a chain split into two closed blocks.
func ExampleChain_CommunicatingClasses() {
	chain, err := markov.NewFromRows([][]float64{
		{0.5, 0.5, 0, 0},
		{0.5, 0.5, 0, 0},
		{0, 0, 0.5, 0.5},
		{0, 0, 0.5, 0.5},
	}, []string{"A", "B", "C", "D"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(chain.IsIrreducible(), chain.IsAccessible("A", "C"))
	fmt.Println(chain.CommunicatingClasses())
	// Output:
	// false false
	// [[A B] [C D]]
}

// ExampleChain_GenerateStates shows how an unknown start surfaces as an error.
func ExampleChain_GenerateStates() {
	chain, err := markov.NewFromRows([][]float64{
		{0, 1},
		{1, 0},
	}, []string{"on", "off"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	states, err := chain.GenerateStates(markov.NewRand(1), "on", 4)
	fmt.Println(states, err)

	_, err = chain.NextState(nil, "Z")
	fmt.Println(err)
	// Output:
	// [off on off on] <nil>
	// markov: state not found: "Z"
}
