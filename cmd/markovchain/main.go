// Command markovchain loads a chain definition and reports its structure.
//
//	markovchain [-file chain.yaml] [-start A -steps 10 -seed 42] [-v]
//
// Without -file the classic four-state example chain is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvmarkov/markov"
)

// exampleRows is the four-state chain A..D; rows[j][i] is the weight of i→j.
var exampleRows = [][]float64{
	{0.5, 0.5, 0.0, 0.0},
	{0.25, 0.0, 0.5, 0.25},
	{0.25, 0.5, 0.0, 0.25},
	{0.0, 0.0, 0.5, 0.5},
}

var exampleStates = []string{"A", "B", "C", "D"}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "markovchain:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("markovchain", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "YAML chain definition (default: built-in 4-state example)")
	start := fs.String("start", "", "start state for a simulated trajectory")
	steps := fs.Int("steps", 10, "trajectory length when -start is set")
	seed := fs.Uint64("seed", 1, "random seed for the trajectory")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("component", "markovchain"))

	chain, err := loadChain(*file, logger)
	if err != nil {
		return err
	}
	logger.Debug("chain loaded", slog.Int("states", chain.Len()))

	fmt.Fprintf(stdout, "irreducible: %t\n", chain.IsIrreducible())
	for _, cls := range chain.CommunicatingClasses() {
		closed, err := chain.IsClosed(cls)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "class: {%s} closed=%t\n", strings.Join(cls, ", "), closed)
	}

	if *start == "" {
		return nil
	}
	states, err := chain.GenerateStates(markov.NewRand(*seed), *start, *steps)
	fmt.Fprintf(stdout, "trajectory: %s\n", strings.Join(states, " "))
	if err != nil {
		logger.Error("trajectory stopped", slog.Int("generated", len(states)), slog.String("error", err.Error()))
		return err
	}

	return nil
}

func loadChain(path string, logger *slog.Logger) (*markov.Chain, error) {
	if path == "" {
		return markov.NewFromRows(exampleRows, exampleStates, markov.WithLogger(logger))
	}
	def, err := markov.LoadDefinition(path)
	if err != nil {
		return nil, err
	}

	return def.Build(markov.WithLogger(logger))
}
