package markov

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a chain:
//
//	states: [A, B]
//	transitions:
//	  A: {A: 0.5, B: 0.5}
//	  B: {A: 1}
//
// transitions[from][to] is the weight of from→to. Missing entries are zero.
// States fixes the index order.
type Definition struct {
	States      []string                      `yaml:"states"`
	Transitions map[string]map[string]float64 `yaml:"transitions"`
}

// ParseDefinition decodes a YAML chain definition. Unknown keys are rejected.
func ParseDefinition(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidChainDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidChainDefinition, err)
	}

	return &def, nil
}

// LoadDefinition reads and decodes the YAML chain definition at path.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("markov: read definition: %w", err)
	}

	return ParseDefinition(data)
}

// Rows returns the weight matrix described by d, laid out for NewFromRows:
// rows[j][i] is the weight of States[i]→States[j].
func (d *Definition) Rows() ([][]float64, error) {
	n := len(d.States)
	pos := make(map[string]int, n)
	for i, s := range d.States {
		if _, dup := pos[s]; !dup {
			pos[s] = i
		}
	}

	rows := make([][]float64, n)
	for j := range rows {
		rows[j] = make([]float64, n)
	}
	for from, out := range d.Transitions {
		i, ok := pos[from]
		if !ok {
			return nil, fmt.Errorf("%w: transitions from undeclared state %q", ErrInvalidChainDefinition, from)
		}
		for to, w := range out {
			j, ok := pos[to]
			if !ok {
				return nil, fmt.Errorf("%w: transition %q->%q targets undeclared state",
					ErrInvalidChainDefinition, from, to)
			}
			rows[j][i] = w
		}
	}

	return rows, nil
}

// Build validates d and constructs the Chain it describes.
func (d *Definition) Build(opts ...Option) (*Chain, error) {
	rows, err := d.Rows()
	if err != nil {
		return nil, err
	}

	return NewFromRows(rows, d.States, opts...)
}
