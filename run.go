package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"qtermstab/circuit"
	"qtermstab/gates"
	"qtermstab/pauli"
	"qtermstab/sim"
	"qtermstab/statevec"
)

// probabilityQubitLimit bounds the state vector cross-check shown next to
// the stabilizers.
const probabilityQubitLimit = 8

// runResult is one simulation of a circuit.
type runResult struct {
	circuit     circuit.Circuit
	numQubits   int
	record      []bool
	stabilizers []pauli.String
	// probs is set only for small unitary circuits.
	probs []statevec.QubitProbability
}

// runCircuit parses and simulates text on at least numQubits qubits.
func runCircuit(text string, numQubits int, seed uint64, bias int) (runResult, error) {
	c, err := circuit.Parse(text)
	if err != nil {
		return runResult{}, err
	}
	s := sim.New(numQubits, rand.New(rand.NewPCG(seed, 0)), bias)
	if err := s.DoCircuit(c); err != nil {
		return runResult{circuit: c}, err
	}
	r := runResult{
		circuit:     c,
		numQubits:   s.NumQubits(),
		record:      s.Record(),
		stabilizers: s.CanonicalStabilizers(),
	}
	if isUnitaryCircuit(c) && r.numQubits <= probabilityQubitLimit {
		if sv, err := statevec.Simulate(c, r.numQubits); err == nil {
			r.probs = sv.Probabilities()
		}
	}
	return r, nil
}

func isUnitaryCircuit(c circuit.Circuit) bool {
	for _, id := range c.GateTypes() {
		f := gates.Default.ByID(id).Flags
		if !f.Has(gates.IsUnitary) && !f.Has(gates.IsAnnotation) {
			return false
		}
	}
	return true
}

// formatRecord renders measurement results as a bit string.
func formatRecord(record []bool) string {
	var sb strings.Builder
	for _, b := range record {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func formatProbability(q int, p statevec.QubitProbability) string {
	return fmt.Sprintf("q%d P(1)=%.3f", q, p.Prob1)
}
