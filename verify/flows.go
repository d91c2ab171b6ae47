// Package verify checks the behavioural claims of catalog gates: their
// stabilizer flows, decompositions and inverses.
//
// Flow and decomposition checks are randomized. A passing check means no
// counterexample was found in the given number of trials, not a proof.
package verify

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"qtermstab/circuit"
	"qtermstab/flow"
	"qtermstab/gates"
	"qtermstab/pauli"
	"qtermstab/sim"
)

// Options tunes flow checking.
type Options struct {
	// Unsigned accepts flows whose output only matches up to sign.
	Unsigned bool
}

// CheckFlows reports, per flow, whether c satisfied it in every one of the
// trials. A single contradicting trial fails the flow.
//
// Each trial of each flow runs in its own simulator. Every data qubit is
// maximally entangled with a reference qubit and hit by a random Pauli, then
// an ancilla in |+> controls the input Pauli before the circuit runs and the
// output Pauli (and measurement feedback) after it. The ancilla returns to a
// deterministic |+> exactly when the circuit maps the input onto the output.
func CheckFlows(trials int, rng *rand.Rand, c circuit.Circuit, flows []flow.Flow, opts Options) ([]bool, error) {
	if trials < 1 {
		return nil, errors.Wrapf(gates.ErrPrecondition, "need at least one trial, got %d", trials)
	}
	if rng == nil {
		return nil, errors.Wrap(gates.ErrPrecondition, "flow checks need a random source")
	}
	numResults := c.CountMeasurements()
	n := c.CountQubits()
	for _, f := range flows {
		n = max(n, f.NumQubits())
		for _, m := range f.Measurements {
			if m >= 0 || -m > numResults {
				return nil, errors.Wrapf(gates.ErrPrecondition, "flow %q refers to rec(%d) but the circuit records %d results", f, m, numResults)
			}
		}
	}

	results := make([]bool, len(flows))
	for k := range results {
		results[k] = true
	}
	for range trials {
		for k, f := range flows {
			if !results[k] {
				continue
			}
			ok, err := checkFlowOnce(rng, c, n, f, opts)
			if err != nil {
				return nil, errors.Wrapf(err, "flow %q", f)
			}
			results[k] = ok
		}
	}
	return results, nil
}

// applier applies catalog tableaus, keeping the first error.
type applier struct {
	s   *sim.Simulator
	err error
}

func (a *applier) do(id gates.Type, qubits ...int) {
	if a.err != nil {
		return
	}
	a.err = a.s.ApplyTableau(gates.Default.ByID(id).MustTableau(), qubits...)
}

// controlled applies p to the data qubits, controlled by the ancilla.
func (a *applier) controlled(anc int, p pauli.String) {
	if p.Sign {
		a.do(gates.Z, anc)
	}
	for q := 0; q < p.NumQubits; q++ {
		switch p.Get(q) {
		case 'X':
			a.do(gates.CX, anc, q)
		case 'Y':
			a.do(gates.CY, anc, q)
		case 'Z':
			a.do(gates.CZ, anc, q)
		}
	}
}

var randomPaulis = [4]gates.Type{gates.I, gates.X, gates.Y, gates.Z}

func checkFlowOnce(rng *rand.Rand, c circuit.Circuit, n int, f flow.Flow, opts Options) (bool, error) {
	anc := 2 * n
	s := sim.New(2*n+1, rng, 0)
	a := &applier{s: s}

	for q := 0; q < n; q++ {
		a.do(gates.H, n+q)
		a.do(gates.CX, n+q, q)
	}
	for q := 0; q < n; q++ {
		a.do(randomPaulis[rng.IntN(4)], q)
	}
	a.do(gates.H, anc)
	a.controlled(anc, f.Input.Resized(n))
	if a.err != nil {
		return false, a.err
	}

	if err := s.DoCircuit(c); err != nil {
		return false, err
	}

	record := s.Record()
	for _, m := range f.Measurements {
		if record[len(record)+m] {
			a.do(gates.Z, anc)
		}
	}
	a.controlled(anc, f.Output.Resized(n))
	if a.err != nil {
		return false, a.err
	}

	v, deterministic := s.PeekPauli(pauli.X(2*n+1, anc))
	return deterministic && (!v || opts.Unsigned), nil
}

// ProbeTargets are the targets a gate is exercised on when checking its
// declared flows: qubit 0, qubits 0 and 1, or X0*Y1*Z2 X3*X4 for Pauli
// product gates.
func ProbeTargets(g *gates.Gate) []circuit.Target {
	switch {
	case g.Flags.Has(gates.TakesNoTargets):
		return nil
	case g.Flags.Has(gates.TargetsPauliString):
		return []circuit.Target{
			circuit.X(0), circuit.Combiner(), circuit.Y(1), circuit.Combiner(), circuit.Z(2),
			circuit.X(3), circuit.Combiner(), circuit.X(4),
		}
	case g.Flags.Has(gates.TargetsPairs):
		return []circuit.Target{circuit.Qubit(0), circuit.Qubit(1)}
	default:
		return []circuit.Target{circuit.Qubit(0)}
	}
}

func probeWidth(g *gates.Gate) int {
	w := 0
	for _, t := range ProbeTargets(g) {
		if !t.IsCombiner() {
			w = max(w, int(t.Value())+1)
		}
	}
	return w
}

// gateFlows returns the declared flows after checking they fit the gate.
func gateFlows(g *gates.Gate) ([]flow.Flow, error) {
	flows, err := g.Flows()
	if err != nil {
		return nil, err
	}
	width := probeWidth(g)
	for _, f := range flows {
		if f.NumQubits() > width {
			return nil, errors.Wrapf(gates.ErrPrecondition, "%s flow %q spans %d qubits but the gate acts on %d", g.Name, f, f.NumQubits(), width)
		}
		if f.UsesMeasurements() && !g.Flags.Has(gates.ProducesResults) {
			return nil, errors.Wrapf(gates.ErrPrecondition, "%s flow %q refers to results but the gate produces none", g.Name, f)
		}
	}
	return flows, nil
}

// CheckGateFlows checks the gate's declared flows against the gate itself.
// A gate without flows returns nil results.
func CheckGateFlows(g *gates.Gate, trials int, rng *rand.Rand, opts Options) ([]bool, error) {
	flows, err := gateFlows(g)
	if err != nil || len(flows) == 0 {
		return nil, err
	}
	var c circuit.Circuit
	if err := c.Append(g.ID, ProbeTargets(g), nil); err != nil {
		return nil, err
	}
	return CheckFlows(trials, rng, c, flows, opts)
}

// CheckDecompositionFlows checks the gate's declared flows against its
// decomposition. Gates without flows or a decomposition return nil results.
func CheckDecompositionFlows(g *gates.Gate, trials int, rng *rand.Rand, opts Options) ([]bool, error) {
	flows, err := gateFlows(g)
	if err != nil || len(flows) == 0 || g.Decomposition() == "" {
		return nil, err
	}
	c, err := circuit.Parse(g.Decomposition())
	if err != nil {
		return nil, errors.Wrapf(err, "%s decomposition", g.Name)
	}
	return CheckFlows(trials, rng, c, flows, opts)
}
