package verify

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"

	"qtermstab/circuit"
	"qtermstab/gates"
	"qtermstab/pauli"
	"qtermstab/sim"
	"qtermstab/statevec"
	"qtermstab/tableau"
)

var (
	// ErrExempt marks gates a check does not apply to.
	ErrExempt = errors.New("gate is exempt from this check")
	// ErrNoDecomposition is returned for gates that declare no decomposition.
	ErrNoDecomposition = errors.New("gate has no decomposition")
)

// Generators are the only gates a decomposition may use.
var Generators = []gates.Type{gates.H, gates.S, gates.CX, gates.M, gates.R}

// EPRProbe entangles each of qubits with the qubit two above it, so that a
// process applied to the probed qubits is fully determined by the resulting
// state. Qubits whose partner would not be encodable are a precondition error.
func EPRProbe(qubits []uint32) (circuit.Circuit, error) {
	var c circuit.Circuit
	if len(qubits) == 0 {
		return c, nil
	}
	hs := make([]circuit.Target, len(qubits))
	pairs := make([]circuit.Target, 0, 2*len(qubits))
	for k, q := range qubits {
		if q > circuit.MaxQubit-2 {
			return circuit.Circuit{}, errors.Wrapf(gates.ErrPrecondition, "qubit %d has no room for an EPR partner", q)
		}
		hs[k] = circuit.Qubit(q)
		pairs = append(pairs, circuit.Qubit(q), circuit.Qubit(q+2))
	}
	if err := c.Append(gates.H, hs, nil); err != nil {
		return circuit.Circuit{}, err
	}
	if err := c.Append(gates.CX, pairs, nil); err != nil {
		return circuit.Circuit{}, err
	}
	return c, nil
}

// EquivalenceValue is the pair of canonical stabilizer lists c produces when
// every random measurement reports true, then false. Two circuits with at
// most one measurement are equivalent on a probe when these values agree.
func EquivalenceValue(c circuit.Circuit, rng *rand.Rand) ([2][]pauli.String, error) {
	var out [2][]pauli.String
	if m := c.CountMeasurements(); m > 1 {
		return out, errors.Wrapf(gates.ErrPrecondition, "circuit records %d results, at most one is supported", m)
	}
	for k, bias := range []int{-1, +1} {
		s := sim.New(c.CountQubits(), rng, bias)
		if err := s.DoCircuit(c); err != nil {
			return out, err
		}
		out[k] = s.CanonicalStabilizers()
	}
	return out, nil
}

func equivalent(a, b [2][]pauli.String) bool {
	for k := range a {
		if !slices.Equal(pauli.Strings(a[k]), pauli.Strings(b[k])) {
			return false
		}
	}
	return true
}

// CheckDecomposition reports whether the gate's decomposition, built only
// from Generators, acts on an EPR probe the same way the gate does.
//
// Pauli product gates return ErrExempt and gates without a decomposition
// return ErrNoDecomposition. A decomposition using any other gate is a
// failure wrapped around gates.ErrPrecondition.
func CheckDecomposition(g *gates.Gate, rng *rand.Rand) (bool, error) {
	if g.Flags.Has(gates.TargetsPauliString) {
		return false, errors.Wrapf(ErrExempt, "%s decomposition", g.Name)
	}
	text := g.Decomposition()
	if text == "" {
		return false, errors.Wrap(ErrNoDecomposition, g.Name)
	}
	dec, err := circuit.Parse(text)
	if err != nil {
		return false, errors.Wrapf(err, "%s decomposition", g.Name)
	}
	if err := checkGenerators(g.Name, dec); err != nil {
		return false, err
	}

	qubits := []uint32{0}
	if g.Flags.Has(gates.TargetsPairs) {
		qubits = append(qubits, 1)
	}
	if n := dec.CountQubits(); n > len(qubits) {
		return false, errors.Wrapf(gates.ErrPrecondition, "%s decomposition touches %d qubits", g.Name, n)
	}
	targets := make([]circuit.Target, len(qubits))
	for k, q := range qubits {
		targets[k] = circuit.Qubit(q)
	}

	probe, err := EPRProbe(qubits)
	if err != nil {
		return false, err
	}
	direct := probe.Concat(circuit.Circuit{})
	if err := direct.Append(g.ID, targets, nil); err != nil {
		return false, err
	}
	want, err := EquivalenceValue(direct, rng)
	if err != nil {
		return false, errors.Wrapf(err, "%s", g.Name)
	}
	got, err := EquivalenceValue(probe.Concat(dec), rng)
	if err != nil {
		return false, errors.Wrapf(err, "%s decomposition", g.Name)
	}
	return equivalent(want, got), nil
}

// checkGenerators fails when the decomposition of the gate called name uses
// anything outside Generators.
func checkGenerators(name string, c circuit.Circuit) error {
	for _, op := range c.Operations {
		if !slices.Contains(Generators, op.Gate) {
			return errors.Wrapf(gates.ErrPrecondition, "%s decomposition uses %s", name, op.Gate)
		}
	}
	return nil
}

// CheckInverse reports whether the tableau of the gate's declared inverse is
// the inverse of the gate's own tableau, and that composing the two gives the
// identity. Only unitary gates have an inverse to check.
func CheckInverse(g *gates.Gate) (bool, error) {
	t, ok := g.Tableau()
	if !ok {
		return false, errors.Wrapf(gates.ErrPrecondition, "%s has no tableau", g.Name)
	}
	inv, ok := gates.Default.ByID(g.BestInverse).Tableau()
	if !ok || inv.NumQubits != t.NumQubits {
		return false, nil
	}
	return t.Inverse().Equal(inv) && t.Then(inv).Equal(tableau.Identity(t.NumQubits)), nil
}

// CheckUnitary reports whether the decomposition's matrix conjugates each
// single-qubit X and Z the way the gate's tableau says it does.
func CheckUnitary(g *gates.Gate) (bool, error) {
	t, ok := g.Tableau()
	if !ok {
		return false, errors.Wrapf(gates.ErrPrecondition, "%s has no tableau", g.Name)
	}
	dec, err := circuit.Parse(g.Decomposition())
	if err != nil {
		return false, errors.Wrapf(err, "%s decomposition", g.Name)
	}
	u, err := statevec.Unitary(dec, t.NumQubits)
	if err != nil {
		return false, err
	}
	ud := u.Dagger()
	for q := 0; q < t.NumQubits; q++ {
		for _, p := range []pauli.String{pauli.X(t.NumQubits, q), pauli.Z(t.NumQubits, q)} {
			lhs := u.Mul(statevec.PauliMatrix(p)).Mul(ud)
			if !lhs.ApproxEqual(statevec.PauliMatrix(t.Apply(p)), 1e-9) {
				return false, nil
			}
		}
	}
	return true, nil
}
