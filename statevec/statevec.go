// Package statevec is a dense state vector simulator for small unitary
// circuits. It cross-checks the tableau machinery with plain linear algebra.
package statevec

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"qtermstab/circuit"
	"qtermstab/gates"
)

type Complex = complex128

// MaxQubits bounds the register size; amplitudes grow as 2^n.
const MaxQubits = 12

// StateVector holds 2^NumQubits amplitudes. Qubit q is bit q of the index.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// New returns |0...0> over numQubits qubits.
func New(numQubits int) *StateVector {
	return Basis(numQubits, 0)
}

// Basis returns the computational basis state |k>.
func Basis(numQubits, k int) *StateVector {
	amps := make([]Complex, 1<<numQubits)
	amps[k] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Simulate runs c on |0...0> over numQubits qubits.
func Simulate(c circuit.Circuit, numQubits int) (*StateVector, error) {
	n := max(numQubits, c.CountQubits())
	if n > MaxQubits {
		return nil, errors.Wrapf(gates.ErrPrecondition, "%d qubits exceeds the state vector limit of %d", n, MaxQubits)
	}
	s := New(n)
	if err := s.Run(c); err != nil {
		return nil, err
	}
	return s, nil
}

// Run applies every operation of c.
func (s *StateVector) Run(c circuit.Circuit) error {
	for _, op := range c.Operations {
		if err := s.Apply(op); err != nil {
			return err
		}
	}
	return nil
}

// Apply applies one unitary operation. H, S, S_DAG, the Paulis, CX, CZ and
// SWAP act directly; other unitary gates are replayed from their
// decompositions. Collapsing gates are rejected.
func (s *StateVector) Apply(op circuit.Operation) error {
	g := gates.Default.ByID(op.Gate)
	if g.Flags.Has(gates.IsAnnotation) {
		return nil
	}
	if !g.Flags.Has(gates.IsUnitary) {
		return errors.Wrapf(gates.ErrPrecondition, "%s is not unitary", g.Name)
	}
	for _, group := range circuit.Groups(op) {
		qs := make([]int, len(group))
		for k, t := range group {
			if t.IsRecord() {
				return errors.Wrapf(gates.ErrPrecondition, "%s has no measurement record to read %s", g.Name, t)
			}
			qs[k] = int(t.Value())
			if qs[k] >= s.NumQubits {
				return errors.Wrapf(gates.ErrPrecondition, "qubit %d outside a %d-qubit state", qs[k], s.NumQubits)
			}
		}
		if err := s.applyGroup(g, qs); err != nil {
			return err
		}
	}
	return nil
}

func (s *StateVector) applyGroup(g *gates.Gate, qs []int) error {
	switch g.ID {
	case gates.I:
	case gates.H:
		s.applyH(qs[0])
	case gates.X:
		s.applyX(qs[0])
	case gates.Y:
		s.applyY(qs[0])
	case gates.Z:
		s.applyZ(qs[0])
	case gates.S:
		s.applyS(qs[0], false)
	case gates.SDag:
		s.applyS(qs[0], true)
	case gates.CX:
		s.applyCX(qs[0], qs[1])
	case gates.CZ:
		s.applyCZ(qs[0], qs[1])
	case gates.Swap:
		s.applySWAP(qs[0], qs[1])
	default:
		dec, err := circuit.Parse(g.Decomposition())
		if err != nil {
			return errors.Wrapf(err, "%s decomposition", g.Name)
		}
		for _, op := range dec.Operations {
			mapped := circuit.Operation{Gate: op.Gate, Args: op.Args}
			for _, t := range op.Targets {
				if int(t.Value()) >= len(qs) {
					return errors.Wrapf(gates.ErrPrecondition, "%s decomposition touches qubit %d", g.Name, t.Value())
				}
				mapped.Targets = append(mapped.Targets, circuit.Qubit(uint32(qs[t.Value()])))
			}
			if err := s.Apply(mapped); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = hFactor * (s.Amplitudes[i] + s.Amplitudes[j])
			newAmps[j] = hFactor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyX(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// applyY uses Y|0> = i|1> and Y|1> = -i|0>.
func (s *StateVector) applyY(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = -1i*s.Amplitudes[j], 1i*s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyZ(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

func (s *StateVector) applyS(q int, dagger bool) {
	bit := 1 << q
	factor := Complex(1i)
	if dagger {
		factor = -1i
	}
	for i := range s.Amplitudes {
		if i&bit != 0 {
			s.Amplitudes[i] *= factor
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCZ(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

func (s *StateVector) applySWAP(q1, q2 int) {
	bit1 := 1 << q1
	bit2 := 1 << q2
	for i := range s.Amplitudes {
		if i&bit1 != 0 && i&bit2 == 0 {
			j := (i &^ bit1) | bit2
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// Probabilities returns the Z-basis marginals of every qubit.
func (s *StateVector) Probabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	for i, amp := range s.Amplitudes {
		prob := real(amp * cmplx.Conj(amp))
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}
	return probs
}
