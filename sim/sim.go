// Package sim is a stabilizer tableau simulator for catalog circuits.
package sim

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"

	"qtermstab/circuit"
	"qtermstab/gates"
	"qtermstab/pauli"
	"qtermstab/tableau"
)

// Simulator tracks a stabilizer state as n stabilizer generators and their n
// destabilizer partners. Stab[q] starts as Z_q and Destab[q] as X_q.
type Simulator struct {
	n        int
	rng      *rand.Rand
	signBias int
	destab   []pauli.String
	stab     []pauli.String
	record   []bool
}

// New returns a simulator of numQubits qubits in |0...0>.
//
// signBias picks the outcome of random measurements: -1 always reports true,
// +1 always reports false, and 0 draws from rng. rng may be nil when signBias
// is non-zero and no operation carries a flip probability.
func New(numQubits int, rng *rand.Rand, signBias int) *Simulator {
	s := &Simulator{rng: rng, signBias: signBias}
	s.EnsureQubits(numQubits)
	return s
}

// NumQubits is the number of tracked qubits.
func (s *Simulator) NumQubits() int {
	return s.n
}

// EnsureQubits grows the register to at least n qubits. New qubits are |0>.
func (s *Simulator) EnsureQubits(n int) {
	if n <= s.n {
		return
	}
	for i := range s.stab {
		s.stab[i] = s.stab[i].Resized(n)
		s.destab[i] = s.destab[i].Resized(n)
	}
	for q := s.n; q < n; q++ {
		s.destab = append(s.destab, pauli.X(n, q))
		s.stab = append(s.stab, pauli.Z(n, q))
	}
	s.n = n
}

// Record returns a copy of the measurement results so far.
func (s *Simulator) Record() []bool {
	out := make([]bool, len(s.record))
	copy(out, s.record)
	return out
}

// Stabilizers returns copies of the current stabilizer generators.
func (s *Simulator) Stabilizers() []pauli.String {
	out := make([]pauli.String, s.n)
	for i, p := range s.stab {
		out[i] = p.Clone()
	}
	return out
}

// ApplyTableau conjugates the state by t acting on qubits, where qubits[k]
// plays the role of the tableau's qubit k.
func (s *Simulator) ApplyTableau(t tableau.Tableau, qubits ...int) error {
	if len(qubits) != t.NumQubits {
		return errors.Wrapf(gates.ErrPrecondition, "%d-qubit tableau applied to %d qubits", t.NumQubits, len(qubits))
	}
	hi := 0
	for k, q := range qubits {
		if q < 0 {
			return errors.Wrapf(gates.ErrPrecondition, "negative qubit %d", q)
		}
		for _, p := range qubits[:k] {
			if p == q {
				return errors.Wrapf(gates.ErrPrecondition, "qubit %d targeted twice", q)
			}
		}
		hi = max(hi, q+1)
	}
	s.EnsureQubits(hi)
	for i := 0; i < s.n; i++ {
		s.stab[i] = t.ApplyWithin(s.stab[i], qubits)
		s.destab[i] = t.ApplyWithin(s.destab[i], qubits)
	}
	return nil
}

// DoCircuit applies every operation in order, stopping at the first error.
func (s *Simulator) DoCircuit(c circuit.Circuit) error {
	for k, op := range c.Operations {
		if err := s.Do(op); err != nil {
			return errors.Wrapf(err, "operation %d (%s)", k, op.Gate)
		}
	}
	return nil
}

// Do applies one operation. After an error the state is unspecified.
func (s *Simulator) Do(op circuit.Operation) error {
	if op.Gate == gates.NotAGate || op.Gate >= gates.NumTypes {
		return errors.Wrapf(gates.ErrPrecondition, "unknown gate id %d", uint8(op.Gate))
	}
	g := gates.Default.ByID(op.Gate)
	if err := circuit.Validate(g, op.Targets, op.Args); err != nil {
		return err
	}
	s.EnsureQubits(circuit.Circuit{Operations: []circuit.Operation{op}}.CountQubits())

	switch {
	case g.Flags.Has(gates.IsAnnotation):
		return nil
	case g.Flags.Has(gates.IsUnitary):
		t := g.MustTableau()
		for _, group := range circuit.Groups(op) {
			if slices.ContainsFunc(group, circuit.Target.IsRecord) {
				if err := s.doFeedback(g, group); err != nil {
					return err
				}
				continue
			}
			qs := make([]int, len(group))
			for k, target := range group {
				qs[k] = int(target.Value())
			}
			if err := s.ApplyTableau(t, qs...); err != nil {
				return err
			}
		}
		return nil
	default:
		return s.doCollapse(g, op)
	}
}

func (s *Simulator) doCollapse(g *gates.Gate, op circuit.Operation) error {
	var flip float64
	if len(op.Args) > 0 {
		flip = op.Args[0]
	}
	basis := collapseBasis(g.ID)

	for _, group := range circuit.Groups(op) {
		obs := pauli.New(s.n)
		inverted := false
		for _, t := range group {
			c := basis
			if t.IsPauli() {
				c = t.Basis()
			}
			obs.Set(int(t.Value()), c)
			inverted = inverted != t.IsInverted()
		}

		var result bool
		if g.Flags.Has(gates.ProducesResults) || g.Flags.Has(gates.IsReset) {
			var err error
			result, err = s.measure(obs)
			if err != nil {
				return err
			}
		}
		if g.Flags.Has(gates.ProducesResults) {
			reported := result != inverted
			if flip > 0 {
				if s.rng == nil {
					return errors.Wrapf(gates.ErrPrecondition, "%s has a flip probability but the simulator has no random source", g.Name)
				}
				if s.rng.Float64() < flip {
					reported = !reported
				}
			}
			s.record = append(s.record, reported)
		}
		if g.Flags.Has(gates.IsReset) && result {
			// The measured qubit is in the -1 eigenstate; flip it to +1.
			q := int(group[0].Value())
			fix := pauli.Z(1, 0)
			if basis != 'X' {
				fix = pauli.X(1, 0)
			}
			if err := s.ApplyTableau(pauliTableau(fix), q); err != nil {
				return err
			}
		}
	}
	return nil
}

// doFeedback applies a classically controlled pair: when the referenced
// result is true the controlled Pauli lands on the qubit side.
func (s *Simulator) doFeedback(g *gates.Gate, group []circuit.Target) error {
	rec, q := group[0], group[1]
	if q.IsRecord() {
		rec, q = q, rec
	}
	k := int(rec.Value())
	if k > len(s.record) {
		return errors.Wrapf(gates.ErrPrecondition, "%s reads %s but only %d results were recorded", g.Name, rec, len(s.record))
	}
	if !s.record[len(s.record)-k] {
		return nil
	}
	p := pauli.New(1)
	switch g.ID {
	case gates.CX:
		p.Set(0, 'X')
	case gates.CY:
		p.Set(0, 'Y')
	default:
		p.Set(0, 'Z')
	}
	return s.ApplyTableau(pauliTableau(p), int(q.Value()))
}

// collapseBasis is the single-qubit basis measured or reset by a collapsing
// gate. Pauli product gates take their bases from the targets instead.
func collapseBasis(id gates.Type) byte {
	switch id {
	case gates.MX, gates.MRX, gates.RX, gates.MXX:
		return 'X'
	case gates.MY, gates.MRY, gates.RY, gates.MYY:
		return 'Y'
	default:
		return 'Z'
	}
}

// pauliTableau is the tableau of conjugating by a single-qubit Pauli p.
func pauliTableau(p pauli.String) tableau.Tableau {
	t := tableau.Identity(1)
	t.XOut[0].Sign = !p.Commutes(t.XOut[0])
	t.ZOut[0].Sign = !p.Commutes(t.ZOut[0])
	return t
}

// MeasurePauli measures the observable obs, collapsing the state. The result
// is true for the -1 eigenvalue.
func (s *Simulator) MeasurePauli(obs pauli.String) (bool, error) {
	return s.measure(obs)
}

func (s *Simulator) measure(obs pauli.String) (bool, error) {
	if obs.NumQubits > s.n {
		s.EnsureQubits(obs.NumQubits)
	}
	obs = obs.Resized(s.n)

	p := -1
	for i := range s.stab {
		if !s.stab[i].Commutes(obs) {
			p = i
			break
		}
	}
	if p < 0 {
		v, _ := s.peekDeterministic(obs)
		return v, nil
	}

	for i := 0; i < s.n; i++ {
		if i == p {
			continue
		}
		if !s.stab[i].Commutes(obs) {
			s.stab[i].RightMul(s.stab[p])
		}
		if !s.destab[i].Commutes(obs) {
			s.destab[i].RightMul(s.stab[p])
		}
	}

	result, err := s.coin()
	if err != nil {
		return false, err
	}
	next := obs.Clone()
	next.Sign = obs.Sign != result
	s.destab[p] = s.stab[p]
	s.stab[p] = next
	return result, nil
}

func (s *Simulator) coin() (bool, error) {
	switch {
	case s.signBias < 0:
		return true, nil
	case s.signBias > 0:
		return false, nil
	case s.rng == nil:
		return false, errors.Wrap(gates.ErrPrecondition, "random measurement without a random source")
	default:
		return s.rng.IntN(2) == 1, nil
	}
}

// PeekPauli reports the value obs would be measured with, without collapsing
// the state. deterministic is false when the result would be random.
func (s *Simulator) PeekPauli(obs pauli.String) (value, deterministic bool) {
	obs = obs.Resized(max(s.n, obs.NumQubits))
	if obs.NumQubits > s.n {
		// Untouched qubits are |0>: only identity and Z there keep things deterministic.
		for q := s.n; q < obs.NumQubits; q++ {
			if obs.Xs.Get(q) {
				return false, false
			}
		}
		obs = obs.Resized(s.n)
	}
	return s.peekDeterministic(obs)
}

// IsDeterministic reports whether measuring obs has a fixed outcome.
func (s *Simulator) IsDeterministic(obs pauli.String) bool {
	_, ok := s.PeekPauli(obs)
	return ok
}

func (s *Simulator) peekDeterministic(obs pauli.String) (bool, bool) {
	for i := range s.stab {
		if !s.stab[i].Commutes(obs) {
			return false, false
		}
	}
	acc := pauli.New(s.n)
	for i := range s.destab {
		if !s.destab[i].Commutes(obs) {
			acc.RightMul(s.stab[i])
		}
	}
	return acc.Sign != obs.Sign, true
}

// CanonicalStabilizers returns the stabilizer group in a normal form: the
// generators are Gaussian-eliminated, pivoting on X then Z for each qubit, so
// that two simulators in the same state return equal lists.
func (s *Simulator) CanonicalStabilizers() []pauli.String {
	rows := s.Stabilizers()
	minPivot := 0
	for q := 0; q < s.n; q++ {
		for _, useX := range []bool{true, false} {
			has := func(p pauli.String) bool {
				if useX {
					return p.Xs.Get(q)
				}
				return p.Zs.Get(q)
			}
			pivot := -1
			for i := minPivot; i < len(rows); i++ {
				if has(rows[i]) {
					pivot = i
					break
				}
			}
			if pivot < 0 {
				continue
			}
			for i := range rows {
				if i != pivot && has(rows[i]) {
					rows[i].RightMul(rows[pivot])
				}
			}
			rows[minPivot], rows[pivot] = rows[pivot], rows[minPivot]
			minPivot++
		}
	}
	return rows
}
