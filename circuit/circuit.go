// Package circuit holds sequences of gate applications and their text form.
package circuit

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"qtermstab/gates"
)

// Operation is one gate applied to a list of targets.
type Operation struct {
	Gate    gates.Type
	Targets []Target
	Args    []float64
}

// Circuit is an ordered list of operations.
type Circuit struct {
	Operations []Operation
}

// Append adds an operation after checking its targets and arguments against
// the gate's flags. It merges into the last operation when that operation has
// the same gate and arguments.
func (c *Circuit) Append(gate gates.Type, targets []Target, args []float64) error {
	if gate == gates.NotAGate || gate >= gates.NumTypes {
		return errors.Wrapf(gates.ErrPrecondition, "cannot append gate id %d", uint8(gate))
	}
	g := gates.Default.ByID(gate)
	if err := Validate(g, targets, args); err != nil {
		return err
	}

	if n := len(c.Operations); n > 0 && !g.Flags.Has(gates.IsAnnotation) {
		last := &c.Operations[n-1]
		if last.Gate == gate && slices.Equal(last.Args, args) {
			last.Targets = append(last.Targets, targets...)
			return nil
		}
	}
	c.Operations = append(c.Operations, Operation{
		Gate:    gate,
		Targets: slices.Clone(targets),
		Args:    slices.Clone(args),
	})
	return nil
}

// AppendName is Append with the gate given by name.
func (c *Circuit) AppendName(name string, targets []Target, args ...float64) error {
	g, err := gates.Default.At(name)
	if err != nil {
		return err
	}
	return c.Append(g.ID, targets, args)
}

// AppendQubits appends a gate applied to plain qubit targets.
func (c *Circuit) AppendQubits(name string, qubits ...uint32) error {
	targets := make([]Target, len(qubits))
	for i, q := range qubits {
		t, err := CheckedQubit(q)
		if err != nil {
			return err
		}
		targets[i] = t
	}
	return c.AppendName(name, targets)
}

// Validate checks targets and args against the gate's declared arity.
func Validate(g *gates.Gate, targets []Target, args []float64) error {
	if g.ID == gates.NotAGate {
		return errors.Wrap(gates.ErrPrecondition, "not a gate")
	}
	if len(args) > g.ArgCount {
		return errors.Wrapf(gates.ErrPrecondition, "%s takes at most %d arguments, got %d", g.Name, g.ArgCount, len(args))
	}
	if g.Flags.Has(gates.ArgIsProbability) {
		for _, a := range args {
			if a < 0 || a > 1 {
				return errors.Wrapf(gates.ErrPrecondition, "%s argument %g is not a probability", g.Name, a)
			}
		}
	}

	switch {
	case g.Flags.Has(gates.TakesNoTargets):
		if len(targets) > 0 {
			return errors.Wrapf(gates.ErrPrecondition, "%s takes no targets, got %d", g.Name, len(targets))
		}
		return nil
	case g.Flags.Has(gates.TargetsPauliString):
		return validateProducts(g, targets)
	}

	for k, t := range targets {
		if t.IsRecord() {
			if !recordControlAllowed(g.ID, k) {
				return errors.Wrapf(gates.ErrPrecondition, "%s cannot be classically controlled by %s", g.Name, t)
			}
			continue
		}
		if !t.IsQubit() {
			return errors.Wrapf(gates.ErrPrecondition, "%s cannot target %s", g.Name, t)
		}
		if t.IsInverted() && !g.Flags.Has(gates.ProducesResults) {
			return errors.Wrapf(gates.ErrPrecondition, "%s cannot target inverted qubit %s", g.Name, t)
		}
	}
	if g.Flags.Has(gates.TargetsPairs) {
		if len(targets) == 0 || len(targets)%2 != 0 {
			return errors.Wrapf(gates.ErrPrecondition, "%s targets pairs of qubits but got %d targets", g.Name, len(targets))
		}
		for k := 0; k < len(targets); k += 2 {
			a, b := targets[k], targets[k+1]
			switch {
			case a.IsRecord() && b.IsRecord():
				return errors.Wrapf(gates.ErrPrecondition, "%s pair %s %s has no qubit", g.Name, a, b)
			case a.IsRecord() || b.IsRecord():
			case a.Value() == b.Value():
				return errors.Wrapf(gates.ErrPrecondition, "%s applied to qubit %d twice in one pair", g.Name, a.Value())
			}
		}
	}
	return nil
}

// recordControlAllowed reports whether a measurement record may sit at
// position k of g's targets. CX and CY take it as the control; CZ is
// symmetric so either side works.
func recordControlAllowed(id gates.Type, k int) bool {
	switch id {
	case gates.CX, gates.CY:
		return k%2 == 0
	case gates.CZ:
		return true
	}
	return false
}

func validateProducts(g *gates.Gate, targets []Target) error {
	if len(targets) == 0 {
		return errors.Wrapf(gates.ErrPrecondition, "%s needs at least one product", g.Name)
	}
	expectTerm := true
	seen := map[uint32]bool{}
	for k, t := range targets {
		if t.IsCombiner() {
			if expectTerm || k == len(targets)-1 {
				return errors.Wrapf(gates.ErrPrecondition, "%s has a dangling combiner at target %d", g.Name, k)
			}
			expectTerm = true
			continue
		}
		if !t.IsPauli() {
			return errors.Wrapf(gates.ErrPrecondition, "%s needs Pauli targets, got %s", g.Name, t)
		}
		if !expectTerm {
			clear(seen)
		}
		if seen[t.Value()] {
			return errors.Wrapf(gates.ErrPrecondition, "%s product repeats qubit %d", g.Name, t.Value())
		}
		seen[t.Value()] = true
		expectTerm = false
	}
	return nil
}

// Groups splits an operation into its individual applications: single
// targets, pairs, or combiner-joined products (without the combiners).
func Groups(op Operation) [][]Target {
	g := gates.Default.ByID(op.Gate)
	switch {
	case g.Flags.Has(gates.TakesNoTargets):
		return nil
	case g.Flags.Has(gates.TargetsPairs):
		out := make([][]Target, 0, len(op.Targets)/2)
		for k := 0; k+1 < len(op.Targets); k += 2 {
			out = append(out, op.Targets[k:k+2])
		}
		return out
	case g.Flags.Has(gates.TargetsCombiners):
		var out [][]Target
		var cur []Target
		for k, t := range op.Targets {
			if t.IsCombiner() {
				continue
			}
			cur = append(cur, t)
			if k+1 == len(op.Targets) || !op.Targets[k+1].IsCombiner() {
				out = append(out, cur)
				cur = nil
			}
		}
		return out
	default:
		out := make([][]Target, len(op.Targets))
		for k := range op.Targets {
			out[k] = op.Targets[k : k+1]
		}
		return out
	}
}

// Concat returns c followed by other.
func (c Circuit) Concat(other Circuit) Circuit {
	ops := make([]Operation, 0, len(c.Operations)+len(other.Operations))
	ops = append(ops, c.Operations...)
	ops = append(ops, other.Operations...)
	return Circuit{Operations: ops}
}

// CountQubits is one more than the largest qubit index targeted.
func (c Circuit) CountQubits() int {
	n := 0
	for _, op := range c.Operations {
		for _, t := range op.Targets {
			if t.IsCombiner() || t.IsRecord() {
				continue
			}
			n = max(n, int(t.Value())+1)
		}
	}
	return n
}

// CountMeasurements is the number of results the circuit records.
func (c Circuit) CountMeasurements() int {
	n := 0
	for _, op := range c.Operations {
		if gates.Default.ByID(op.Gate).Flags.Has(gates.ProducesResults) {
			n += len(Groups(op))
		}
	}
	return n
}

// GateTypes lists the distinct gates used, in first-use order.
func (c Circuit) GateTypes() []gates.Type {
	var out []gates.Type
	for _, op := range c.Operations {
		if !slices.Contains(out, op.Gate) {
			out = append(out, op.Gate)
		}
	}
	return out
}

func (op Operation) String() string {
	var sb strings.Builder
	sb.WriteString(op.Gate.String())
	if len(op.Args) > 0 {
		parts := make([]string, len(op.Args))
		for i, a := range op.Args {
			parts[i] = formatArg(a)
		}
		sb.WriteString("(" + strings.Join(parts, ", ") + ")")
	}
	for k, t := range op.Targets {
		switch {
		case t.IsCombiner():
			sb.WriteString("*")
		case k > 0 && op.Targets[k-1].IsCombiner():
			sb.WriteString(t.String())
		default:
			sb.WriteString(" " + t.String())
		}
	}
	return sb.String()
}

// String renders one operation per line in the form Parse accepts.
func (c Circuit) String() string {
	var sb strings.Builder
	for _, op := range c.Operations {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
