package circuit

import (
	"fmt"

	"github.com/pkg/errors"

	"qtermstab/gates"
)

// Target is one operand of an operation: a qubit, a Pauli-qualified qubit, a
// combiner joining neighbouring Pauli targets, or a measurement record.
type Target uint32

const (
	targetInvertedBit Target = 1 << 31
	targetPauliXBit   Target = 1 << 30
	targetPauliZBit   Target = 1 << 29
	targetRecordBit   Target = 1 << 28
	targetCombiner    Target = 1 << 27
	targetValueMask   Target = (1 << 24) - 1
)

// MaxQubit is the largest encodable qubit index.
const MaxQubit = uint32(targetValueMask)

// Qubit targets q directly. q must not exceed MaxQubit; use CheckedQubit
// for indices that come from outside.
func Qubit(q uint32) Target {
	return Target(q) & targetValueMask
}

// CheckedQubit is Qubit for indices that may not be encodable.
func CheckedQubit(q uint32) (Target, error) {
	if q > MaxQubit {
		return 0, errors.Wrapf(gates.ErrPrecondition, "qubit %d exceeds the largest index %d", q, MaxQubit)
	}
	return Qubit(q), nil
}

// X targets qubit q in the X basis.
func X(q uint32) Target {
	return Qubit(q) | targetPauliXBit
}

// Y targets qubit q in the Y basis.
func Y(q uint32) Target {
	return Qubit(q) | targetPauliXBit | targetPauliZBit
}

// Z targets qubit q in the Z basis.
func Z(q uint32) Target {
	return Qubit(q) | targetPauliZBit
}

// Pauli targets qubit q in the basis named by c ('X', 'Y' or 'Z').
func Pauli(q uint32, c byte) Target {
	switch c {
	case 'X', 'x':
		return X(q)
	case 'Y', 'y':
		return Y(q)
	case 'Z', 'z':
		return Z(q)
	}
	panic(fmt.Sprintf("circuit: %q is not a Pauli basis", c))
}

// Combiner joins the targets on either side into one product.
func Combiner() Target {
	return targetCombiner
}

// Rec refers to the measurement result k steps back; Rec(-1) is the latest.
func Rec(k int) Target {
	if k >= 0 || -k > int(MaxQubit) {
		panic(fmt.Sprintf("circuit: record lookback %d out of range", k))
	}
	return Target(-k)&targetValueMask | targetRecordBit
}

// Inverted flips the reported result of a measured product term.
func (t Target) Inverted() Target {
	return t ^ targetInvertedBit
}

func (t Target) IsInverted() bool { return t&targetInvertedBit != 0 }
func (t Target) IsCombiner() bool { return t == targetCombiner }
func (t Target) IsRecord() bool   { return t&targetRecordBit != 0 }
func (t Target) IsPauli() bool    { return t&(targetPauliXBit|targetPauliZBit) != 0 }

// IsQubit reports whether t is a plain qubit target, possibly inverted.
func (t Target) IsQubit() bool {
	return t&(targetPauliXBit|targetPauliZBit|targetRecordBit|targetCombiner) == 0
}

// Value is the qubit index, or the lookback distance for records.
func (t Target) Value() uint32 {
	return uint32(t & targetValueMask)
}

// Basis returns 'X', 'Y' or 'Z' for Pauli targets and 0 otherwise.
func (t Target) Basis() byte {
	x, z := t&targetPauliXBit != 0, t&targetPauliZBit != 0
	switch {
	case x && z:
		return 'Y'
	case x:
		return 'X'
	case z:
		return 'Z'
	}
	return 0
}

func (t Target) String() string {
	var prefix string
	if t.IsInverted() {
		prefix = "!"
	}
	switch {
	case t.IsCombiner():
		return "*"
	case t.IsRecord():
		return fmt.Sprintf("rec[-%d]", t.Value())
	case t.IsPauli():
		return fmt.Sprintf("%s%c%d", prefix, t.Basis(), t.Value())
	default:
		return fmt.Sprintf("%s%d", prefix, t.Value())
	}
}
