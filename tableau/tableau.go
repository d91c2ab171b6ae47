// Package tableau holds Clifford tableaus: the images of every X_q and Z_q
// generator under conjugation by a Clifford operation.
package tableau

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"qtermstab/pauli"
)

// Tableau records how a Clifford operation C maps each generator: XOut[q] is
// C X_q C^dag and ZOut[q] is C Z_q C^dag.
type Tableau struct {
	NumQubits int
	XOut      []pauli.String
	ZOut      []pauli.String
}

// Identity returns the identity tableau over n qubits.
func Identity(n int) Tableau {
	t := Tableau{NumQubits: n, XOut: make([]pauli.String, n), ZOut: make([]pauli.String, n)}
	for q := 0; q < n; q++ {
		t.XOut[q] = pauli.X(n, q)
		t.ZOut[q] = pauli.Z(n, q)
	}
	return t
}

// FromStrings builds a tableau from the X images followed by the Z images,
// e.g. FromStrings("+XX", "+_X", "+Z_", "+ZZ") for CX.
func FromStrings(outputs ...string) (Tableau, error) {
	if len(outputs)%2 != 0 {
		return Tableau{}, errors.Errorf("tableau: odd number of generator images (%d)", len(outputs))
	}
	n := len(outputs) / 2
	t := Tableau{NumQubits: n, XOut: make([]pauli.String, n), ZOut: make([]pauli.String, n)}
	for k, text := range outputs {
		p, err := pauli.Parse(text)
		if err != nil {
			return Tableau{}, errors.Wrapf(err, "tableau generator %d", k)
		}
		if p.NumQubits != n {
			return Tableau{}, errors.Errorf("tableau generator %q covers %d qubits, want %d", text, p.NumQubits, n)
		}
		if k < n {
			t.XOut[k] = p
		} else {
			t.ZOut[k-n] = p
		}
	}
	if !t.IsValid() {
		return Tableau{}, errors.Errorf("tableau %v does not preserve commutation relations", outputs)
	}
	return t, nil
}

// MustFromStrings is FromStrings for literals known to be valid.
func MustFromStrings(outputs ...string) Tableau {
	t, err := FromStrings(outputs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Apply returns C p C^dag for an operator p over the tableau's qubits.
func (t Tableau) Apply(p pauli.String) pauli.String {
	if p.NumQubits != t.NumQubits {
		panic(fmt.Sprintf("tableau: applying %d-qubit tableau to %d-qubit string", t.NumQubits, p.NumQubits))
	}
	r := pauli.New(t.NumQubits)
	r.Sign = p.Sign
	for q := 0; q < t.NumQubits; q++ {
		var k uint8
		switch p.Get(q) {
		case 'X':
			k = r.RightMul(t.XOut[q])
		case 'Z':
			k = r.RightMul(t.ZOut[q])
		case 'Y':
			// Y = iXZ so its image is i * T(X) * T(Z).
			img, j := t.XOut[q].Times(t.ZOut[q])
			if j != 1 {
				panic("tableau: X and Z images commute")
			}
			img.Sign = !img.Sign
			k = r.RightMul(img)
		}
		if k != 0 {
			panic("tableau: generator images on distinct qubits anticommute")
		}
	}
	return r
}

// ApplyWithin conjugates the part of p that lives on qubits, leaving every
// other qubit untouched. qubits[k] plays the role of the tableau's qubit k.
func (t Tableau) ApplyWithin(p pauli.String, qubits []int) pauli.String {
	if len(qubits) != t.NumQubits {
		panic(fmt.Sprintf("tableau: %d target qubits for a %d-qubit tableau", len(qubits), t.NumQubits))
	}
	out := t.Apply(p.Restrict(qubits))
	r := p.Clone()
	r.Sign = p.Sign != out.Sign
	for k, q := range qubits {
		r.Set(q, out.Get(k))
	}
	return r
}

// Then returns the tableau of applying t followed by second.
func (t Tableau) Then(second Tableau) Tableau {
	r := Tableau{NumQubits: t.NumQubits, XOut: make([]pauli.String, t.NumQubits), ZOut: make([]pauli.String, t.NumQubits)}
	for q := 0; q < t.NumQubits; q++ {
		r.XOut[q] = second.Apply(t.XOut[q])
		r.ZOut[q] = second.Apply(t.ZOut[q])
	}
	return r
}

// Inverse returns the tableau of C^dag.
func (t Tableau) Inverse() Tableau {
	n := t.NumQubits
	inv := Tableau{NumQubits: n, XOut: make([]pauli.String, n), ZOut: make([]pauli.String, n)}
	for q := 0; q < n; q++ {
		inv.XOut[q] = t.preimage(pauli.X(n, q))
		inv.ZOut[q] = t.preimage(pauli.Z(n, q))
	}
	return inv
}

// preimage finds the operator mapped onto target. Its X part on qubit j is set
// when target anticommutes with ZOut[j], its Z part when it anticommutes with
// XOut[j]; the sign is then fixed by applying the tableau forward.
func (t Tableau) preimage(target pauli.String) pauli.String {
	c := pauli.New(t.NumQubits)
	for j := 0; j < t.NumQubits; j++ {
		c.Xs.Set(j, !target.Commutes(t.ZOut[j]))
		c.Zs.Set(j, !target.Commutes(t.XOut[j]))
	}
	if img := t.Apply(c); img.Sign != target.Sign {
		c.Sign = !c.Sign
	}
	return c
}

// IsValid reports whether the images satisfy the Pauli commutation relations.
func (t Tableau) IsValid() bool {
	if len(t.XOut) != t.NumQubits || len(t.ZOut) != t.NumQubits {
		return false
	}
	for q := 0; q < t.NumQubits; q++ {
		if t.XOut[q].NumQubits != t.NumQubits || t.ZOut[q].NumQubits != t.NumQubits {
			return false
		}
	}
	for a := 0; a < t.NumQubits; a++ {
		for b := 0; b < t.NumQubits; b++ {
			if !t.XOut[a].Commutes(t.XOut[b]) || !t.ZOut[a].Commutes(t.ZOut[b]) {
				return false
			}
			if t.XOut[a].Commutes(t.ZOut[b]) != (a != b) {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether t maps every generator to itself.
func (t Tableau) IsIdentity() bool {
	return t.Equal(Identity(t.NumQubits))
}

// Equal reports whether both tableaus describe the same operation.
func (t Tableau) Equal(o Tableau) bool {
	if t.NumQubits != o.NumQubits {
		return false
	}
	for q := 0; q < t.NumQubits; q++ {
		if !t.XOut[q].Equal(o.XOut[q]) || !t.ZOut[q].Equal(o.ZOut[q]) {
			return false
		}
	}
	return true
}

// Strings returns the generator images in FromStrings order.
func (t Tableau) Strings() []string {
	out := make([]string, 0, 2*t.NumQubits)
	out = append(out, pauli.Strings(t.XOut)...)
	return append(out, pauli.Strings(t.ZOut)...)
}

// String renders one line per generator, e.g. "X0 -> +ZX".
func (t Tableau) String() string {
	var sb strings.Builder
	for q := 0; q < t.NumQubits; q++ {
		fmt.Fprintf(&sb, "X%d -> %s\n", q, t.XOut[q])
	}
	for q := 0; q < t.NumQubits; q++ {
		fmt.Fprintf(&sb, "Z%d -> %s\n", q, t.ZOut[q])
	}
	return sb.String()
}
