// Package pauli implements bit-packed signed Pauli strings.
//
// Each qubit carries an (x, z) bit pair: (0,0) is I, (1,0) is X, (1,1) is Y and
// (0,1) is Z. Y is the Hermitian product iXZ, so every String is a Hermitian
// operator up to its overall sign.
package pauli

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bits is a packed bit set.
type Bits []uint64

// NewBits returns a zeroed bit set able to hold n bits.
func NewBits(n int) Bits {
	return make(Bits, (n+63)/64)
}

// Get reports the bit at index k.
func (b Bits) Get(k int) bool {
	return b[k>>6]>>(uint(k)&63)&1 == 1
}

// Set assigns the bit at index k.
func (b Bits) Set(k int, v bool) {
	mask := uint64(1) << (uint(k) & 63)
	if v {
		b[k>>6] |= mask
	} else {
		b[k>>6] &^= mask
	}
}

// Clone returns an independent copy.
func (b Bits) Clone() Bits {
	c := make(Bits, len(b))
	copy(c, b)
	return c
}

// IsZero reports whether no bit is set.
func (b Bits) IsZero() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same bits.
func (b Bits) Equal(o Bits) bool {
	if len(b) != len(o) {
		return false
	}
	for k := range b {
		if b[k] != o[k] {
			return false
		}
	}
	return true
}

// String is a signed Pauli operator over a fixed number of qubits.
type String struct {
	NumQubits int
	Sign      bool // true means a -1 prefactor
	Xs        Bits
	Zs        Bits
}

// New returns the identity over n qubits.
func New(n int) String {
	return String{NumQubits: n, Xs: NewBits(n), Zs: NewBits(n)}
}

// X returns X on qubit q of an n-qubit register.
func X(n, q int) String {
	p := New(n)
	p.Set(q, 'X')
	return p
}

// Y returns Y on qubit q of an n-qubit register.
func Y(n, q int) String {
	p := New(n)
	p.Set(q, 'Y')
	return p
}

// Z returns Z on qubit q of an n-qubit register.
func Z(n, q int) String {
	p := New(n)
	p.Set(q, 'Z')
	return p
}

// Single returns the named single-qubit Pauli ('I', 'X', 'Y' or 'Z') on qubit q.
func Single(n, q int, c byte) String {
	p := New(n)
	p.Set(q, c)
	return p
}

// Get returns the Pauli on qubit q as one of 'I', 'X', 'Y', 'Z'.
func (p String) Get(q int) byte {
	x, z := p.Xs.Get(q), p.Zs.Get(q)
	switch {
	case x && z:
		return 'Y'
	case x:
		return 'X'
	case z:
		return 'Z'
	default:
		return 'I'
	}
}

// Set replaces the Pauli on qubit q. Unknown labels clear the qubit.
func (p String) Set(q int, c byte) {
	switch c {
	case 'X', 'x':
		p.Xs.Set(q, true)
		p.Zs.Set(q, false)
	case 'Y', 'y':
		p.Xs.Set(q, true)
		p.Zs.Set(q, true)
	case 'Z', 'z':
		p.Xs.Set(q, false)
		p.Zs.Set(q, true)
	default:
		p.Xs.Set(q, false)
		p.Zs.Set(q, false)
	}
}

// Clone returns an independent copy.
func (p String) Clone() String {
	return String{NumQubits: p.NumQubits, Sign: p.Sign, Xs: p.Xs.Clone(), Zs: p.Zs.Clone()}
}

// Resized returns a copy padded with identities (or truncated) to n qubits.
func (p String) Resized(n int) String {
	r := New(n)
	r.Sign = p.Sign
	for q := 0; q < min(n, p.NumQubits); q++ {
		r.Xs.Set(q, p.Xs.Get(q))
		r.Zs.Set(q, p.Zs.Get(q))
	}
	return r
}

// IsIdentity reports whether every qubit carries I. The sign is ignored.
func (p String) IsIdentity() bool {
	return p.Xs.IsZero() && p.Zs.IsZero()
}

// Weight counts the qubits that carry a non-identity Pauli.
func (p String) Weight() int {
	w := 0
	for k := range p.Xs {
		w += bits.OnesCount64(p.Xs[k] | p.Zs[k])
	}
	return w
}

// Commutes reports whether p and o commute. Both must cover the same qubits.
func (p String) Commutes(o String) bool {
	mustMatch(p, o)
	acc := 0
	for k := range p.Xs {
		acc += bits.OnesCount64((p.Xs[k] & o.Zs[k]) ^ (p.Zs[k] & o.Xs[k]))
	}
	return acc&1 == 0
}

// Equal reports whether p and o are the same signed operator.
func (p String) Equal(o String) bool {
	return p.Sign == o.Sign && p.EqualUpToSign(o)
}

// EqualUpToSign reports whether p and o differ at most by their sign.
func (p String) EqualUpToSign(o String) bool {
	return p.NumQubits == o.NumQubits && p.Xs.Equal(o.Xs) && p.Zs.Equal(o.Zs)
}

// RightMul replaces p with p*rhs. The sign of the product is folded into p.Sign
// and the remaining factor i^k is returned as k (0 or 1). k is 0 exactly when p
// and rhs commute.
func (p *String) RightMul(rhs String) uint8 {
	mustMatch(*p, rhs)
	anti, neg := 0, 0
	for k := range p.Xs {
		x1, z1, x2, z2 := p.Xs[k], p.Zs[k], rhs.Xs[k], rhs.Zs[k]
		// Per qubit the product picks up i for XY, YZ, ZX and -i for YX, ZY, XZ.
		a := (x1 & z2) ^ (z1 & x2)
		n := (x1 & z1 & x2 &^ z2) | (x1 &^ z1 &^ x2 & z2) | (^x1 & z1 & x2 & z2)
		anti += bits.OnesCount64(a)
		neg += bits.OnesCount64(n)
		p.Xs[k] = x1 ^ x2
		p.Zs[k] = z1 ^ z2
	}
	t := anti + 2*neg
	if p.Sign {
		t += 2
	}
	if rhs.Sign {
		t += 2
	}
	t &= 3
	p.Sign = t&2 != 0
	return uint8(t & 1)
}

// Times returns p*rhs and the leftover i exponent, leaving p untouched.
func (p String) Times(rhs String) (String, uint8) {
	r := p.Clone()
	k := r.RightMul(rhs)
	return r, k
}

// Embed places qubit k of p onto qubits[k] of a fresh n-qubit string.
func (p String) Embed(n int, qubits []int) String {
	r := New(n)
	r.Sign = p.Sign
	for k, q := range qubits {
		r.Xs.Set(q, p.Xs.Get(k))
		r.Zs.Set(q, p.Zs.Get(k))
	}
	return r
}

// Restrict returns the unsigned sub-string of p on the given qubits.
func (p String) Restrict(qubits []int) String {
	r := New(len(qubits))
	for k, q := range qubits {
		r.Xs.Set(k, p.Xs.Get(q))
		r.Zs.Set(k, p.Zs.Get(q))
	}
	return r
}

// String renders the dense form, e.g. "+X_Z".
func (p String) String() string {
	var sb strings.Builder
	sb.Grow(p.NumQubits + 1)
	if p.Sign {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for q := 0; q < p.NumQubits; q++ {
		c := p.Get(q)
		if c == 'I' {
			c = '_'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Sparse renders the non-identity terms, e.g. "-X0*Z2". The identity renders as "+I".
func (p String) Sparse() string {
	var terms []string
	for q := 0; q < p.NumQubits; q++ {
		if c := p.Get(q); c != 'I' {
			terms = append(terms, fmt.Sprintf("%c%d", c, q))
		}
	}
	sign := "+"
	if p.Sign {
		sign = "-"
	}
	if len(terms) == 0 {
		return sign + "I"
	}
	return sign + strings.Join(terms, "*")
}

// Strings renders each string in dense form.
func Strings(ps []String) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func mustMatch(a, b String) {
	if a.NumQubits != b.NumQubits {
		panic(fmt.Sprintf("pauli: size mismatch %d != %d", a.NumQubits, b.NumQubits))
	}
}
