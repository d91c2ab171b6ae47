package statevec

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"qtermstab/circuit"
	"qtermstab/gates"
	"qtermstab/pauli"
)

// Matrix is a dense square matrix, indexed [row][column].
type Matrix [][]Complex

func zeros(dim int) Matrix {
	m := make(Matrix, dim)
	for i := range m {
		m[i] = make([]Complex, dim)
	}
	return m
}

// Unitary returns the matrix of a unitary circuit over numQubits qubits by
// running it on every computational basis state.
func Unitary(c circuit.Circuit, numQubits int) (Matrix, error) {
	if numQubits > MaxQubits {
		return nil, errors.Wrapf(gates.ErrPrecondition, "%d qubits exceeds the state vector limit of %d", numQubits, MaxQubits)
	}
	if c.CountQubits() > numQubits {
		return nil, errors.Wrapf(gates.ErrPrecondition, "circuit touches %d qubits, more than %d", c.CountQubits(), numQubits)
	}
	dim := 1 << numQubits
	u := zeros(dim)
	for k := 0; k < dim; k++ {
		s := Basis(numQubits, k)
		if err := s.Run(c); err != nil {
			return nil, err
		}
		for row, amp := range s.Amplitudes {
			u[row][k] = amp
		}
	}
	return u, nil
}

// PauliMatrix returns the matrix of a signed Pauli string.
func PauliMatrix(p pauli.String) Matrix {
	dim := 1 << p.NumQubits
	m := zeros(dim)
	var xmask int
	for q := 0; q < p.NumQubits; q++ {
		if p.Xs.Get(q) {
			xmask |= 1 << q
		}
	}
	for k := 0; k < dim; k++ {
		amp := Complex(1)
		if p.Sign {
			amp = -1
		}
		for q := 0; q < p.NumQubits; q++ {
			bit := k&(1<<q) != 0
			switch p.Get(q) {
			case 'Z':
				if bit {
					amp = -amp
				}
			case 'Y':
				amp *= 1i
				if bit {
					amp = -amp
				}
			}
		}
		m[k^xmask][k] = amp
	}
	return m
}

// Mul returns a*b.
func (a Matrix) Mul(b Matrix) Matrix {
	out := zeros(len(a))
	for i := range a {
		for k := range b {
			if a[i][k] == 0 {
				continue
			}
			for j := range b[k] {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (a Matrix) Dagger() Matrix {
	out := zeros(len(a))
	for i := range a {
		for j := range a[i] {
			out[j][i] = cmplx.Conj(a[i][j])
		}
	}
	return out
}

// ApproxEqual compares entry-wise within tol.
func (a Matrix) ApproxEqual(b Matrix, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		for j := range a[i] {
			if cmplx.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// EqualUpToPhase reports whether a = e^{i phi} b for some global phase.
func (a Matrix) EqualUpToPhase(b Matrix, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	var phase Complex
	for i := range a {
		for j := range a[i] {
			if cmplx.Abs(b[i][j]) > tol {
				phase = a[i][j] / b[i][j]
				break
			}
		}
		if phase != 0 {
			break
		}
	}
	if phase == 0 || math.Abs(cmplx.Abs(phase)-1) > tol {
		return false
	}
	for i := range a {
		for j := range a[i] {
			if cmplx.Abs(a[i][j]-phase*b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
