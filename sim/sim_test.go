package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtermstab/circuit"
	"qtermstab/gates"
	"qtermstab/pauli"
)

func run(t *testing.T, bias int, text string) *Simulator {
	t.Helper()
	s := New(0, rand.New(rand.NewPCG(1, 2)), bias)
	require.NoError(t, s.DoCircuit(circuit.MustParse(text)))
	return s
}

func TestBellStateCanonicalStabilizers(t *testing.T) {
	a := run(t, 0, "H 0\nCX 0 1")
	assert.Equal(t, []string{"+XX", "+ZZ"}, pauli.Strings(a.CanonicalStabilizers()))

	b := run(t, 0, "H 1\nCX 1 0")
	assert.Equal(t, pauli.Strings(a.CanonicalStabilizers()), pauli.Strings(b.CanonicalStabilizers()))

	c := run(t, 0, "H 0 1\nCZ 0 1\nH 1")
	assert.Equal(t, pauli.Strings(a.CanonicalStabilizers()), pauli.Strings(c.CanonicalStabilizers()))

	d := run(t, 0, "H 0\nCX 0 1\nZ 0")
	assert.Equal(t, []string{"-XX", "+ZZ"}, pauli.Strings(d.CanonicalStabilizers()))
}

func TestSingleQubitStates(t *testing.T) {
	assert.Equal(t, []string{"+Y"}, pauli.Strings(run(t, 0, "H 0\nS 0").CanonicalStabilizers()))
	assert.Equal(t, []string{"-Y"}, pauli.Strings(run(t, 0, "H 0\nS_DAG 0").CanonicalStabilizers()))
	assert.Equal(t, []string{"-Z"}, pauli.Strings(run(t, 0, "X 0").CanonicalStabilizers()))
	assert.Equal(t, []string{"+X"}, pauli.Strings(run(t, 0, "SQRT_Y 0").CanonicalStabilizers()))
	assert.Equal(t, []string{"+Y"}, pauli.Strings(run(t, 0, "C_ZYX 0").CanonicalStabilizers()))
}

func TestDeterministicMeasurements(t *testing.T) {
	s := run(t, 0, "M 0\nX 1\nM 1\nH 2\nMX 2\nH 3\nS 3\nMY 3")
	assert.Equal(t, []bool{false, true, false, false}, s.Record())

	v, ok := s.PeekPauli(pauli.Z(4, 1))
	assert.True(t, ok)
	assert.True(t, v)
	assert.True(t, s.IsDeterministic(pauli.MustParse("ZZ")))
}

func TestSignBiasDrivesRandomResults(t *testing.T) {
	for _, tc := range []struct {
		bias int
		want bool
	}{{-1, true}, {+1, false}} {
		s := New(1, nil, tc.bias)
		require.NoError(t, s.DoCircuit(circuit.MustParse("H 0")))
		_, ok := s.PeekPauli(pauli.Z(1, 0))
		assert.False(t, ok)

		got, err := s.MeasurePauli(pauli.Z(1, 0))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)

		v, ok := s.PeekPauli(pauli.Z(1, 0))
		assert.True(t, ok)
		assert.Equal(t, tc.want, v)
	}
}

func TestRandomResultsNeedSource(t *testing.T) {
	s := New(1, nil, 0)
	err := s.DoCircuit(circuit.MustParse("H 0\nM 0"))
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)

	s = New(1, nil, -1)
	err = s.DoCircuit(circuit.MustParse("M(1) 0"))
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)
}

func TestRandomResultsVary(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	seen := map[bool]int{}
	for range 64 {
		s := New(1, rng, 0)
		require.NoError(t, s.DoCircuit(circuit.MustParse("H 0\nM 0\nM 0")))
		r := s.Record()
		assert.Equal(t, r[0], r[1])
		seen[r[0]]++
	}
	assert.Positive(t, seen[true])
	assert.Positive(t, seen[false])
}

func TestFlipProbability(t *testing.T) {
	s := run(t, 0, "M(1) 0 1\nM(0) 0\nM !0")
	assert.Equal(t, []bool{true, true, false, true}, s.Record())
}

func TestResets(t *testing.T) {
	for _, bias := range []int{-1, 1} {
		s := run(t, bias, "H 0\nR 0\nRX 1\nRY 2\nH 3\nMR 3\nX 4\nMRX 4\nMRY 5")
		for q, c := range []byte{'Z', 'X', 'Y', 'Z', 'X', 'Y'} {
			v, ok := s.PeekPauli(pauli.Single(6, q, c))
			assert.Truef(t, ok, "bias %d qubit %d", bias, q)
			assert.Falsef(t, v, "bias %d qubit %d", bias, q)
		}
		rec := s.Record()
		require.Len(t, rec, 3)
		assert.Equal(t, bias < 0, rec[0])
		assert.Equal(t, bias < 0, rec[1])
		assert.Equal(t, bias < 0, rec[2])
	}
}

func TestPairAndProductMeasurements(t *testing.T) {
	s := run(t, 0, "H 0\nCX 0 1\nMXX 0 1\nMZZ 0 1\nMYY 0 1")
	assert.Equal(t, []bool{false, false, true}, s.Record())

	s = run(t, 0, "H 0\nCX 0 1\nMPP X0*X1 Z0*Z1 Y0*Y1 !X0*X1")
	assert.Equal(t, []bool{false, false, true, true}, s.Record())

	s = run(t, -1, "MPP X0*X1\nMPP Z0*Z1 X0*X1")
	assert.Equal(t, []bool{true, false, true}, s.Record())
}

func TestPreconditionFailures(t *testing.T) {
	s := New(2, nil, 1)
	err := s.Do(circuit.Operation{Gate: gates.CX, Targets: []circuit.Target{circuit.Qubit(0)}})
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)

	err = s.Do(circuit.Operation{Gate: gates.NotAGate})
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)

	h := gates.Default.MustAt("H").MustTableau()
	cx := gates.Default.MustAt("CX").MustTableau()
	assert.True(t, errors.Is(s.ApplyTableau(h, 0, 1), gates.ErrPrecondition))
	assert.True(t, errors.Is(s.ApplyTableau(cx, 1, 1), gates.ErrPrecondition))
	assert.True(t, errors.Is(s.ApplyTableau(h, -1), gates.ErrPrecondition))
}

func TestRecordControlledPaulis(t *testing.T) {
	s := run(t, 1, "X 0\nM 0\nCX rec[-1] 1")
	assert.Equal(t, []string{"-Z_", "-_Z"}, pauli.Strings(s.CanonicalStabilizers()))

	s = run(t, 1, "M 0\nCX rec[-1] 1")
	assert.Equal(t, []string{"+Z_", "+_Z"}, pauli.Strings(s.CanonicalStabilizers()))

	s = run(t, -1, "H 0 1\nM 0\nCZ rec[-1] 1")
	assert.Equal(t, []bool{true}, s.Record())
	assert.Equal(t, []string{"-Z_", "-_X"}, pauli.Strings(s.CanonicalStabilizers()))

	s = run(t, 1, "H 0 1\nM 0\nCZ 1 rec[-1]")
	assert.Equal(t, []string{"+Z_", "+_X"}, pauli.Strings(s.CanonicalStabilizers()))

	s = run(t, 1, "X 0\nM 0 1\nCY rec[-2] 2")
	assert.Equal(t, []bool{true, false}, s.Record())
	assert.Equal(t, []string{"-Z__", "+_Z_", "-__Z"}, pauli.Strings(s.CanonicalStabilizers()))

	s = New(2, nil, 1)
	err := s.DoCircuit(circuit.MustParse("CX rec[-1] 0"))
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)
	s = New(2, nil, 1)
	err = s.DoCircuit(circuit.MustParse("M 0\nCX rec[-2] 1"))
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)
}

func TestRegisterGrows(t *testing.T) {
	s := New(0, nil, 1)
	assert.Equal(t, 0, s.NumQubits())
	require.NoError(t, s.DoCircuit(circuit.MustParse("H 3")))
	assert.Equal(t, 4, s.NumQubits())
	assert.Equal(t, []string{"+Z___", "+_Z__", "+__Z_", "+___X"}, pauli.Strings(s.CanonicalStabilizers()))

	v, ok := s.PeekPauli(pauli.Z(6, 5))
	assert.True(t, ok)
	assert.False(t, v)
	_, ok = s.PeekPauli(pauli.X(6, 5))
	assert.False(t, ok)
}
