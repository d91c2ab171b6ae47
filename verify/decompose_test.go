package verify

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtermstab/circuit"
	"qtermstab/gates"
	"qtermstab/pauli"
)

func eprCircuit(t *testing.T, qubits ...uint32) circuit.Circuit {
	t.Helper()
	c, err := EPRProbe(qubits)
	require.NoError(t, err)
	return c
}

func TestEPRProbe(t *testing.T) {
	assert.Equal(t, "H 0\nCX 0 2\n", eprCircuit(t, 0).String())
	assert.Equal(t, "H 0 1\nCX 0 2 1 3\n", eprCircuit(t, 0, 1).String())
	assert.Empty(t, eprCircuit(t).Operations)

	c := eprCircuit(t, circuit.MaxQubit-2)
	assert.Equal(t, int(circuit.MaxQubit)+1, c.CountQubits())

	for _, q := range []uint32{circuit.MaxQubit - 1, circuit.MaxQubit, 1 << 24} {
		_, err := EPRProbe([]uint32{0, q})
		assert.Truef(t, errors.Is(err, gates.ErrPrecondition), "qubit %d: %v", q, err)
	}
}

func TestCheckGeneratorsRejectsOtherGates(t *testing.T) {
	for _, text := range []string{"SQRT_X 0", "CZ 0 1", "H 0\nS_DAG 0"} {
		err := checkGenerators("G", circuit.MustParse(text))
		assert.Truef(t, errors.Is(err, gates.ErrPrecondition), "%q: %v", text, err)
	}
	assert.NoError(t, checkGenerators("G", circuit.MustParse("H 0\nS 0\nCX 0 1\nM 0\nR 0")))
	assert.NoError(t, checkGenerators("G", circuit.Circuit{}))
}

func TestEquivalenceValue(t *testing.T) {
	probe := eprCircuit(t, 0)
	value := func(text string) [2][]pauli.String {
		v, err := EquivalenceValue(probe.Concat(circuit.MustParse(text)), newRand())
		require.NoError(t, err)
		return v
	}
	assert.True(t, equivalent(value("Z 0"), value("S 0 0")))
	assert.True(t, equivalent(value("H 0"), value("S 0\nSQRT_X 0\nS 0")))
	assert.False(t, equivalent(value("S 0"), value("S_DAG 0")))
	assert.False(t, equivalent(value("M 0"), value("MX 0")))

	// A reset after a measurement leaves the outcome only in the record.
	assert.True(t, equivalent(value("MR 0"), value("M 0\nR 0")))

	v := value("M 0")
	assert.NotEqual(t, pauli.Strings(v[0]), pauli.Strings(v[1]))

	_, err := EquivalenceValue(circuit.MustParse("H 0\nM 0 0"), newRand())
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)
}

func TestCheckDecompositionCatalog(t *testing.T) {
	items := gates.Default.Items()
	for i := 1; i < len(items); i++ {
		g := &items[i]
		ok, err := CheckDecomposition(g, newRand())
		switch {
		case g.Flags.Has(gates.TargetsPauliString):
			assert.Truef(t, errors.Is(err, ErrExempt), "%s: %v", g.Name, err)
		case g.Flags.Has(gates.IsAnnotation):
			assert.Truef(t, errors.Is(err, ErrNoDecomposition), "%s: %v", g.Name, err)
		default:
			require.NoError(t, err, g.Name)
			assert.True(t, ok, g.Name)
		}
	}
}

func TestCheckInverseAndUnitary(t *testing.T) {
	items := gates.Default.Items()
	for i := 1; i < len(items); i++ {
		g := &items[i]
		if !g.Flags.Has(gates.IsUnitary) {
			_, err := CheckInverse(g)
			assert.True(t, errors.Is(err, gates.ErrPrecondition), g.Name)
			_, err = CheckUnitary(g)
			assert.True(t, errors.Is(err, gates.ErrPrecondition), g.Name)
			continue
		}
		ok, err := CheckInverse(g)
		require.NoError(t, err, g.Name)
		assert.True(t, ok, g.Name)

		ok, err = CheckUnitary(g)
		require.NoError(t, err, g.Name)
		assert.True(t, ok, g.Name)
	}
}
