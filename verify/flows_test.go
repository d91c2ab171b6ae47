package verify

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"qtermstab/circuit"
	"qtermstab/flow"
	"qtermstab/gates"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func parseFlows(t *testing.T, texts ...string) []flow.Flow {
	t.Helper()
	flows, err := flow.ParseAll(texts)
	require.NoError(t, err)
	return flows
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(5, 11))
}

func TestHadamardFlows(t *testing.T) {
	c := circuit.MustParse("H 0")
	got, err := CheckFlows(256, newRand(), c, parseFlows(t, "X -> Z", "Z -> X"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, got)

	got, err = CheckFlows(256, newRand(), c, parseFlows(t, "X -> X", "Z -> -X", "Y -> -Y", "X -> Y"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false}, got)

	got, err = CheckFlows(256, newRand(), c, parseFlows(t, "Z -> -X", "X -> X"), Options{Unsigned: true})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got)
}

func TestTwoQubitFlows(t *testing.T) {
	c := circuit.MustParse("CX 0 1")
	got, err := CheckFlows(64, newRand(), c, parseFlows(t,
		"X_ -> XX",
		"_Z -> ZZ",
		"Z_ -> Z_",
		"_X -> _X",
		"X_ -> X_",
	), Options{})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true, false}, got)
}

func TestMeasurementFlows(t *testing.T) {
	c := circuit.MustParse("M 0")
	got, err := CheckFlows(128, newRand(), c, parseFlows(t,
		"Z -> rec(-1)",
		"Z -> Z",
		"1 -> Z xor rec(-1)",
		"X -> rec(-1)",
		"X -> X",
	), Options{})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false, false}, got)

	c = circuit.MustParse("H 0\nCX 0 1\nM 0 1")
	got, err = CheckFlows(128, newRand(), c, parseFlows(t,
		"1 -> rec(-1) xor rec(-2)",
		"1 -> rec(-1)",
		"XX -> ZZ",
	), Options{})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, got)

	c = circuit.MustParse("CX 0 1\nM 1")
	got, err = CheckFlows(128, newRand(), c, parseFlows(t, "ZZ -> rec(-1)", "Z_ -> Z_", "_Z -> rec(-1)"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, got)
}

func TestRecordControlledFlows(t *testing.T) {
	c := circuit.MustParse("M 0\nCX rec[-1] 1")
	got, err := CheckFlows(128, newRand(), c, parseFlows(t,
		"ZZ -> _Z",
		"_Z -> _Z",
		"_Z -> _Z xor rec(-1)",
		"_X -> _X",
	), Options{})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, true}, got)
}

func TestCheckFlowsPreconditions(t *testing.T) {
	c := circuit.MustParse("M 0")
	_, err := CheckFlows(8, newRand(), c, parseFlows(t, "Z -> rec(-2)"), Options{})
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)

	_, err = CheckFlows(0, newRand(), c, nil, Options{})
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)

	_, err = CheckFlows(1, nil, c, nil, Options{})
	assert.True(t, errors.Is(err, gates.ErrPrecondition), err)

	got, err := CheckFlows(1, newRand(), c, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProbeTargets(t *testing.T) {
	cat := gates.Default
	render := func(name string) string {
		var c circuit.Circuit
		g := cat.MustAt(name)
		targets := ProbeTargets(g)
		if len(targets) == 0 {
			return ""
		}
		require.NoError(t, c.Append(g.ID, targets, nil))
		return c.String()
	}
	assert.Equal(t, "H 0\n", render("H"))
	assert.Equal(t, "CX 0 1\n", render("CNOT"))
	assert.Equal(t, "MPP X0*Y1*Z2 X3*X4\n", render("MPP"))
	assert.Equal(t, "", render("TICK"))
}

func TestGateAndDecompositionFlows(t *testing.T) {
	for _, name := range []string{"H", "S", "CX", "ISWAP", "SQRT_XX", "M", "MRX", "RY", "MYY", "MPP"} {
		g := gates.Default.MustAt(name)
		flows, err := g.Flows()
		require.NoError(t, err)

		got, err := CheckGateFlows(g, 64, newRand(), Options{})
		require.NoError(t, err, name)
		require.Len(t, got, len(flows), name)
		for k, ok := range got {
			assert.Truef(t, ok, "%s flow %s", name, flows[k])
		}

		got, err = CheckDecompositionFlows(g, 64, newRand(), Options{})
		require.NoError(t, err, name)
		require.Len(t, got, len(flows), name)
		for k, ok := range got {
			assert.Truef(t, ok, "%s decomposition flow %s", name, flows[k])
		}
	}

	got, err := CheckGateFlows(gates.Default.MustAt("TICK"), 8, newRand(), Options{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWrongCircuitFailsDeclaredFlows(t *testing.T) {
	flows, err := gates.Default.MustAt("H").Flows()
	require.NoError(t, err)
	for _, text := range []string{"S 0", "SQRT_Y 0", "H 0\nZ 0", "I 0"} {
		got, err := CheckFlows(64, newRand(), circuit.MustParse(text), flows, Options{})
		require.NoError(t, err)
		assert.Containsf(t, got, false, text)
	}
}
