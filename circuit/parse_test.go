package circuit

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtermstab/gates"
)

func TestParseDecompositionText(t *testing.T) {
	text := `
# Swap as three CNOTs.
CX 0 1
CX 1 0
CX 0 1
`
	c, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, c.Operations, 1)
	assert.Equal(t, gates.CX, c.Operations[0].Gate)
	assert.Len(t, c.Operations[0].Targets, 6)
	assert.Equal(t, "CX 0 1 1 0 0 1\n", c.String())
}

func TestParseAliasesAndCase(t *testing.T) {
	c := MustParse("cnot 0 1\nh_xz 2\nmz 0")
	require.Len(t, c.Operations, 3)
	assert.Equal(t, gates.CX, c.Operations[0].Gate)
	assert.Equal(t, gates.H, c.Operations[1].Gate)
	assert.Equal(t, gates.M, c.Operations[2].Gate)
}

func TestParseArgsAndProducts(t *testing.T) {
	c := MustParse("M(0.125) 0 !1\nMPP(1/8) X0*!Y1 Z2\nMX(1e-3) 4")
	require.Len(t, c.Operations, 3)
	assert.Equal(t, []float64{0.125}, c.Operations[0].Args)
	assert.Equal(t, []Target{Qubit(0), Qubit(1).Inverted()}, c.Operations[0].Targets)
	assert.Equal(t, []float64{0.125}, c.Operations[1].Args)
	assert.Equal(t, []Target{X(0), Combiner(), Y(1).Inverted(), Z(2)}, c.Operations[1].Targets)
	assert.InDelta(t, 0.001, c.Operations[2].Args[0], 1e-15)

	again := MustParse(c.String())
	assert.Equal(t, c, again)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]error{
		"FOO 0":         gates.ErrNotFound,
		"H x":           ErrParse,
		"H 0 1 rec":     ErrParse,
		"M(abc) 0":      ErrParse,
		"M(1/0) 0":      ErrParse,
		"CX 0":          gates.ErrPrecondition,
		"MPP X0**Y1":    ErrParse,
		"MPP 0":         gates.ErrPrecondition,
		"H rec[-1]":     gates.ErrPrecondition,
		"H rec[-0]":     ErrParse,
		"3 H":           ErrParse,
		"H 99999999999": ErrParse,
	}
	for text, want := range cases {
		_, err := Parse(text)
		assert.Truef(t, errors.Is(err, want), "%q: %v", text, err)
	}

	_, err := Parse("H 0\nCX 1")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "line 2"), err.Error())
}

func TestArgFormatting(t *testing.T) {
	assert.Equal(t, "1/2", formatArg(0.5))
	assert.Equal(t, "1/3", formatArg(1.0/3))
	assert.Equal(t, "0.01", formatArg(0.01))
	assert.Equal(t, "1", formatArg(1))
	assert.Equal(t, "0", formatArg(0))

	v, ok := parseArg(" 3/4 ")
	assert.True(t, ok)
	assert.Equal(t, 0.75, v)
	_, ok = parseArg("pi")
	assert.False(t, ok)
	_, ok = parseArg("")
	assert.False(t, ok)
}
