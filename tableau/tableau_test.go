package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtermstab/pauli"
)

var (
	hTableau  = MustFromStrings("+Z", "+X")
	sTableau  = MustFromStrings("+Y", "+Z")
	cxTableau = MustFromStrings("+XX", "+_X", "+Z_", "+ZZ")
)

func TestFromStringsRejectsBadInput(t *testing.T) {
	_, err := FromStrings("+X")
	assert.Error(t, err)
	_, err = FromStrings("+X", "+X")
	assert.Error(t, err)
	_, err = FromStrings("+X", "+ZZ")
	assert.Error(t, err)
	_, err = FromStrings("+Q", "+Z")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	assert.Equal(t, "+Z", hTableau.Apply(pauli.MustParse("X")).String())
	assert.Equal(t, "-Y", hTableau.Apply(pauli.MustParse("Y")).String())
	assert.Equal(t, "-X", sTableau.Apply(pauli.MustParse("Y")).String())
	assert.Equal(t, "+X", sTableau.Apply(pauli.MustParse("-Y")).String())
	assert.Equal(t, "+YX", cxTableau.Apply(pauli.MustParse("Y_")).String())
	assert.Equal(t, "-YY", cxTableau.Apply(pauli.MustParse("XZ")).String())
	assert.Equal(t, "+__", cxTableau.Apply(pauli.MustParse("__")).String())
}

func TestApplyWithin(t *testing.T) {
	p := pauli.MustParse("+Z_X")
	got := cxTableau.ApplyWithin(p, []int{2, 0})
	assert.Equal(t, "-Y_Y", got.String())
	assert.Equal(t, "+Z_X", p.String())

	got = hTableau.ApplyWithin(pauli.MustParse("-XYZ"), []int{1})
	assert.Equal(t, "+XYZ", got.String())
}

func TestThen(t *testing.T) {
	assert.True(t, hTableau.Then(hTableau).IsIdentity())
	assert.Equal(t, []string{"-X", "+Z"}, sTableau.Then(sTableau).Strings())
	assert.True(t, cxTableau.Then(cxTableau).IsIdentity())
}

func TestInverse(t *testing.T) {
	assert.Equal(t, []string{"-Y", "+Z"}, sTableau.Inverse().Strings())
	assert.True(t, hTableau.Inverse().Equal(hTableau))
	assert.True(t, cxTableau.Inverse().Equal(cxTableau))

	iswap := MustFromStrings("+ZY", "+YZ", "+_Z", "+Z_")
	inv := iswap.Inverse()
	assert.Equal(t, []string{"-ZY", "-YZ", "+_Z", "+Z_"}, inv.Strings())
	assert.True(t, iswap.Then(inv).IsIdentity())
	assert.True(t, inv.Then(iswap).IsIdentity())
}

func TestIdentityAndString(t *testing.T) {
	id := Identity(2)
	require.True(t, id.IsValid())
	assert.Equal(t, []string{"+X_", "+_X", "+Z_", "+_Z"}, id.Strings())
	assert.Equal(t, "X0 -> +Z\nZ0 -> +X\n", hTableau.String())
	assert.False(t, id.Equal(Identity(3)))
}
