// Package gates is the catalog of supported Clifford operations: their ids,
// names, capability flags, inverses and the lazily derived metadata (tableau,
// stabilizer flows, decomposition) used to simulate and verify them.
package gates

import (
	"strings"
	"sync"

	"github.com/pkg/errors"

	"qtermstab/flow"
	"qtermstab/tableau"
)

// Type identifies a gate. The zero value is NotAGate.
type Type uint8

const (
	NotAGate Type = iota
	Tick

	I
	X
	Y
	Z

	H
	HXY
	HYZ
	HNXY
	HNXZ
	HNYZ

	S
	SDag
	SqrtX
	SqrtXDag
	SqrtY
	SqrtYDag

	CXYZ
	CZYX
	CNXYZ
	CXNYZ
	CXYNZ
	CNZYX
	CZNYX
	CZYNX

	CX
	CY
	CZ
	XCX
	XCY
	XCZ
	YCX
	YCY
	YCZ

	Swap
	ISwap
	ISwapDag
	SqrtXX
	SqrtXXDag
	SqrtYY
	SqrtYYDag
	SqrtZZ
	SqrtZZDag
	CXSwap
	SwapCX
	CZSwap

	M
	MX
	MY
	MR
	MRX
	MRY
	R
	RX
	RY

	MXX
	MYY
	MZZ

	MPP

	NumTypes
)

// Flags describe how a gate behaves and which targets it accepts.
type Flags uint16

// NoGateFlag is carried only by NotAGate.
const NoGateFlag Flags = 0

const (
	IsUnitary Flags = 1 << iota
	TargetsPairs
	ProducesResults
	IsReset
	IsAnnotation
	TakesNoTargets
	TargetsPauliString
	TargetsCombiners
	IsSingleQubitGate
	ArgIsProbability
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{IsUnitary, "unitary"},
	{TargetsPairs, "pairs"},
	{ProducesResults, "results"},
	{IsReset, "reset"},
	{IsAnnotation, "annotation"},
	{TakesNoTargets, "no-targets"},
	{TargetsPauliString, "pauli-string"},
	{TargetsCombiners, "combiners"},
	{IsSingleQubitGate, "single-qubit"},
	{ArgIsProbability, "probability-arg"},
}

// Has reports whether every bit of want is set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

func (f Flags) String() string {
	if f == NoGateFlag {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ExtraData is the metadata of a gate that is expensive or verbose to build.
type ExtraData struct {
	Category string
	Help     string

	// TableauData lists the X generator images followed by the Z generator
	// images. Only unitary gates have one.
	TableauData []string

	// FlowData lists stabilizer flows in flow.Parse form.
	FlowData []string

	// Decomposition is a circuit over H, S, CX, M and R with the same effect
	// as the gate applied to qubits 0 (and 1 for pair gates).
	Decomposition string
}

// Gate is one catalog record.
type Gate struct {
	ID          Type
	Name        string
	Aliases     []string
	Flags       Flags
	Canonical   Type
	BestInverse Type
	ArgCount    int

	extra   func() ExtraData
	tableau func() tableauResult
	flows   func() flowsResult
}

type tableauResult struct {
	t   tableau.Tableau
	ok  bool
	err error
}

type flowsResult struct {
	flows []flow.Flow
	err   error
}

// Extra returns the gate's metadata. It is derived once per gate.
func (g *Gate) Extra() ExtraData {
	if g.extra == nil {
		return ExtraData{}
	}
	return g.extra()
}

// Tableau returns the gate's tableau. ok is false for non-unitary gates.
func (g *Gate) Tableau() (t tableau.Tableau, ok bool) {
	if g.tableau == nil {
		return tableau.Tableau{}, false
	}
	r := g.tableau()
	if r.err != nil {
		panic(r.err)
	}
	return r.t, r.ok
}

// MustTableau is Tableau for gates known to be unitary.
func (g *Gate) MustTableau() tableau.Tableau {
	t, ok := g.Tableau()
	if !ok {
		panic(errors.Wrapf(ErrPrecondition, "gate %s has no tableau", g.Name))
	}
	return t
}

// Flows returns the gate's declared stabilizer flows.
func (g *Gate) Flows() ([]flow.Flow, error) {
	if g.flows == nil {
		return nil, nil
	}
	r := g.flows()
	return r.flows, r.err
}

// Decomposition returns the decomposition text, or "" when there is none.
func (g *Gate) Decomposition() string {
	return g.Extra().Decomposition
}

// NumTargetsPerApplication is 2 for pair gates, 0 for gates without
// targets and 1 otherwise. Pauli product gates report 1 per product term.
func (g *Gate) NumTargetsPerApplication() int {
	switch {
	case g.Flags.Has(TargetsPairs):
		return 2
	case g.Flags.Has(TakesNoTargets):
		return 0
	default:
		return 1
	}
}

func memoize(g *Gate, derive func() ExtraData) {
	extra := sync.OnceValue(derive)
	g.extra = extra
	g.tableau = sync.OnceValue(func() tableauResult {
		data := extra().TableauData
		if !g.Flags.Has(IsUnitary) || len(data) == 0 {
			return tableauResult{}
		}
		t, err := tableau.FromStrings(data...)
		if err != nil {
			return tableauResult{err: errors.Wrapf(err, "gate %s", g.Name)}
		}
		return tableauResult{t: t, ok: true}
	})
	g.flows = sync.OnceValue(func() flowsResult {
		fs, err := flow.ParseAll(extra().FlowData)
		if err != nil {
			return flowsResult{err: errors.Wrapf(err, "gate %s", g.Name)}
		}
		return flowsResult{flows: fs}
	})
}
