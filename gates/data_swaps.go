package gates

func addSwapGates(b *builder) {
	b.add(Gate{
		Name:        "SWAP",
		ID:          Swap,
		BestInverse: Swap,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Swap Gates",
			Help: `Swaps two qubits.`,
			TableauData: []string{"+_X", "+X_", "+_Z", "+Z_"},
			FlowData: []string{
				"X_ -> _X",
				"Z_ -> _Z",
				"_X -> X_",
				"_Z -> Z_",
			},
			Decomposition: `
CX 0 1
CX 1 0
CX 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "ISWAP",
		ID:          ISwap,
		BestInverse: ISwapDag,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Swap Gates",
			Help: `Swaps two qubits and phases the -1 eigenspace of the ZZ observable by i.
Equivalent to SWAP then CZ then S on both targets.`,
			TableauData: []string{"+ZY", "+YZ", "+_Z", "+Z_"},
			FlowData: []string{
				"X_ -> ZY",
				"Z_ -> _Z",
				"_X -> YZ",
				"_Z -> Z_",
			},
			Decomposition: `
S 0 1
H 1
CX 0 1
H 1
CX 0 1
CX 1 0
CX 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "ISWAP_DAG",
		ID:          ISwapDag,
		BestInverse: ISwap,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Swap Gates",
			Help: `Swaps two qubits and phases the -1 eigenspace of the ZZ observable by -i.
Equivalent to SWAP then CZ then S_DAG on both targets.`,
			TableauData: []string{"-ZY", "-YZ", "+_Z", "+Z_"},
			FlowData: []string{
				"X_ -> -ZY",
				"Z_ -> _Z",
				"_X -> -YZ",
				"_Z -> Z_",
			},
			Decomposition: `
S 0 0 0 1 1 1
H 1
CX 0 1
H 1
CX 0 1
CX 1 0
CX 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "CXSWAP",
		ID:          CXSwap,
		BestInverse: SwapCX,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Swap Gates",
			Help: `A combination CX-and-SWAP gate.
This gate is kak-equivalent to the iswap gate.`,
			TableauData: []string{"+XX", "+X_", "+_Z", "+ZZ"},
			FlowData: []string{
				"X_ -> XX",
				"Z_ -> _Z",
				"_X -> X_",
				"_Z -> ZZ",
			},
			Decomposition: `
CX 1 0
CX 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "SWAPCX",
		ID:          SwapCX,
		BestInverse: CXSwap,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Swap Gates",
			Help: `A combination SWAP-and-CX gate.
This gate is kak-equivalent to the iswap gate.`,
			TableauData: []string{"+_X", "+XX", "+ZZ", "+Z_"},
			FlowData: []string{
				"X_ -> _X",
				"Z_ -> ZZ",
				"_X -> XX",
				"_Z -> Z_",
			},
			Decomposition: `
CX 0 1
CX 1 0
`,
		}
	})

	b.add(Gate{
		Name:        "CZSWAP",
		ID:          CZSwap,
		BestInverse: CZSwap,
		Aliases:     []string{"SWAPCZ"},
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Swap Gates",
			Help: `A combination CZ-and-SWAP gate.
This gate is kak-equivalent to the iswap gate.`,
			TableauData: []string{"+ZX", "+XZ", "+_Z", "+Z_"},
			FlowData: []string{
				"X_ -> ZX",
				"Z_ -> _Z",
				"_X -> XZ",
				"_Z -> Z_",
			},
			Decomposition: `
H 1
CX 0 1
H 1
CX 0 1
CX 1 0
CX 0 1
`,
		}
	})
}
