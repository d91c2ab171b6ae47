package gates

func addHadamardGates(b *builder) {
	b.add(Gate{
		Name:        "H",
		ID:          H,
		BestInverse: H,
		Aliases:     []string{"H_XZ"},
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Hadamard-like Gates",
			Help: `The Hadamard gate.
Swaps the X and Z axes.`,
			TableauData: []string{"+Z", "+X"},
			FlowData: []string{
				"X -> Z",
				"Z -> X",
			},
			Decomposition: `
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "H_XY",
		ID:          HXY,
		BestInverse: HXY,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Hadamard-like Gates",
			Help: `A variant of the Hadamard gate that swaps the X and Y axes (instead of X and Z).`,
			TableauData: []string{"+Y", "-Z"},
			FlowData: []string{
				"X -> Y",
				"Z -> -Z",
			},
			Decomposition: `
H 0
S 0 0
H 0
S 0
`,
		}
	})

	b.add(Gate{
		Name:        "H_YZ",
		ID:          HYZ,
		BestInverse: HYZ,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Hadamard-like Gates",
			Help: `A variant of the Hadamard gate that swaps the Y and Z axes (instead of X and Z).`,
			TableauData: []string{"-X", "+Y"},
			FlowData: []string{
				"X -> -X",
				"Z -> Y",
			},
			Decomposition: `
H 0
S 0
H 0
S 0 0
`,
		}
	})

	b.add(Gate{
		Name:        "H_NXY",
		ID:          HNXY,
		BestInverse: HNXY,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Hadamard-like Gates",
			Help: `A variant of the Hadamard gate that swaps the -X and +Y axes.`,
			TableauData: []string{"-Y", "-Z"},
			FlowData: []string{
				"X -> -Y",
				"Z -> -Z",
			},
			Decomposition: `
S 0
H 0
S 0 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "H_NXZ",
		ID:          HNXZ,
		BestInverse: HNXZ,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Hadamard-like Gates",
			Help: `A variant of the Hadamard gate that swaps the -X and +Z axes.`,
			TableauData: []string{"-Z", "-X"},
			FlowData: []string{
				"X -> -Z",
				"Z -> -X",
			},
			Decomposition: `
S 0 0
H 0
S 0 0
`,
		}
	})

	b.add(Gate{
		Name:        "H_NYZ",
		ID:          HNYZ,
		BestInverse: HNYZ,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Hadamard-like Gates",
			Help: `A variant of the Hadamard gate that swaps the -Y and +Z axes.`,
			TableauData: []string{"-X", "-Y"},
			FlowData: []string{
				"X -> -X",
				"Z -> -Y",
			},
			Decomposition: `
S 0 0
H 0
S 0
H 0
`,
		}
	})
}
