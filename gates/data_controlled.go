package gates

func addControlledGates(b *builder) {
	b.add(Gate{
		Name:        "CX",
		ID:          CX,
		BestInverse: CX,
		Aliases:     []string{"CNOT", "ZCX"},
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The Z-controlled X gate.
Applies an X gate to the target if the control is in the |1> state.
Negates the amplitude of the |1>|-> state.`,
			TableauData: []string{"+XX", "+_X", "+Z_", "+ZZ"},
			FlowData: []string{
				"X_ -> XX",
				"Z_ -> Z_",
				"_X -> _X",
				"_Z -> ZZ",
			},
			Decomposition: `
CX 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "CY",
		ID:          CY,
		BestInverse: CY,
		Aliases:     []string{"ZCY"},
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The Z-controlled Y gate.
Applies a Y gate to the target if the control is in the |1> state.
Negates the amplitude of the |1>|-i> state.`,
			TableauData: []string{"+XY", "+ZX", "+Z_", "+ZZ"},
			FlowData: []string{
				"X_ -> XY",
				"Z_ -> Z_",
				"_X -> ZX",
				"_Z -> ZZ",
			},
			Decomposition: `
S 1 1 1
CX 0 1
S 1
`,
		}
	})

	b.add(Gate{
		Name:        "CZ",
		ID:          CZ,
		BestInverse: CZ,
		Aliases:     []string{"ZCZ"},
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The Z-controlled Z gate.
Applies a Z gate to the target if the control is in the |1> state.
Negates the amplitude of the |1>|1> state.`,
			TableauData: []string{"+XZ", "+ZX", "+Z_", "+_Z"},
			FlowData: []string{
				"X_ -> XZ",
				"Z_ -> Z_",
				"_X -> ZX",
				"_Z -> _Z",
			},
			Decomposition: `
H 1
CX 0 1
H 1
`,
		}
	})

	b.add(Gate{
		Name:        "XCX",
		ID:          XCX,
		BestInverse: XCX,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The X-controlled X gate.
First qubit is the control, second qubit is the target.
Negates the amplitude of the |->|-> state.`,
			TableauData: []string{"+X_", "+_X", "+ZX", "+XZ"},
			FlowData: []string{
				"X_ -> X_",
				"Z_ -> ZX",
				"_X -> _X",
				"_Z -> XZ",
			},
			Decomposition: `
H 0
CX 0 1
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "XCY",
		ID:          XCY,
		BestInverse: XCY,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The X-controlled Y gate.
First qubit is the control, second qubit is the target.
Negates the amplitude of the |->|-i> state.`,
			TableauData: []string{"+X_", "+XX", "+ZY", "+XZ"},
			FlowData: []string{
				"X_ -> X_",
				"Z_ -> ZY",
				"_X -> XX",
				"_Z -> XZ",
			},
			Decomposition: `
H 0
S 1 1 1
CX 0 1
S 1
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "XCZ",
		ID:          XCZ,
		BestInverse: XCZ,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The X-controlled Z gate.
First qubit is the control, second qubit is the target.
Negates the amplitude of the |->|1> state.`,
			TableauData: []string{"+X_", "+XX", "+ZZ", "+_Z"},
			FlowData: []string{
				"X_ -> X_",
				"Z_ -> ZZ",
				"_X -> XX",
				"_Z -> _Z",
			},
			Decomposition: `
CX 1 0
`,
		}
	})

	b.add(Gate{
		Name:        "YCX",
		ID:          YCX,
		BestInverse: YCX,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The Y-controlled X gate.
First qubit is the control, second qubit is the target.
Negates the amplitude of the |-i>|-> state.`,
			TableauData: []string{"+XX", "+_X", "+ZX", "+YZ"},
			FlowData: []string{
				"X_ -> XX",
				"Z_ -> ZX",
				"_X -> _X",
				"_Z -> YZ",
			},
			Decomposition: `
S 0 0 0
H 0
CX 0 1
H 0
S 0
`,
		}
	})

	b.add(Gate{
		Name:        "YCY",
		ID:          YCY,
		BestInverse: YCY,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The Y-controlled Y gate.
First qubit is the control, second qubit is the target.
Negates the amplitude of the |-i>|-i> state.`,
			TableauData: []string{"+XY", "+YX", "+ZY", "+YZ"},
			FlowData: []string{
				"X_ -> XY",
				"Z_ -> ZY",
				"_X -> YX",
				"_Z -> YZ",
			},
			Decomposition: `
S 0 0 0
H 0
S 1 1 1
CX 0 1
S 1
H 0
S 0
`,
		}
	})

	b.add(Gate{
		Name:        "YCZ",
		ID:          YCZ,
		BestInverse: YCZ,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Controlled Gates",
			Help: `The Y-controlled Z gate.
First qubit is the control, second qubit is the target.
Negates the amplitude of the |-i>|1> state.`,
			TableauData: []string{"+XZ", "+YX", "+ZZ", "+_Z"},
			FlowData: []string{
				"X_ -> XZ",
				"Z_ -> ZZ",
				"_X -> YX",
				"_Z -> _Z",
			},
			Decomposition: `
S 0 0 0
CX 1 0
S 0
`,
		}
	})
}
