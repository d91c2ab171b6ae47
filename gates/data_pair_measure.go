package gates

func addPairMeasurementGates(b *builder) {
	b.add(Gate{
		Name:        "MXX",
		ID:          MXX,
		BestInverse: MXX,
		ArgCount:    1,
		Flags:       ProducesResults | TargetsPairs | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Pair Measurement Gates",
			Help: `Two-qubit X basis parity measurement.
Measures the XX observable of each target pair without measuring X on either qubit alone.`,
			FlowData: []string{
				"X_ -> X_",
				"_X -> _X",
				"ZZ -> ZZ",
				"XX -> rec(-1)",
			},
			Decomposition: `
CX 0 1
H 0
M 0
H 0
CX 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "MYY",
		ID:          MYY,
		BestInverse: MYY,
		ArgCount:    1,
		Flags:       ProducesResults | TargetsPairs | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Pair Measurement Gates",
			Help: `Two-qubit Y basis parity measurement.
Measures the YY observable of each target pair without measuring Y on either qubit alone.`,
			FlowData: []string{
				"Y_ -> Y_",
				"_Y -> _Y",
				"XX -> XX",
				"YY -> rec(-1)",
			},
			Decomposition: `
S 0 0 0 1 1 1
H 0 1
CX 0 1
M 1
CX 0 1
H 0 1
S 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "MZZ",
		ID:          MZZ,
		BestInverse: MZZ,
		ArgCount:    1,
		Flags:       ProducesResults | TargetsPairs | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Pair Measurement Gates",
			Help: `Two-qubit Z basis parity measurement.
Measures the ZZ observable of each target pair without measuring Z on either qubit alone.`,
			FlowData: []string{
				"Z_ -> Z_",
				"_Z -> _Z",
				"XX -> XX",
				"ZZ -> rec(-1)",
			},
			Decomposition: `
CX 0 1
M 1
CX 0 1
`,
		}
	})
}
