package gates

func addPairRotationGates(b *builder) {
	b.add(Gate{
		Name:        "SQRT_XX",
		ID:          SqrtXX,
		BestInverse: SqrtXXDag,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Parity Phasing Gates",
			Help: `Phases the -1 eigenspace of the XX observable by i.`,
			TableauData: []string{"+X_", "+_X", "-YX", "-XY"},
			FlowData: []string{
				"X_ -> X_",
				"Z_ -> -YX",
				"_X -> _X",
				"_Z -> -XY",
			},
			Decomposition: `
H 0 1
S 0 1
H 1
CX 0 1
H 1
H 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_XX_DAG",
		ID:          SqrtXXDag,
		BestInverse: SqrtXX,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Parity Phasing Gates",
			Help: `Phases the -1 eigenspace of the XX observable by -i.`,
			TableauData: []string{"+X_", "+_X", "+YX", "+XY"},
			FlowData: []string{
				"X_ -> X_",
				"Z_ -> YX",
				"_X -> _X",
				"_Z -> XY",
			},
			Decomposition: `
H 0 1
S 0 0 0 1 1 1
H 1
CX 0 1
H 1
H 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_YY",
		ID:          SqrtYY,
		BestInverse: SqrtYYDag,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Parity Phasing Gates",
			Help: `Phases the -1 eigenspace of the YY observable by i.`,
			TableauData: []string{"-ZY", "-YZ", "+XY", "+YX"},
			FlowData: []string{
				"X_ -> -ZY",
				"Z_ -> XY",
				"_X -> -YZ",
				"_Z -> YX",
			},
			Decomposition: `
S 0 0 0 1 1 1
H 0 1
S 0 1
H 1
CX 0 1
H 1
H 0 1
S 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_YY_DAG",
		ID:          SqrtYYDag,
		BestInverse: SqrtYY,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Parity Phasing Gates",
			Help: `Phases the -1 eigenspace of the YY observable by -i.`,
			TableauData: []string{"+ZY", "+YZ", "-XY", "-YX"},
			FlowData: []string{
				"X_ -> ZY",
				"Z_ -> -XY",
				"_X -> YZ",
				"_Z -> -YX",
			},
			Decomposition: `
S 0 0 0 1 1 1
H 0 1
S 0 0 0 1 1 1
H 1
CX 0 1
H 1
H 0 1
S 0 1
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_ZZ",
		ID:          SqrtZZ,
		BestInverse: SqrtZZDag,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Parity Phasing Gates",
			Help: `Phases the -1 eigenspace of the ZZ observable by i.`,
			TableauData: []string{"+YZ", "+ZY", "+Z_", "+_Z"},
			FlowData: []string{
				"X_ -> YZ",
				"Z_ -> Z_",
				"_X -> ZY",
				"_Z -> _Z",
			},
			Decomposition: `
S 0 1
H 1
CX 0 1
H 1
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_ZZ_DAG",
		ID:          SqrtZZDag,
		BestInverse: SqrtZZ,
		Flags:       IsUnitary | TargetsPairs,
	}, func() ExtraData {
		return ExtraData{
			Category: "Parity Phasing Gates",
			Help: `Phases the -1 eigenspace of the ZZ observable by -i.`,
			TableauData: []string{"-YZ", "-ZY", "+Z_", "+_Z"},
			FlowData: []string{
				"X_ -> -YZ",
				"Z_ -> Z_",
				"_X -> -ZY",
				"_Z -> _Z",
			},
			Decomposition: `
S 0 0 0 1 1 1
H 1
CX 0 1
H 1
`,
		}
	})
}
