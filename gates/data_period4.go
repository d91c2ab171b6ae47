package gates

func addPeriod4Gates(b *builder) {
	b.add(Gate{
		Name:        "S",
		ID:          S,
		BestInverse: SDag,
		Aliases:     []string{"SQRT_Z"},
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 4 Gates",
			Help: `Principal square root of Z gate.
Phases the amplitude of |1> by i.`,
			TableauData: []string{"+Y", "+Z"},
			FlowData: []string{
				"X -> Y",
				"Z -> Z",
			},
			Decomposition: `
S 0
`,
		}
	})

	b.add(Gate{
		Name:        "S_DAG",
		ID:          SDag,
		BestInverse: S,
		Aliases:     []string{"SQRT_Z_DAG"},
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 4 Gates",
			Help: `Adjoint of the principal square root of Z gate.
Phases the amplitude of |1> by -i.`,
			TableauData: []string{"-Y", "+Z"},
			FlowData: []string{
				"X -> -Y",
				"Z -> Z",
			},
			Decomposition: `
S 0 0 0
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_X",
		ID:          SqrtX,
		BestInverse: SqrtXDag,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 4 Gates",
			Help: `Principal square root of X gate.
Phases the amplitude of |-> by i.`,
			TableauData: []string{"+X", "-Y"},
			FlowData: []string{
				"X -> X",
				"Z -> -Y",
			},
			Decomposition: `
H 0
S 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_X_DAG",
		ID:          SqrtXDag,
		BestInverse: SqrtX,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 4 Gates",
			Help: `Adjoint of the principal square root of X gate.
Phases the amplitude of |-> by -i.`,
			TableauData: []string{"+X", "+Y"},
			FlowData: []string{
				"X -> X",
				"Z -> Y",
			},
			Decomposition: `
S 0
H 0
S 0
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_Y",
		ID:          SqrtY,
		BestInverse: SqrtYDag,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 4 Gates",
			Help: `Principal square root of Y gate.
Phases the amplitude of |-i> by i.`,
			TableauData: []string{"-Z", "+X"},
			FlowData: []string{
				"X -> -Z",
				"Z -> X",
			},
			Decomposition: `
S 0 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "SQRT_Y_DAG",
		ID:          SqrtYDag,
		BestInverse: SqrtY,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 4 Gates",
			Help: `Adjoint of the principal square root of Y gate.
Phases the amplitude of |-i> by -i.`,
			TableauData: []string{"+Z", "-X"},
			FlowData: []string{
				"X -> Z",
				"Z -> -X",
			},
			Decomposition: `
H 0
S 0 0
`,
		}
	})
}
