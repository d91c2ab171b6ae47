package gates

func addCollapsingGates(b *builder) {
	b.add(Gate{
		Name:        "M",
		ID:          M,
		BestInverse: M,
		Aliases:     []string{"MZ"},
		ArgCount:    1,
		Flags:       ProducesResults | IsSingleQubitGate | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help: `Z-basis measurement.
Projects each target qubit into |0> or |1> and reports its value (false=|0>, true=|1>).
An optional argument gives the probability of flipping the reported result.`,
			FlowData: []string{
				"Z -> rec(-1)",
				"Z -> Z",
			},
			Decomposition: `
M 0
`,
		}
	})

	b.add(Gate{
		Name:        "MX",
		ID:          MX,
		BestInverse: MX,
		ArgCount:    1,
		Flags:       ProducesResults | IsSingleQubitGate | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help: `X-basis measurement.
Projects each target qubit into |+> or |-> and reports its value (false=|+>, true=|->).`,
			FlowData: []string{
				"X -> rec(-1)",
				"X -> X",
			},
			Decomposition: `
H 0
M 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "MY",
		ID:          MY,
		BestInverse: MY,
		ArgCount:    1,
		Flags:       ProducesResults | IsSingleQubitGate | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help: `Y-basis measurement.
Projects each target qubit into |i> or |-i> and reports its value (false=|i>, true=|-i>).`,
			FlowData: []string{
				"Y -> rec(-1)",
				"Y -> Y",
			},
			Decomposition: `
S 0 0 0
H 0
M 0
H 0
S 0
`,
		}
	})

	b.add(Gate{
		Name:        "MR",
		ID:          MR,
		BestInverse: MR,
		Aliases:     []string{"MRZ"},
		ArgCount:    1,
		Flags:       ProducesResults | IsReset | IsSingleQubitGate | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help: `Z-basis demolition measurement.
Measures each target in the Z basis and then resets it to |0>.`,
			FlowData: []string{
				"Z -> rec(-1)",
				"1 -> Z",
			},
			Decomposition: `
M 0
R 0
`,
		}
	})

	b.add(Gate{
		Name:        "MRX",
		ID:          MRX,
		BestInverse: MRX,
		ArgCount:    1,
		Flags:       ProducesResults | IsReset | IsSingleQubitGate | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help: `X-basis demolition measurement.
Measures each target in the X basis and then resets it to |+>.`,
			FlowData: []string{
				"X -> rec(-1)",
				"1 -> X",
			},
			Decomposition: `
H 0
M 0
R 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "MRY",
		ID:          MRY,
		BestInverse: MRY,
		ArgCount:    1,
		Flags:       ProducesResults | IsReset | IsSingleQubitGate | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help: `Y-basis demolition measurement.
Measures each target in the Y basis and then resets it to |i>.`,
			FlowData: []string{
				"Y -> rec(-1)",
				"1 -> Y",
			},
			Decomposition: `
S 0 0 0
H 0
M 0
R 0
H 0
S 0
`,
		}
	})

	b.add(Gate{
		Name:        "R",
		ID:          R,
		BestInverse: M,
		Aliases:     []string{"RZ"},
		Flags:       IsReset | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help:     `Z-basis reset. Forces each target qubit into the |0> state.`,
			FlowData: []string{
				"1 -> Z",
			},
			Decomposition: `
R 0
`,
		}
	})

	b.add(Gate{
		Name:        "RX",
		ID:          RX,
		BestInverse: MX,
		Flags:       IsReset | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help:     `X-basis reset. Forces each target qubit into the |+> state.`,
			FlowData: []string{
				"1 -> X",
			},
			Decomposition: `
H 0
R 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "RY",
		ID:          RY,
		BestInverse: MY,
		Flags:       IsReset | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Collapsing Gates",
			Help:     `Y-basis reset. Forces each target qubit into the |i> state.`,
			FlowData: []string{
				"1 -> Y",
			},
			Decomposition: `
S 0 0 0
H 0
R 0
H 0
S 0
`,
		}
	})
}
