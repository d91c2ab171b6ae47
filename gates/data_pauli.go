package gates

func addPauliGates(b *builder) {
	b.add(Gate{
		Name:        "I",
		ID:          I,
		BestInverse: I,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Pauli Gates",
			Help: `The identity gate.
Does nothing to the target qubits.`,
			TableauData: []string{"+X", "+Z"},
			FlowData: []string{
				"X -> X",
				"Z -> Z",
			},
			Decomposition: `
# The identity gate is the empty circuit.
`,
		}
	})

	b.add(Gate{
		Name:        "X",
		ID:          X,
		BestInverse: X,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Pauli Gates",
			Help: `The Pauli X gate.
The bit flip gate.`,
			TableauData: []string{"+X", "-Z"},
			FlowData: []string{
				"X -> X",
				"Z -> -Z",
			},
			Decomposition: `
H 0
S 0 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "Y",
		ID:          Y,
		BestInverse: Y,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Pauli Gates",
			Help: `The Pauli Y gate.
A combined bit flip and phase flip.`,
			TableauData: []string{"-X", "-Z"},
			FlowData: []string{
				"X -> -X",
				"Z -> -Z",
			},
			Decomposition: `
S 0 0
H 0
S 0 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "Z",
		ID:          Z,
		BestInverse: Z,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Pauli Gates",
			Help: `The Pauli Z gate.
The phase flip gate.`,
			TableauData: []string{"-X", "+Z"},
			FlowData: []string{
				"X -> -X",
				"Z -> Z",
			},
			Decomposition: `
S 0 0
`,
		}
	})
}
