package gates

func addPauliProductGates(b *builder) {
	b.add(Gate{
		Name:        "MPP",
		ID:          MPP,
		BestInverse: MPP,
		ArgCount:    1,
		Flags:       ProducesResults | TargetsPauliString | TargetsCombiners | ArgIsProbability,
	}, func() ExtraData {
		return ExtraData{
			Category: "Pauli Product Gates",
			Help: `Measures Pauli products.
Targets are Pauli-qualified qubits joined by combiners, e.g. "MPP X0*Y1*Z2 X3*X4".
Each product is one measurement and reports false for its +1 eigenvalue.`,
			// Written for the probe layout X0*Y1*Z2 X3*X4.
			FlowData: []string{
				"XYZ__ -> rec(-2)",
				"___XX -> rec(-1)",
				"XYZ__ -> XYZ__",
				"___XX -> ___XX",
			},
			Decomposition: `
H 0
S 1 1 1
H 1
H 3 4
CX 1 0 2 0 4 3
M 0 3
CX 1 0 2 0 4 3
H 0 3 4
H 1
S 1
`,
		}
	})
}
