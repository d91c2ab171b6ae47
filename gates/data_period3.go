package gates

func addPeriod3Gates(b *builder) {
	b.add(Gate{
		Name:        "C_XYZ",
		ID:          CXYZ,
		BestInverse: CZYX,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 3 Gates",
			Help: `Left handed period 3 axis cycling gate, sending X -> Y -> Z -> X.`,
			TableauData: []string{"+Y", "+X"},
			FlowData: []string{
				"X -> Y",
				"Z -> X",
			},
			Decomposition: `
S 0 0 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "C_ZYX",
		ID:          CZYX,
		BestInverse: CXYZ,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 3 Gates",
			Help: `Right handed period 3 axis cycling gate, sending Z -> Y -> X -> Z.`,
			TableauData: []string{"+Z", "+Y"},
			FlowData: []string{
				"X -> Z",
				"Z -> Y",
			},
			Decomposition: `
H 0
S 0
`,
		}
	})

	b.add(Gate{
		Name:        "C_NXYZ",
		ID:          CNXYZ,
		BestInverse: CZYNX,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 3 Gates",
			Help: `Period 3 axis cycling gate, sending -X -> Y -> Z -> -X.`,
			TableauData: []string{"-Y", "-X"},
			FlowData: []string{
				"X -> -Y",
				"Z -> -X",
			},
			Decomposition: `
H 0
S 0
H 0
S 0 0 0
`,
		}
	})

	b.add(Gate{
		Name:        "C_XNYZ",
		ID:          CXNYZ,
		BestInverse: CZNYX,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 3 Gates",
			Help: `Period 3 axis cycling gate, sending X -> -Y -> Z -> X.`,
			TableauData: []string{"-Y", "+X"},
			FlowData: []string{
				"X -> -Y",
				"Z -> X",
			},
			Decomposition: `
S 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "C_XYNZ",
		ID:          CXYNZ,
		BestInverse: CNZYX,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 3 Gates",
			Help: `Period 3 axis cycling gate, sending X -> Y -> -Z -> X.`,
			TableauData: []string{"+Y", "-X"},
			FlowData: []string{
				"X -> Y",
				"Z -> -X",
			},
			Decomposition: `
S 0
H 0
S 0 0
`,
		}
	})

	b.add(Gate{
		Name:        "C_NZYX",
		ID:          CNZYX,
		BestInverse: CXYNZ,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 3 Gates",
			Help: `Period 3 axis cycling gate, sending -Z -> Y -> X -> -Z.`,
			TableauData: []string{"-Z", "-Y"},
			FlowData: []string{
				"X -> -Z",
				"Z -> -Y",
			},
			Decomposition: `
H 0
S 0
H 0
S 0 0
H 0
`,
		}
	})

	b.add(Gate{
		Name:        "C_ZNYX",
		ID:          CZNYX,
		BestInverse: CXNYZ,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 3 Gates",
			Help: `Period 3 axis cycling gate, sending Z -> -Y -> X -> Z.`,
			TableauData: []string{"+Z", "-Y"},
			FlowData: []string{
				"X -> Z",
				"Z -> -Y",
			},
			Decomposition: `
H 0
S 0 0 0
`,
		}
	})

	b.add(Gate{
		Name:        "C_ZYNX",
		ID:          CZYNX,
		BestInverse: CNXYZ,
		Flags:       IsUnitary | IsSingleQubitGate,
	}, func() ExtraData {
		return ExtraData{
			Category: "Period 3 Gates",
			Help: `Period 3 axis cycling gate, sending Z -> Y -> -X -> Z.`,
			TableauData: []string{"-Z", "+Y"},
			FlowData: []string{
				"X -> -Z",
				"Z -> Y",
			},
			Decomposition: `
S 0 0
H 0
S 0
`,
		}
	})
}
