package gates

func addAnnotations(b *builder) {
	b.add(Gate{
		Name:        "TICK",
		ID:          Tick,
		BestInverse: Tick,
		Flags:       IsAnnotation | TakesNoTargets,
	}, func() ExtraData {
		return ExtraData{
			Category: "Annotations",
			Help: `Annotates the end of a layer of gates.
Has no effect on the simulated state.`,
		}
	})
}
