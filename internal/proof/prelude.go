package proof

// Prelude builds the base Context §4.12 calls for: Entity : Type, the
// propositional connectives and their intro/elim constants, and identity.
// Every theorem's own Context extends this one with its premise
// hypotheses (h1, h2, ...) bound to the premises' kernel translations.
func Prelude() Context {
	ctx := NewContext()

	entity := Sort{Kind: SortType, Level: 0}
	prop := Sort{Kind: SortProp}

	ctx = ctx.With("Entity", entity)

	// And, Or : Prop -> Prop -> Prop
	propToPropToProp := Pi{Param: "_", ParamType: prop, Body: Pi{Param: "_", ParamType: prop, Body: prop}}
	ctx = ctx.With("And", propToPropToProp)
	ctx = ctx.With("Or", propToPropToProp)

	// Not : Prop -> Prop
	ctx = ctx.With("Not", Pi{Param: "_", ParamType: prop, Body: prop})

	// Eq : Pi(A:Type). A -> A -> Prop
	ctx = ctx.With("Eq", Pi{
		Param: "A", ParamType: entity,
		Body: Pi{Param: "_", ParamType: Var{Name: "A"}, Body: Pi{Param: "_", ParamType: Var{Name: "A"}, Body: prop}},
	})

	// Ex : Pi(A:Type). (A -> Prop) -> Prop, the existential's type
	// constructor; a witness is supplied by applying its predicate
	// argument to a concrete Entity.
	ctx = ctx.With("Ex", Pi{
		Param: "A", ParamType: entity,
		Body: Pi{Param: "_", ParamType: Pi{Param: "_", ParamType: Var{Name: "A"}, Body: prop}, Body: prop},
	})

	// and_intro : Pi(A:Prop). Pi(B:Prop). A -> B -> And A B
	ctx = ctx.With("and_intro", Pi{
		Param: "A", ParamType: prop,
		Body: Pi{Param: "B", ParamType: prop,
			Body: Pi{Param: "_", ParamType: Var{Name: "A"},
				Body: Pi{Param: "_", ParamType: Var{Name: "B"},
					Body: App{Fn: App{Fn: Global{Name: "And"}, Arg: Var{Name: "A"}}, Arg: Var{Name: "B"}}}}},
	})

	// and_elim_left : Pi(A:Prop). Pi(B:Prop). And A B -> A
	ctx = ctx.With("and_elim_left", Pi{
		Param: "A", ParamType: prop,
		Body: Pi{Param: "B", ParamType: prop,
			Body: Pi{Param: "_", ParamType: App{Fn: App{Fn: Global{Name: "And"}, Arg: Var{Name: "A"}}, Arg: Var{Name: "B"}},
				Body: Var{Name: "A"}}},
	})

	// and_elim_right : Pi(A:Prop). Pi(B:Prop). And A B -> B
	ctx = ctx.With("and_elim_right", Pi{
		Param: "A", ParamType: prop,
		Body: Pi{Param: "B", ParamType: prop,
			Body: Pi{Param: "_", ParamType: App{Fn: App{Fn: Global{Name: "And"}, Arg: Var{Name: "A"}}, Arg: Var{Name: "B"}},
				Body: Var{Name: "B"}}},
	})

	// or_inl : Pi(A:Prop). Pi(B:Prop). A -> Or A B
	ctx = ctx.With("or_inl", Pi{
		Param: "A", ParamType: prop,
		Body: Pi{Param: "B", ParamType: prop,
			Body: Pi{Param: "_", ParamType: Var{Name: "A"},
				Body: App{Fn: App{Fn: Global{Name: "Or"}, Arg: Var{Name: "A"}}, Arg: Var{Name: "B"}}}},
	})

	// or_inr : Pi(A:Prop). Pi(B:Prop). B -> Or A B
	ctx = ctx.With("or_inr", Pi{
		Param: "A", ParamType: prop,
		Body: Pi{Param: "B", ParamType: prop,
			Body: Pi{Param: "_", ParamType: Var{Name: "B"},
				Body: App{Fn: App{Fn: Global{Name: "Or"}, Arg: Var{Name: "A"}}, Arg: Var{Name: "B"}}}},
	})

	// or_elim : Pi(A:Prop). Pi(B:Prop). Pi(C:Prop). Or A B -> (A -> C) -> (B -> C) -> C
	ctx = ctx.With("or_elim", Pi{
		Param: "A", ParamType: prop,
		Body: Pi{Param: "B", ParamType: prop,
			Body: Pi{Param: "C", ParamType: prop,
				Body: Pi{Param: "_", ParamType: App{Fn: App{Fn: Global{Name: "Or"}, Arg: Var{Name: "A"}}, Arg: Var{Name: "B"}},
					Body: Pi{Param: "_", ParamType: Pi{Param: "_", ParamType: Var{Name: "A"}, Body: Var{Name: "C"}},
						Body: Pi{Param: "_", ParamType: Pi{Param: "_", ParamType: Var{Name: "B"}, Body: Var{Name: "C"}},
							Body: Var{Name: "C"}}}}}},
	})

	// ex_intro : Pi(A:Type). Pi(P: A -> Prop). Pi(w:A). P w -> Ex A P
	ctx = ctx.With("ex_intro", Pi{
		Param: "A", ParamType: entity,
		Body: Pi{Param: "P", ParamType: Pi{Param: "_", ParamType: Var{Name: "A"}, Body: prop},
			Body: Pi{Param: "w", ParamType: Var{Name: "A"},
				Body: Pi{Param: "_", ParamType: App{Fn: Var{Name: "P"}, Arg: Var{Name: "w"}},
					Body: App{Fn: App{Fn: Global{Name: "Ex"}, Arg: Var{Name: "A"}}, Arg: Var{Name: "P"}}}}},
	})

	return ctx
}
