package lexicon

// Sort subsumption hierarchy consulted by the semantic lowering stage when
// checking that a predicate's argument sorts are compatible with the sorts
// of the terms filling them (spec's sortal well-formedness check). Entity
// is the universal sort; every other sort subsumes into it directly or
// transitively.
var sortParent = map[string]string{
	"Human":   "Animate",
	"Animate": "Physical",
	"Physical": "Entity",
	"Abstract": "Entity",
	"Event":    "Entity",
}

// Subsumes reports whether super is sort, or an ancestor of sort, in the
// sort hierarchy: Subsumes("Animate", "Human") is true because every Human
// is Animate.
func Subsumes(super, sort string) bool {
	for s := sort; s != ""; s = sortParent[s] {
		if s == super {
			return true
		}
	}
	return false
}

// PredicateArgSort returns the sort a predicate's argument is expected to
// satisfy, if the ontology constrains it.
func PredicateArgSort(predicate string) (string, bool) {
	sort, ok := Load().Ontology.PredicateSorts[predicate]
	return sort, ok
}

// PartWholes returns the wholes that part can be a part of, per the
// ontology's mereology table ("wheel" -> ["car"]).
func PartWholes(part string) []string {
	return Load().Ontology.PartWhole[part]
}

// NounHypernyms returns lemma's hypernym chain, nearest first, consulting
// both the noun entry itself and the axioms' supplementary table.
func NounHypernyms(lemma string) []string {
	if n, ok := LookupNoun(lemma); ok && len(n.Hypernyms) > 0 {
		return n.Hypernyms
	}
	return Load().Axioms.NounHypernyms[lemma]
}

// NounEntailments returns the unary predicates a noun's denotation entails,
// e.g. "farmer" entails "person".
func NounEntailments(lemma string) []string {
	return Load().Axioms.NounEntailments[lemma]
}

// VerbEntailments returns the predicates a verb's meaning entails, e.g.
// "murder" entails "kill" and "intentional".
func VerbEntailments(lemma string) []string {
	if v, ok := LookupVerb(lemma); ok && len(v.Entails) > 0 {
		return v.Entails
	}
	return Load().Axioms.VerbEntailment[lemma]
}
