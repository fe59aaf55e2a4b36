package lexicon

import "strings"

// LookupKeyword returns the closed-class keyword token name for word, if any.
func LookupKeyword(word string) (string, bool) {
	kw, ok := Load().Keywords[strings.ToLower(word)]
	return kw, ok
}

// LookupPronoun returns a pronoun's [gender, number, case] feature triple.
func LookupPronoun(word string) ([3]string, bool) {
	feats, ok := Load().Pronouns[strings.ToLower(word)]
	return feats, ok
}

// LookupArticle returns a determiner's definiteness ("definite"/"indefinite").
func LookupArticle(word string) (string, bool) {
	def, ok := Load().Articles[strings.ToLower(word)]
	return def, ok
}

// IsAuxiliary reports whether word is a closed-class auxiliary verb.
func IsAuxiliary(word string) bool {
	return Load().Auxiliaries[strings.ToLower(word)]
}

// IsPresuppositionTrigger reports whether word presupposes its complement,
// e.g. "know", "stop", "again".
func IsPresuppositionTrigger(word string) bool {
	return contains(Load().PresuppositionTriggers, strings.ToLower(word))
}

// LookupNumberWord resolves a spelled-out number word ("three") to its value.
func LookupNumberWord(word string) (float64, bool) {
	n, ok := Load().NumberWords[strings.ToLower(word)]
	return n, ok
}

var verbIndex map[string]*VerbEntry
var verbByForm map[string]*VerbEntry
var nounIndex map[string]*NounEntry
var nounByForm map[string]*NounEntry
var adjIndex map[string]*AdjectiveEntry

func buildIndexes() {
	d := Load()
	if verbIndex != nil {
		return
	}
	verbIndex = make(map[string]*VerbEntry, len(d.Verbs))
	verbByForm = make(map[string]*VerbEntry)
	for i := range d.Verbs {
		v := &d.Verbs[i]
		verbIndex[v.Lemma] = v
		for _, form := range v.Forms {
			verbByForm[form] = v
		}
	}
	nounIndex = make(map[string]*NounEntry, len(d.Nouns))
	nounByForm = make(map[string]*NounEntry)
	for i := range d.Nouns {
		n := &d.Nouns[i]
		nounIndex[n.Lemma] = n
		for _, form := range n.Forms {
			nounByForm[form] = n
		}
	}
	adjIndex = make(map[string]*AdjectiveEntry, len(d.Adjectives))
	for i := range d.Adjectives {
		a := &d.Adjectives[i]
		adjIndex[a.Lemma] = a
	}
}

// LookupVerb returns the verb entry for an inflected or lemma form.
func LookupVerb(word string) (*VerbEntry, bool) {
	buildIndexes()
	word = strings.ToLower(word)
	if v, ok := verbIndex[word]; ok {
		return v, true
	}
	if v, ok := verbByForm[word]; ok {
		return v, true
	}
	return nil, false
}

// LookupNoun returns the noun entry for a singular or plural form.
func LookupNoun(word string) (*NounEntry, bool) {
	buildIndexes()
	word = strings.ToLower(word)
	if n, ok := nounIndex[word]; ok {
		return n, true
	}
	if n, ok := nounByForm[word]; ok {
		return n, true
	}
	return nil, false
}

// LookupAdjective returns the adjective entry for lemma.
func LookupAdjective(word string) (*AdjectiveEntry, bool) {
	buildIndexes()
	a, ok := adjIndex[strings.ToLower(word)]
	return a, ok
}

// IsDitransitiveVerb reports whether lemma takes two objects ("gave Mary the book").
func IsDitransitiveVerb(lemma string) bool {
	if v, ok := LookupVerb(lemma); ok {
		return contains(v.Features, "ditransitive") || contains(Load().DitransitiveVerbs, v.Lemma)
	}
	return contains(Load().DitransitiveVerbs, strings.ToLower(lemma))
}

// IsOpaqueVerb reports whether lemma creates an opaque (non-substitutable)
// context for its complement, e.g. "believe", "want".
func IsOpaqueVerb(lemma string) bool {
	return verbHasFeatureOrListed(lemma, "opaque", Load().OpaqueVerbs)
}

// IsSubjectControlVerb reports whether lemma's implicit subject of its
// infinitival complement is coreferential with its own subject.
func IsSubjectControlVerb(lemma string) bool {
	return verbHasFeatureOrListed(lemma, "subject-control", Load().SubjectControlVerbs)
}

// IsObjectControlVerb reports whether lemma's implicit subject of its
// infinitival complement is coreferential with its own object.
func IsObjectControlVerb(lemma string) bool {
	return verbHasFeatureOrListed(lemma, "object-control", Load().ObjectControlVerbs)
}

// IsRaisingVerb reports whether lemma raises its complement's subject
// without assigning it a thematic role ("seem", "appear").
func IsRaisingVerb(lemma string) bool {
	return verbHasFeatureOrListed(lemma, "raising", Load().RaisingVerbs)
}

// IsCollectiveVerb reports whether lemma predicates over a group as a whole
// rather than distributively over its members ("gather", "surround").
func IsCollectiveVerb(lemma string) bool {
	return verbHasFeatureOrListed(lemma, "collective", Load().CollectiveVerbs)
}

func verbHasFeatureOrListed(lemma, feature string, list []string) bool {
	if v, ok := LookupVerb(lemma); ok {
		if contains(v.Features, feature) {
			return true
		}
		return contains(list, v.Lemma)
	}
	return contains(list, strings.ToLower(lemma))
}

// IsNonIntersectiveAdjective reports whether adj modifies outside the
// ordinary intersective reading ("former", "alleged", "fake").
func IsNonIntersectiveAdjective(adj string) bool {
	if a, ok := LookupAdjective(adj); ok && a.Type == "non-intersective" {
		return true
	}
	return contains(Load().NonIntersectiveAdjs, strings.ToLower(adj))
}

// IsEventModifierAdjective reports whether adj modifies the event rather
// than the noun it syntactically attaches to ("fast", "careful").
func IsEventModifierAdjective(adj string) bool {
	if a, ok := LookupAdjective(adj); ok && a.Type == "event-modifier" {
		return true
	}
	return contains(Load().EventModifierAdjs, strings.ToLower(adj))
}

// Singularize reduces a plural noun form to its lemma, consulting the
// irregular-plurals table before falling back to suffix stripping.
func Singularize(word string) string {
	lw := strings.ToLower(word)
	if sing, ok := Load().IrregularPlurals[lw]; ok {
		return sing
	}
	if n, ok := LookupNoun(lw); ok {
		return n.Lemma
	}
	switch {
	case strings.HasSuffix(lw, "ies") && len(lw) > 3:
		return lw[:len(lw)-3] + "y"
	case strings.HasSuffix(lw, "es") && len(lw) > 2:
		return lw[:len(lw)-2]
	case strings.HasSuffix(lw, "s") && len(lw) > 1:
		return lw[:len(lw)-1]
	default:
		return lw
	}
}

// Stem reduces an inflected verb form to its lemma, consulting the
// stemming-exceptions table before falling back to suffix stripping.
func Stem(word string) string {
	lw := strings.ToLower(word)
	if lemma, ok := Load().Morphology.StemmingExceptions[lw]; ok {
		return lemma
	}
	if v, ok := LookupVerb(lw); ok {
		return v.Lemma
	}
	switch {
	case strings.HasSuffix(lw, "ied") && len(lw) > 3:
		return lw[:len(lw)-3] + "y"
	case strings.HasSuffix(lw, "ing") && len(lw) > 3:
		return lw[:len(lw)-3]
	case strings.HasSuffix(lw, "ed") && len(lw) > 2:
		return lw[:len(lw)-2]
	default:
		return lw
	}
}

// LookupCanonical resolves word to its canonical synonym lemma and a
// polarity sign ("+" same-scale, "-" inverted-scale), used to normalize
// gradable adjectives like "tiny" -> ("small", "-").
func LookupCanonical(word string) (lemma string, polarity string, ok bool) {
	pair, found := Load().Canonical[strings.ToLower(word)]
	if !found {
		return "", "", false
	}
	return pair[0], pair[1], true
}

// LookupUnit returns the dimension a unit word measures ("meter" -> "length").
func LookupUnit(word string) (string, bool) {
	dim, ok := Load().Units[strings.ToLower(word)]
	return dim, ok
}

// IsPreposition, IsAdverb, IsScopalAdverb, IsTemporalAdverb, IsParticle
// check closed-class word lists used by the lexer and parser.
func IsPreposition(word string) bool    { return contains(Load().Prepositions, strings.ToLower(word)) }
func IsAdverb(word string) bool         { return contains(Load().Adverbs, strings.ToLower(word)) }
func IsScopalAdverb(word string) bool   { return contains(Load().ScopalAdverbs, strings.ToLower(word)) }
func IsTemporalAdverb(word string) bool { return contains(Load().TemporalAdverbs, strings.ToLower(word)) }
func IsParticle(word string) bool       { return contains(Load().Particles, strings.ToLower(word)) }

// IsAgentiveNoun reports whether lemma denotes the agent of an implicit
// verb ("farmer", "runner"), used by the discovery pass to infer an
// implicit predicate when no explicit verb phrase accompanies it.
func IsAgentiveNoun(lemma string) bool {
	return contains(Load().AgentiveNouns, strings.ToLower(lemma))
}

// LookupPhrasalVerb resolves a two-word particle verb to its lemma.
func LookupPhrasalVerb(verb, particle string) (string, bool) {
	lemma, ok := Load().PhrasalVerbs[strings.ToLower(verb)+" "+strings.ToLower(particle)]
	return lemma, ok
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
