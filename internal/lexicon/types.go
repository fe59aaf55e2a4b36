// Package lexicon is the static, read-only database generated from a JSON
// dataset at build time (spec §4.2, §6). It exposes pure lookup functions
// consumed by the lexer, discovery pass, parser, and semantic lowering.
package lexicon

import (
	_ "embed"
	"encoding/json"
)

//go:embed data.json
var dataJSON []byte

// VerbEntry describes one verb lemma's morphology and semantic class.
type VerbEntry struct {
	Lemma      string            `json:"lemma"`
	Class      string            `json:"class"` // Vendler class
	Forms      map[string]string `json:"forms,omitempty"`
	Regular    bool              `json:"regular"`
	Features   []string          `json:"features,omitempty"`
	Synonyms   []string          `json:"synonyms,omitempty"`
	Antonyms   []string          `json:"antonyms,omitempty"`
	Entails    []string          `json:"entails,omitempty"`
	Manner     string            `json:"manner,omitempty"`
}

// NounDerivation records a morphological derivation relation, e.g.
// "destruction" <- root "destroy", relation "nominalization".
type NounDerivation struct {
	Root     string `json:"root"`
	POS      string `json:"pos"`
	Relation string `json:"relation"`
}

// NounEntry describes one noun lemma.
type NounEntry struct {
	Lemma      string            `json:"lemma"`
	Forms      map[string]string `json:"forms,omitempty"`
	Features   []string          `json:"features,omitempty"`
	Sort       string            `json:"sort,omitempty"`
	Derivation *NounDerivation   `json:"derivation,omitempty"`
	Hypernyms  []string          `json:"hypernyms,omitempty"`
}

// AdjectiveEntry describes one adjective lemma.
type AdjectiveEntry struct {
	Lemma    string   `json:"lemma"`
	Regular  bool     `json:"regular"`
	Features []string `json:"features,omitempty"`
	Type     string   `json:"type,omitempty"` // privative|non-intersective|intersective|gradable|event-modifier
}

// MWEPattern is one multi-word-expression entry for the trie.
type MWEPattern struct {
	Pattern  []string `json:"pattern"`
	Lemma    string   `json:"lemma"`
	POS      string   `json:"pos"`
	Class    string   `json:"class,omitempty"`
	Features []string `json:"features,omitempty"`
}

// Morphology holds the closed set of morphological derivation rules.
type Morphology struct {
	NeedsEIng          []string `json:"needs_e_ing"`
	NeedsEEd           []string `json:"needs_e_ed"`
	StemmingExceptions map[string]string `json:"stemming_exceptions"`
}

// MorphologicalRule is a generic suffix-based derivation rule, e.g.
// "-tion" applied to a verb yields a nominalization noun.
type MorphologicalRule struct {
	Suffix   string `json:"suffix"`
	BasePOS  string `json:"base_pos"`
	Relation string `json:"relation"`
}

// Ontology holds part-whole and predicate-sort axiom tables.
type Ontology struct {
	PartWhole      map[string][]string `json:"part_whole"`       // part -> possible wholes
	PredicateSorts map[string]string   `json:"predicate_sorts"`  // predicate -> sort of its argument(s)
}

// Axioms holds meaning-postulate tables consulted by semantic lowering.
type Axioms struct {
	NounEntailments map[string][]string `json:"noun_entailments"`
	NounHypernyms   map[string][]string `json:"noun_hypernyms"`
	VerbEntailment  map[string][]string `json:"verb_entailment"`
}

// Data is the full lexicon dataset, as loaded from data.json.
type Data struct {
	Keywords               map[string]string            `json:"keywords"`
	Pronouns               map[string][3]string          `json:"pronouns"` // word -> [gender, number, case]
	Articles                map[string]string            `json:"articles"` // word -> definiteness
	Auxiliaries             map[string]bool               `json:"auxiliaries"`
	PresuppositionTriggers  []string                      `json:"presupposition_triggers"`
	NumberWords             map[string]float64            `json:"number_words"`
	Verbs                   []VerbEntry                   `json:"verbs"`
	Nouns                   []NounEntry                    `json:"nouns"`
	Adjectives              []AdjectiveEntry               `json:"adjectives"`
	Prepositions            []string                       `json:"prepositions"`
	Adverbs                 []string                       `json:"adverbs"`
	ScopalAdverbs           []string                       `json:"scopal_adverbs"`
	TemporalAdverbs         []string                       `json:"temporal_adverbs"`
	Particles               []string                       `json:"particles"`
	PhrasalVerbs            map[string]string              `json:"phrasal_verbs"`
	NotAdverbs              []string                       `json:"not_adverbs"`
	DisambiguationNotVerbs  []string                       `json:"disambiguation_not_verbs"`
	Morphology              Morphology                     `json:"morphology"`
	Units                   map[string]string              `json:"units"`
	MultiWordExpressions    []MWEPattern                   `json:"multi_word_expressions"`
	Ontology                Ontology                        `json:"ontology"`
	Axioms                  Axioms                          `json:"axioms"`
	MorphologicalRules      []MorphologicalRule             `json:"morphological_rules"`
	DitransitiveVerbs       []string                        `json:"ditransitive_verbs"`
	OpaqueVerbs             []string                        `json:"opaque_verbs"`
	SubjectControlVerbs     []string                        `json:"subject_control_verbs"`
	ObjectControlVerbs      []string                        `json:"object_control_verbs"`
	RaisingVerbs            []string                        `json:"raising_verbs"`
	CollectiveVerbs         []string                        `json:"collective_verbs"`
	DistributiveVerbs       []string                        `json:"distributive_verbs"`
	NonIntersectiveAdjs     []string                        `json:"non_intersective_adjectives"`
	EventModifierAdjs       []string                        `json:"event_modifier_adjectives"`
	IrregularPlurals        map[string]string                `json:"irregular_plurals"` // plural -> singular
	AgentiveNouns           []string                        `json:"agentive_nouns"`
	Canonical               map[string][2]string             `json:"canonical"` // word -> [canonical lemma, polarity]
}

// Load parses the embedded JSON dataset once and caches it.
var cached *Data

func Load() *Data {
	if cached != nil {
		return cached
	}
	var d Data
	if err := json.Unmarshal(dataJSON, &d); err != nil {
		panic("lexicon: invalid embedded data.json: " + err.Error())
	}
	cached = &d
	return cached
}
