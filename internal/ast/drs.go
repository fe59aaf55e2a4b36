package ast

import (
	"github.com/logos-lang/logos/internal/intern"
)

// NounPhrase is a discourse referent as accumulated in the DRS during
// parsing: the information a later pronoun needs to find its antecedent
// (gender/number/sort agreement, recency, block scope).
type NounPhrase struct {
	base
	Head     intern.Symbol
	Variable intern.Symbol
	Gender   string
	Number   string
	Sort     string
	Block    int // DRS box id the referent was introduced in
}

// PP is a prepositional phrase attachment site, held separately from Term
// so the parser's speculative guard can retry an ambiguous attachment
// without discarding the rest of the clause it already built.
type PP struct {
	base
	Preposition intern.Symbol
	Object      Term
}
