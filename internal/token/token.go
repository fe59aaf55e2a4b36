// Package token defines the closed set of lexical token kinds produced by
// the lexer (C3) and consumed by discovery (C4) and the parser (C5).
package token

import "fmt"

// Span is a byte-offset range into the source text. Spans are monotonic and
// non-overlapping across a token stream that lexed without error.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string { return fmt.Sprintf("%d:%d", s.Start, s.End) }

// Kind is the closed sum of token kinds.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF
	NEWLINE
	INDENT
	DEDENT

	// Punctuation
	PERIOD
	COMMA
	COLON
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	ARROW // ->
	PLUS
	MINUS
	STAR
	SLASH
	EQUALS // :-, the imperative binding/equality operator
	LT
	GT

	// Literals
	CARDINAL   // plain number, e.g. "three", "3"
	AT_LEAST   // "at least N"
	AT_MOST    // "at most N"
	NUMBER     // numeric literal (imperative)
	FLOAT      // float literal
	STRING     // "..."
	CHARACTER  // '.'
	BOOLEAN    // true/false
	NOTHING    // nothing

	// Content classes (open lexicon, closed token kind)
	NOUN
	VERB
	ADJECTIVE
	PRONOUN
	ARTICLE
	PREPOSITION
	ADVERB
	PARTICLE
	CONJUNCTION

	// Keywords (declarative)
	KW_ALL
	KW_SOME
	KW_NO
	KW_MOST
	KW_FEW
	KW_IF
	KW_THEN
	KW_ELSE
	KW_NOT
	KW_AND
	KW_OR
	KW_MUST
	KW_MAY
	KW_CAN
	KW_COULD
	KW_WOULD
	KW_SHOULD
	KW_IT
	KW_WHO
	KW_WHICH
	KW_THAT

	// Keywords (imperative)
	KW_LET
	KW_BE
	KW_SET
	KW_TO
	KW_WHILE
	KW_REPEAT
	KW_IN
	KW_FUNCTION // "To"
	KW_RETURN
	KW_SHOW
	KW_GIVE
	KW_PUSH
	KW_POP
	KW_ZONE
	KW_CONCURRENT
	KW_PARALLEL
	KW_LAUNCH
	KW_SEND
	KW_RECEIVE
	KW_SELECT
	KW_ASSERT
	KW_TRUST
	KW_READ
	KW_WRITE
	KW_MOUNT
	KW_SYNC
	KW_SLEEP
	KW_LISTEN
	KW_CONNECT
	KW_REQUIRE
	KW_INSPECT
	KW_OTHERWISE
	KW_INCREASE
	KW_DECREASE
	KW_MERGE

	// Block headers
	BLOCK_MAIN
	BLOCK_TO
	BLOCK_THEOREM
	BLOCK_REQUIRES
	BLOCK_STRUCT
	BLOCK_ENUM
	BLOCK_POLICY

	IDENT // identifier not resolved against the lexicon
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", NEWLINE: "NEWLINE", INDENT: "INDENT", DEDENT: "DEDENT",
	PERIOD: "PERIOD", COMMA: "COMMA", COLON: "COLON", LPAREN: "LPAREN", RPAREN: "RPAREN",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET", ARROW: "ARROW",
	PLUS: "PLUS", MINUS: "MINUS", STAR: "STAR", SLASH: "SLASH", EQUALS: "EQUALS",
	LT: "LT", GT: "GT",
	CARDINAL: "CARDINAL", AT_LEAST: "AT_LEAST", AT_MOST: "AT_MOST",
	NUMBER: "NUMBER", FLOAT: "FLOAT", STRING: "STRING", CHARACTER: "CHARACTER",
	BOOLEAN: "BOOLEAN", NOTHING: "NOTHING",
	NOUN: "NOUN", VERB: "VERB", ADJECTIVE: "ADJECTIVE", PRONOUN: "PRONOUN",
	ARTICLE: "ARTICLE", PREPOSITION: "PREPOSITION", ADVERB: "ADVERB", PARTICLE: "PARTICLE",
	CONJUNCTION: "CONJUNCTION",
	KW_ALL: "all", KW_SOME: "some", KW_NO: "no", KW_MOST: "most", KW_FEW: "few",
	KW_IF: "if", KW_THEN: "then", KW_ELSE: "else", KW_NOT: "not", KW_AND: "and", KW_OR: "or",
	KW_MUST: "must", KW_MAY: "may", KW_CAN: "can", KW_COULD: "could", KW_WOULD: "would",
	KW_SHOULD: "should", KW_IT: "it", KW_WHO: "who", KW_WHICH: "which", KW_THAT: "that",
	KW_LET: "Let", KW_BE: "be", KW_SET: "Set", KW_TO: "to", KW_WHILE: "While",
	KW_REPEAT: "Repeat", KW_IN: "in", KW_FUNCTION: "To", KW_RETURN: "Return",
	KW_SHOW: "Show", KW_GIVE: "Give", KW_PUSH: "Push", KW_POP: "Pop", KW_ZONE: "Zone",
	KW_CONCURRENT: "Concurrent", KW_PARALLEL: "Parallel", KW_LAUNCH: "Launch",
	KW_SEND: "Send", KW_RECEIVE: "Receive", KW_SELECT: "Select", KW_ASSERT: "Assert",
	KW_TRUST: "Trust", KW_READ: "Read", KW_WRITE: "Write", KW_MOUNT: "Mount",
	KW_SYNC: "Sync", KW_SLEEP: "Sleep", KW_LISTEN: "Listen", KW_CONNECT: "ConnectTo",
	KW_REQUIRE: "Require", KW_INSPECT: "Inspect", KW_OTHERWISE: "otherwise",
	KW_INCREASE: "Increase", KW_DECREASE: "Decrease", KW_MERGE: "Merge",
	BLOCK_MAIN: "## Main", BLOCK_TO: "## To", BLOCK_THEOREM: "## Theorem",
	BLOCK_REQUIRES: "## Requires", BLOCK_STRUCT: "## A ... has", BLOCK_ENUM: "## A ... is either",
	BLOCK_POLICY: "## Policy", IDENT: "IDENT",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// VerbFeatures carries the morphological payload for a VERB token.
type VerbFeatures struct {
	Lemma  string
	Time   string // present|past|future
	Aspect string // progressive|perfect|habitual|iterative|none
	Class  string // Vendler class: State|Activity|Accomplishment|Achievement|Semelfactive
}

// PronounFeatures carries gender/number/case for a PRONOUN token.
type PronounFeatures struct {
	Gender string
	Number string
	Case   string
}

// Ambiguous wraps a token with more than one lexical reading (lexical
// polysemy), e.g. "it" might be an expletive or a referring pronoun.
type Ambiguous struct {
	Primary      Token
	Alternatives []Token
}

// Token is a single lexeme with its kind, literal text, span, and optional
// feature payload.
type Token struct {
	Kind    Kind
	Lexeme  string
	Span    Span
	Number  float64 // for CARDINAL/NUMBER/FLOAT/AT_LEAST/AT_MOST
	Verb    *VerbFeatures
	Pronoun *PronounFeatures
	Amb     *Ambiguous
	// BlockHeaderText carries a "## ..." header's payload (its sub-kind is
	// the Kind itself), e.g. the theorem name or function signature text
	// captured verbatim.
	BlockHeaderText string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Span)
}

// IsKeyword reports whether k is one of the closed declarative/imperative
// keyword kinds (used by the parser to decide whether an identifier-shaped
// lexeme is actually reserved).
func (k Kind) IsKeyword() bool {
	return k >= KW_ALL && k <= KW_MERGE
}

// IsBlockHeader reports whether k opens a top-level block.
func (k Kind) IsBlockHeader() bool {
	return k >= BLOCK_MAIN && k <= BLOCK_POLICY
}
