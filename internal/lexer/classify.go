package lexer

import (
	"strings"

	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/lexicon"
	"github.com/logos-lang/logos/internal/token"
)

var declarativeKeywords = map[string]token.Kind{
	"KW_ALL": token.KW_ALL, "KW_SOME": token.KW_SOME, "KW_NO": token.KW_NO,
	"KW_MOST": token.KW_MOST, "KW_FEW": token.KW_FEW, "KW_IF": token.KW_IF,
	"KW_THEN": token.KW_THEN, "KW_ELSE": token.KW_ELSE, "KW_NOT": token.KW_NOT,
	"KW_AND": token.KW_AND, "KW_OR": token.KW_OR, "KW_MUST": token.KW_MUST,
	"KW_MAY": token.KW_MAY, "KW_CAN": token.KW_CAN, "KW_COULD": token.KW_COULD,
	"KW_WOULD": token.KW_WOULD, "KW_SHOULD": token.KW_SHOULD, "KW_IT": token.KW_IT,
	"KW_WHO": token.KW_WHO, "KW_WHICH": token.KW_WHICH, "KW_THAT": token.KW_THAT,
}

var imperativeKeywords = map[string]token.Kind{
	"let": token.KW_LET, "be": token.KW_BE, "set": token.KW_SET, "to": token.KW_TO,
	"while": token.KW_WHILE, "repeat": token.KW_REPEAT, "in": token.KW_IN,
	"return": token.KW_RETURN, "show": token.KW_SHOW, "give": token.KW_GIVE,
	"push": token.KW_PUSH, "pop": token.KW_POP, "zone": token.KW_ZONE,
	"concurrent": token.KW_CONCURRENT, "parallel": token.KW_PARALLEL,
	"launch": token.KW_LAUNCH, "send": token.KW_SEND, "receive": token.KW_RECEIVE,
	"select": token.KW_SELECT, "assert": token.KW_ASSERT, "trust": token.KW_TRUST,
	"read": token.KW_READ, "write": token.KW_WRITE, "mount": token.KW_MOUNT,
	"sync": token.KW_SYNC, "sleep": token.KW_SLEEP, "listen": token.KW_LISTEN,
	"connectto": token.KW_CONNECT, "require": token.KW_REQUIRE,
	"inspect": token.KW_INSPECT, "otherwise": token.KW_OTHERWISE,
	"increase": token.KW_INCREASE, "decrease": token.KW_DECREASE, "merge": token.KW_MERGE,
}

func classify(raws []rawToken, bag *diagnostics.Bag) []token.Token {
	var out []token.Token
	i := 0
	for i < len(raws) {
		r := raws[i]
		switch r.kind {
		case rawNewline:
			out = append(out, token.Token{Kind: token.NEWLINE, Lexeme: "\n", Span: r.span})
			i++
		case rawString:
			out = append(out, token.Token{Kind: token.STRING, Lexeme: r.text, Span: r.span})
			i++
		case rawNumber:
			out = append(out, token.Token{Kind: token.NUMBER, Lexeme: r.text, Span: r.span, Number: r.num})
			i++
		case rawBlockHeader:
			out = append(out, classifyBlockHeader(r))
			i++
		case rawPunct:
			if r.text == "" {
				out = append(out, token.Token{Kind: token.EOF, Span: r.span})
				i++
				continue
			}
			if r.text == "->" {
				out = append(out, token.Token{Kind: token.ARROW, Lexeme: r.text, Span: r.span})
			} else if r.text == ":-" {
				out = append(out, token.Token{Kind: token.EQUALS, Lexeme: r.text, Span: r.span})
			} else {
				out = append(out, token.Token{Kind: punctKinds[rune(r.text[0])], Lexeme: r.text, Span: r.span})
			}
			i++
		case rawWord:
			j := i
			var words []string
			for j < len(raws) && raws[j].kind == rawWord {
				words = append(words, raws[j].text)
				j++
			}
			consumedTokens, n := classifyWords(words, raws[i:j])
			out = append(out, consumedTokens...)
			i += n
		default:
			i++
		}
	}
	return out
}

// classifyWords classifies a run of consecutive word raws, folding the
// longest multi-word expression match at each position before falling back
// to single-word classification. Returns the tokens produced and how many
// raws (not words that failed to form an MWE) were consumed in total.
func classifyWords(words []string, raws []rawToken) ([]token.Token, int) {
	var out []token.Token
	pos := 0
	for pos < len(words) {
		if pattern, consumed, ok := lexicon.MatchMWE(words[pos:]); ok && consumed > 1 {
			span := token.Span{Start: raws[pos].span.Start, End: raws[pos+consumed-1].span.End}
			out = append(out, mweToken(pattern, span))
			pos += consumed
			continue
		}
		out = append(out, classifyWord(words[pos], raws[pos].span))
		pos++
	}
	return out, len(words)
}

func mweToken(pattern lexicon.MWEPattern, span token.Span) token.Token {
	switch pattern.POS {
	case "determiner":
		if pattern.Lemma == "at_least" {
			return token.Token{Kind: token.AT_LEAST, Lexeme: pattern.Lemma, Span: span}
		}
		if pattern.Lemma == "at_most" {
			return token.Token{Kind: token.AT_MOST, Lexeme: pattern.Lemma, Span: span}
		}
		return token.Token{Kind: token.IDENT, Lexeme: pattern.Lemma, Span: span}
	case "conjunction":
		return token.Token{Kind: token.CONJUNCTION, Lexeme: pattern.Lemma, Span: span}
	default:
		return token.Token{Kind: token.IDENT, Lexeme: pattern.Lemma, Span: span}
	}
}

func classifyWord(word string, span token.Span) token.Token {
	lower := strings.ToLower(word)

	if kw, ok := lexicon.LookupKeyword(lower); ok {
		if kind, ok := declarativeKeywords[kw]; ok {
			return token.Token{Kind: kind, Lexeme: word, Span: span}
		}
	}
	if kind, ok := imperativeKeywords[lower]; ok {
		return token.Token{Kind: kind, Lexeme: word, Span: span}
	}
	if lower == "true" || lower == "false" {
		return token.Token{Kind: token.BOOLEAN, Lexeme: word, Span: span, Number: boolToFloat(lower == "true")}
	}
	if lower == "nothing" {
		return token.Token{Kind: token.NOTHING, Lexeme: word, Span: span}
	}
	if n, ok := lexicon.LookupNumberWord(lower); ok {
		return token.Token{Kind: token.CARDINAL, Lexeme: word, Span: span, Number: n}
	}
	if feats, ok := lexicon.LookupPronoun(lower); ok {
		return token.Token{
			Kind: token.PRONOUN, Lexeme: word, Span: span,
			Pronoun: &token.PronounFeatures{Gender: feats[0], Number: feats[1], Case: feats[2]},
		}
	}
	if _, ok := lexicon.LookupArticle(lower); ok {
		return token.Token{Kind: token.ARTICLE, Lexeme: word, Span: span}
	}
	if lexicon.IsPreposition(lower) {
		return token.Token{Kind: token.PREPOSITION, Lexeme: word, Span: span}
	}
	if lexicon.IsParticle(lower) {
		return token.Token{Kind: token.PARTICLE, Lexeme: word, Span: span}
	}
	if lexicon.IsScopalAdverb(lower) || lexicon.IsTemporalAdverb(lower) || lexicon.IsAdverb(lower) {
		return token.Token{Kind: token.ADVERB, Lexeme: word, Span: span}
	}
	if lower == "and" {
		return token.Token{Kind: token.CONJUNCTION, Lexeme: word, Span: span}
	}
	if v, ok := lexicon.LookupVerb(lower); ok {
		return token.Token{Kind: token.VERB, Lexeme: word, Span: span, Verb: verbFeatures(v, lower)}
	}
	if _, ok := lexicon.LookupNoun(lower); ok {
		return token.Token{Kind: token.NOUN, Lexeme: word, Span: span}
	}
	if _, ok := lexicon.LookupAdjective(lower); ok {
		return token.Token{Kind: token.ADJECTIVE, Lexeme: word, Span: span}
	}
	return token.Token{Kind: token.IDENT, Lexeme: word, Span: span}
}

func verbFeatures(v *lexicon.VerbEntry, surface string) *token.VerbFeatures {
	feat := &token.VerbFeatures{Lemma: v.Lemma, Time: "present", Aspect: "none", Class: v.Class}
	switch surface {
	case v.Forms["past"]:
		feat.Time = "past"
	case v.Forms["gerund"]:
		feat.Aspect = "progressive"
	}
	return feat
}

func classifyBlockHeader(r rawToken) token.Token {
	text := r.text
	switch {
	case text == "## Main":
		return token.Token{Kind: token.BLOCK_MAIN, Lexeme: text, Span: r.span}
	case strings.HasPrefix(text, "## To "):
		return token.Token{Kind: token.BLOCK_TO, Lexeme: text, Span: r.span, BlockHeaderText: strings.TrimPrefix(text, "## To ")}
	case strings.HasPrefix(text, "## Theorem "):
		return token.Token{Kind: token.BLOCK_THEOREM, Lexeme: text, Span: r.span, BlockHeaderText: strings.TrimPrefix(text, "## Theorem ")}
	case strings.HasPrefix(text, "## Requires"):
		return token.Token{Kind: token.BLOCK_REQUIRES, Lexeme: text, Span: r.span, BlockHeaderText: strings.TrimPrefix(text, "## Requires ")}
	case strings.HasPrefix(text, "## Policy "):
		return token.Token{Kind: token.BLOCK_POLICY, Lexeme: text, Span: r.span, BlockHeaderText: strings.TrimPrefix(text, "## Policy ")}
	case strings.HasPrefix(text, "## A ") && strings.HasSuffix(text, "has"):
		return token.Token{Kind: token.BLOCK_STRUCT, Lexeme: text, Span: r.span, BlockHeaderText: extractTypeName(text, "has")}
	case strings.HasPrefix(text, "## A ") && strings.Contains(text, "is either"):
		return token.Token{Kind: token.BLOCK_ENUM, Lexeme: text, Span: r.span, BlockHeaderText: extractTypeName(text, "is either")}
	default:
		return token.Token{Kind: token.ILLEGAL, Lexeme: text, Span: r.span}
	}
}

func extractTypeName(text, suffix string) string {
	body := strings.TrimPrefix(text, "## A ")
	body = strings.TrimSuffix(strings.TrimSpace(body), suffix)
	return strings.TrimSpace(body)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
