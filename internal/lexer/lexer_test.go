package lexer

import (
	"testing"

	"github.com/logos-lang/logos/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeSimpleSentence(t *testing.T) {
	toks, bag := Tokenize("Every dog runs.")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []token.Kind{token.KW_ALL, token.NOUN, token.VERB, token.PERIOD, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizePastTenseVerbFeature(t *testing.T) {
	toks, bag := Tokenize("The dog ran.")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	var verb *token.Token
	for i := range toks {
		if toks[i].Kind == token.VERB {
			verb = &toks[i]
		}
	}
	if verb == nil {
		t.Fatalf("no VERB token found in %v", toks)
	}
	if verb.Verb == nil || verb.Verb.Lemma != "run" || verb.Verb.Time != "past" {
		t.Errorf("verb features = %+v, want lemma=run time=past", verb.Verb)
	}
}

func TestTokenizeAtLeastMWE(t *testing.T) {
	toks, bag := Tokenize("At least three dogs bark.")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.AT_LEAST {
		t.Errorf("first token kind = %s, want AT_LEAST", toks[0].Kind)
	}
	if toks[1].Kind != token.CARDINAL {
		t.Errorf("second token kind = %s, want CARDINAL", toks[1].Kind)
	}
}

func TestTokenizeBlockHeader(t *testing.T) {
	toks, bag := Tokenize("## Main\nShow 1.")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.BLOCK_MAIN {
		t.Errorf("first token kind = %s, want BLOCK_MAIN", toks[0].Kind)
	}
}

func TestTokenizeUnterminatedStringReportsDiagnostic(t *testing.T) {
	_, bag := Tokenize(`Show "hello`)
	if !bag.HasErrors() {
		t.Fatalf("expected an unterminated-string diagnostic")
	}
}

func TestTokenizeUnknownCharacterRecovers(t *testing.T) {
	toks, bag := Tokenize("Show 1 @ 2.")
	if !bag.HasErrors() {
		t.Fatalf("expected an unknown-char diagnostic")
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Errorf("scan did not recover to EOF after illegal char")
	}
}
