package discovery

import (
	"testing"

	"github.com/logos-lang/logos/internal/lexer"
)

func TestDiscoverStructAndPolicy(t *testing.T) {
	src := "## A Farmer has\nName\nAge\n\n## Policy no-overdraft\nAccount\n"
	toks, bag := lexer.Tokenize(src)
	if bag.HasErrors() {
		t.Fatalf("unexpected lex diagnostics: %v", bag.Items())
	}
	types, policies, dbag := Discover(toks)
	if dbag.HasErrors() {
		t.Fatalf("unexpected discovery diagnostics: %v", dbag.Items())
	}
	info, ok := types.Lookup("Farmer")
	if !ok {
		t.Fatalf("Farmer not discovered; have %v", types.Names())
	}
	if len(info.Fields) == 0 {
		t.Errorf("Farmer discovered with no fields")
	}
	if _, ok := policies.Lookup("no-overdraft"); !ok {
		t.Errorf("policy no-overdraft not discovered; have %v", policies.Names())
	}
}

func TestDiscoverEnum(t *testing.T) {
	src := "## A Shape is either\nCircle\nSquare\n"
	toks, _ := lexer.Tokenize(src)
	types, _, _ := Discover(toks)
	info, ok := types.Lookup("Shape")
	if !ok {
		t.Fatalf("Shape not discovered")
	}
	if len(info.Variants) != 2 {
		t.Errorf("Shape variants = %v, want 2 entries", info.Variants)
	}
}
