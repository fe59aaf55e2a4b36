package driver

import (
	"testing"

	"github.com/logos-lang/logos/internal/ast"
)

func TestFindTheoremByName(t *testing.T) {
	theorems := []ast.Theorem{
		{Name: "first"},
		{Name: "second"},
	}
	got, ok := findTheorem(theorems, "second")
	if !ok || got.Name != "second" {
		t.Fatalf("findTheorem(theorems, %q) = %#v, %v", "second", got, ok)
	}
}

func TestFindTheoremUnknownName(t *testing.T) {
	theorems := []ast.Theorem{{Name: "only"}}
	_, ok := findTheorem(theorems, "missing")
	if ok {
		t.Fatalf("findTheorem(theorems, %q) unexpectedly succeeded", "missing")
	}
}

func TestFindTheoremEmptyNameFallsBackToFirst(t *testing.T) {
	theorems := []ast.Theorem{{Name: "only"}}
	got, ok := findTheorem(theorems, "")
	if !ok || got.Name != "only" {
		t.Fatalf("findTheorem(theorems, \"\") = %#v, %v", got, ok)
	}
}

func TestFindTheoremNoTheorems(t *testing.T) {
	_, ok := findTheorem(nil, "")
	if ok {
		t.Fatal("findTheorem(nil, \"\") unexpectedly succeeded")
	}
}

func TestCompileResultHasErrors(t *testing.T) {
	empty := CompileResult{}
	if empty.HasErrors() {
		t.Fatal("CompileResult{}.HasErrors() = true, want false")
	}
}
