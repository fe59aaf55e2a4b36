package driver

import "testing"

func TestLineFromPosn(t *testing.T) {
	cases := []struct {
		posn string
		want int
	}{
		{"main.go:12:5", 12},
		{"generated/runtime/crdt.go:1:1", 1},
		{"no-colons-here", 0},
		{"only:one", 0},
	}
	for _, c := range cases {
		if got := lineFromPosn(c.posn); got != c.want {
			t.Errorf("lineFromPosn(%q) = %d, want %d", c.posn, got, c.want)
		}
	}
}

func TestTranslateVetFindingsFallsBackWithoutSourceMap(t *testing.T) {
	vetJSON := []byte(`{"pkg":{"printf":[{"posn":"main.go:3:2","message":"bad format"}]}}`)
	got := translateVetFindings(CompileResult{}, vetJSON)
	if len(got) != 1 {
		t.Fatalf("translateVetFindings returned %d findings, want 1", len(got))
	}
	if got[0] != "printf: bad format" {
		t.Errorf("translateVetFindings()[0] = %q, want %q", got[0], "printf: bad format")
	}
}

func TestTranslateVetFindingsOnInvalidJSON(t *testing.T) {
	got := translateVetFindings(CompileResult{}, []byte("not json"))
	if got != nil {
		t.Errorf("translateVetFindings(invalid json) = %#v, want nil", got)
	}
}
