package sourcemap

import (
	"testing"

	"github.com/logos-lang/logos/internal/token"
)

func TestNearestLineReturnsExactMatch(t *testing.T) {
	m := New()
	want := token.Span{Start: 10, End: 20}
	m.RecordLine(5, want)

	got, ok := m.NearestLine(5)
	if !ok || got != want {
		t.Fatalf("NearestLine(5) = %#v, %v, want %#v, true", got, ok, want)
	}
}

func TestNearestLineSearchesOutwardWithinFive(t *testing.T) {
	m := New()
	want := token.Span{Start: 1, End: 2}
	m.RecordLine(10, want)

	got, ok := m.NearestLine(13)
	if !ok || got != want {
		t.Fatalf("NearestLine(13) = %#v, %v, want the line-10 span within range", got, ok)
	}
}

func TestNearestLineFailsBeyondFive(t *testing.T) {
	m := New()
	m.RecordLine(10, token.Span{Start: 1, End: 2})

	if _, ok := m.NearestLine(16); ok {
		t.Fatalf("NearestLine(16) found a match, want none (line 10 is 6 away)")
	}
}

func TestNearestLinePrefersEarlierLineOnTie(t *testing.T) {
	m := New()
	before := token.Span{Start: 1, End: 2}
	after := token.Span{Start: 3, End: 4}
	m.RecordLine(8, before)
	m.RecordLine(12, after)

	got, ok := m.NearestLine(10)
	if !ok || got != before {
		t.Fatalf("NearestLine(10) = %#v, want the earlier equidistant line %#v", got, before)
	}
}

func TestRecordNameRoundTrips(t *testing.T) {
	m := New()
	m.RecordName("farmer_1", SymbolInfo{OriginalSymbol: "farmer", Role: RoleLetBinding})

	info, ok := m.NameInfo("farmer_1")
	if !ok || info.OriginalSymbol != "farmer" || info.Role != RoleLetBinding {
		t.Fatalf("NameInfo(farmer_1) = %#v, %v, want OriginalSymbol=farmer Role=RoleLetBinding", info, ok)
	}
}
