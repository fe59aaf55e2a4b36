// Package intern implements symbol uniquing for a single compilation.
// Equal strings yield equal Symbols; Symbol 0 is the canonical empty symbol;
// symbols remain valid for the lifetime of the Interner that issued them.
package intern

// Symbol is an opaque identifier for an interned string.
type Symbol uint32

// Empty is the canonical empty-string symbol, always assigned 0.
const Empty Symbol = 0

// Interner maps strings to Symbols and back in O(1) amortized time.
type Interner struct {
	strings []string
	ids     map[string]Symbol
}

// New creates an Interner with the empty string pre-interned as Symbol 0.
func New() *Interner {
	in := &Interner{
		strings: make([]string, 0, 256),
		ids:     make(map[string]Symbol, 256),
	}
	in.strings = append(in.strings, "")
	in.ids[""] = Empty
	return in
}

// Intern returns the Symbol for s, assigning a new one if s has not been
// seen before. Idempotent: calling Intern(s) twice returns the same Symbol.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.ids[s]; ok {
		return sym
	}
	sym := Symbol(len(in.strings))
	in.strings = append(in.strings, s)
	in.ids[s] = sym
	return sym
}

// Lookup returns the Symbol for s without interning it, if it exists.
func (in *Interner) Lookup(s string) (Symbol, bool) {
	sym, ok := in.ids[s]
	return sym, ok
}

// Resolve returns the string a Symbol was interned from. Panics on an
// out-of-range symbol, which indicates a bug (a Symbol escaped the
// Interner it was minted by).
func (in *Interner) Resolve(sym Symbol) string {
	return in.strings[sym]
}

// Len returns the number of distinct interned strings, including Empty.
func (in *Interner) Len() int { return len(in.strings) }
