// Package config holds build-time and run-time constants shared across the
// compiler pipeline: version string, recognized source extensions, and the
// test/LSP mode globals that downstream passes consult to keep output
// deterministic (e.g. stable symbol numbering in transpiled output).
package config

// Version is the current logos version.
var Version = "0.1.0"

// SourceFileExt is the canonical extension for logos source files.
const SourceFileExt = ".logos"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".logos", ".lgc"}

// TrimSourceExt removes any recognized source extension from a filename.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt reports whether path ends with a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode normalizes nondeterministic output (generated type-variable
// names, symbol counters) for golden-file comparisons in tests.
var IsTestMode = false

// IsLSPMode is set by an embedding LSP host so diagnostic rendering can
// switch from terminal Socratic text to structured ranges.
var IsLSPMode = false

// Default output/target settings.
const (
	DefaultTargetLanguage = "go"
	DefaultFOLFormat      = "unicode"
)
