package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/logos-lang/logos/internal/config"
)

// ProjectManifest is logos.project.yaml, the build manifest compile_to_dir
// writes alongside the emitted project - the same YAML-manifest idiom the
// teacher's ext/config.go uses for a dependency manifest, adapted to
// describe what this compilation emitted rather than what an extension
// requires.
type ProjectManifest struct {
	CompilationID  string   `yaml:"compilation_id"`
	LogosVersion   string   `yaml:"logos_version"`
	TargetLanguage string   `yaml:"target_language"`
	Files          []string `yaml:"files"`
	HasFFIExports  bool     `yaml:"has_ffi_exports"`
}

// CompileToDir is compile_to_dir(text, out_dir): runs the full checked-
// and-verified pipeline, then writes the generated project to outDir -
// the Go source, the two runtime-support files codegen carries alongside
// it, the Python/TypeScript bindings when the program exports anything
// over FFI, and a build manifest naming everything written.
func CompileToDir(source, outDir string) (CompileResult, error) {
	result := CompileVerified(source, outDir)
	if result.HasErrors() {
		return result, fmt.Errorf("compile_to_dir: compilation has %d diagnostic(s), nothing written to %s", len(result.Diagnostics), outDir)
	}

	if err := os.MkdirAll(filepath.Join(outDir, "generated", "runtime"), 0o755); err != nil {
		return result, fmt.Errorf("compile_to_dir: %w", err)
	}

	files := []string{"main.go", "generated/runtime/crdt.go", "generated/runtime/handles.go"}
	writes := map[string]string{
		"main.go":                      result.Codegen.GoSource,
		"generated/runtime/crdt.go":    result.Codegen.RuntimeCRDT,
		"generated/runtime/handles.go": result.Codegen.RuntimeHandles,
	}

	if result.Codegen.HasFFIExports {
		if result.Codegen.PythonBindings != "" {
			files = append(files, "bindings/logos_bindings.py")
			writes["bindings/logos_bindings.py"] = result.Codegen.PythonBindings
		}
		if result.Codegen.TSDeclarations != "" {
			files = append(files, "bindings/logos.d.ts")
			writes["bindings/logos.d.ts"] = result.Codegen.TSDeclarations
		}
		if result.Codegen.TSLoader != "" {
			files = append(files, "bindings/logos_loader.js")
			writes["bindings/logos_loader.js"] = result.Codegen.TSLoader
		}
	}

	for _, rel := range files {
		full := filepath.Join(outDir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return result, fmt.Errorf("compile_to_dir: %w", err)
		}
		if err := os.WriteFile(full, []byte(writes[rel]), 0o644); err != nil {
			return result, fmt.Errorf("compile_to_dir: writing %s: %w", full, err)
		}
	}

	compilationID := uuid.New()
	if result.Context != nil && result.Context.SourceMap != nil {
		compilationID = result.Context.SourceMap.CompilationID
	}
	manifest := ProjectManifest{
		CompilationID:  compilationID.String(),
		LogosVersion:   config.Version,
		TargetLanguage: config.DefaultTargetLanguage,
		Files:          files,
		HasFFIExports:  result.Codegen.HasFFIExports,
	}
	manifestBytes, err := yaml.Marshal(manifest)
	if err != nil {
		return result, fmt.Errorf("compile_to_dir: marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "logos.project.yaml"), manifestBytes, 0o644); err != nil {
		return result, fmt.Errorf("compile_to_dir: writing manifest: %w", err)
	}

	return result, nil
}
