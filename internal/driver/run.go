package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/logos-lang/logos/internal/diagnostics"
)

// goVetFinding mirrors the subset of `go vet -json`'s output this driver
// reads back: a map keyed by package, then by analyzer name, to a list of
// positions and messages.
type goVetFinding struct {
	Posn    string `json:"posn"`
	Message string `json:"message"`
}

// CompileAndRun is compile_and_run(text, out_dir): compile_to_dir, then
// build and run the emitted project with the target toolchain. logos
// targets Go (§4.10's codegen target), so this drives `go build`/`go vet
// -json` where the original compiler this was distilled from drives
// `cargo`/`rustc --json`; any diagnostic go vet reports against the
// generated line gets translated back to the original source through the
// SourceMap before being surfaced.
func CompileAndRun(source, outDir string) (string, error) {
	result, err := CompileToDir(source, outDir)
	if err != nil {
		return "", err
	}

	if vetOut, vetErr := runGoVet(outDir); vetErr != nil {
		findings := translateVetFindings(result, vetOut)
		if len(findings) > 0 {
			var msg string
			for i, f := range findings {
				if i > 0 {
					msg += "; "
				}
				msg += f
			}
			return "", fmt.Errorf("compile_and_run: go vet: %s", msg)
		}
		return "", fmt.Errorf("compile_and_run: go vet: %w", vetErr)
	}

	buildCmd := exec.Command("go", "build", "-o", "logos_program")
	buildCmd.Dir = outDir
	var buildStderr bytes.Buffer
	buildCmd.Stderr = &buildStderr
	if err := buildCmd.Run(); err != nil {
		return "", fmt.Errorf("compile_and_run: go build: %s", buildStderr.String())
	}

	runCmd := exec.Command(filepath.Join(outDir, "logos_program"))
	var stdout, stderr bytes.Buffer
	runCmd.Stdout = &stdout
	runCmd.Stderr = &stderr
	if err := runCmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("compile_and_run: %s: %s", err, stderr.String())
	}
	return stdout.String(), nil
}

func runGoVet(dir string) ([]byte, error) {
	cmd := exec.Command("go", "vet", "-json", "./...")
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	runErr := cmd.Run()
	return stdout.Bytes(), runErr
}

// translateVetFindings decodes go vet's per-package JSON report and, for
// each finding whose position falls inside the generated main.go, resolves
// the original source span through the SourceMap so the message reads
// against the program the user wrote rather than the file codegen emitted.
func translateVetFindings(result CompileResult, vetJSON []byte) []string {
	var report map[string]map[string][]goVetFinding
	if err := json.Unmarshal(vetJSON, &report); err != nil {
		return nil
	}

	var out []string
	for _, analyzers := range report {
		for analyzer, findings := range analyzers {
			for _, f := range findings {
				line := lineFromPosn(f.Posn)
				inMain := strings.HasPrefix(filepath.Base(f.Posn), "main.go:")
				if line == 0 || !inMain || result.Context == nil || result.Context.SourceMap == nil {
					out = append(out, fmt.Sprintf("%s: %s", analyzer, f.Message))
					continue
				}
				span, ok := result.Context.SourceMap.NearestLine(line)
				if !ok {
					out = append(out, fmt.Sprintf("%s: %s", analyzer, f.Message))
					continue
				}
				d := diagnostics.Diagnostic{
					Kind:    diagnostics.CompileBuild,
					Message: fmt.Sprintf("%s: %s", analyzer, f.Message),
					Span:    span,
				}
				out = append(out, d.Render(result.Context.Source))
			}
		}
	}
	return out
}

// lineFromPosn extracts the line number out of a go vet position string of
// the form "path/to/file.go:line:col".
func lineFromPosn(posn string) int {
	parts := strings.Split(posn, ":")
	if len(parts) < 3 {
		return 0
	}
	line, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return 0
	}
	return line
}
