package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunNoArgsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(nil, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("Run(nil) code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Fatalf("Run(nil) stderr = %q, want it to contain Usage:", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"version"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("Run([version]) code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "logos ") {
		t.Fatalf("Run([version]) stdout = %q, want it to contain \"logos \"", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"help"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("Run([help]) code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Commands:") {
		t.Fatalf("Run([help]) stdout = %q, want it to contain Commands:", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"bogus"}, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("Run([bogus]) code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Fatalf("Run([bogus]) stderr = %q, want it to contain \"unknown command\"", stderr.String())
	}
}

func TestRunCompileWrongArgCount(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"compile"}, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("Run([compile]) code = %d, want 2", code)
	}
}

func TestRunCompileMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"compile", "/nonexistent/path.logos"}, strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("Run([compile, missing-file]) code = %d, want 1", code)
	}
}

func TestRunTheoremWrongArgCount(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"theorem"}, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("Run([theorem]) code = %d, want 2", code)
	}
}
