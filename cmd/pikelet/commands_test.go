package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pikelet-go/pikelet/internal/fixtures"
	"github.com/pikelet-go/pikelet/internal/semantics"
)

const testFixtureDoc = `
globals:
  - name: S64
    type: { universe: 0 }
  - name: id
    type:
      app:
        head: { global: S64 }
        argument: { global: S64 }
    definition:
      lam:
        param: x
        body: { local: 0 }

examples:
  - name: id-7
    term:
      app:
        head: { global: id }
        argument: { const: { kind: S64, value: 7 } }
  - name: seven
    term: { const: { kind: S64, value: 7 } }
`

func TestShowExampleEvaluatesAndUnfolds(t *testing.T) {
	doc, err := fixtures.Parse([]byte(testFixtureDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	examples, err := doc.Examples()
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}

	var buf bytes.Buffer
	showExample(g, examples, "id-7", semantics.UnfoldAll, &buf)
	if !strings.Contains(buf.String(), "7") {
		t.Errorf("expected output to mention 7, got %q", buf.String())
	}
}

func TestEqExamplesReportsTrueForEqualValues(t *testing.T) {
	doc, err := fixtures.Parse([]byte(testFixtureDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	examples, err := doc.Examples()
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}

	var buf bytes.Buffer
	eqExamples(g, examples, "id-7", "seven", &buf)
	if strings.TrimSpace(stripANSI(buf.String())) != "true" {
		t.Errorf("expected id-7 == seven, got %q", buf.String())
	}
}

func TestEqExamplesReportsUnknownName(t *testing.T) {
	doc, err := fixtures.Parse([]byte(testFixtureDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	examples, err := doc.Examples()
	if err != nil {
		t.Fatalf("Examples: %v", err)
	}

	var buf bytes.Buffer
	eqExamples(g, examples, "id-7", "nonexistent", &buf)
	if !strings.Contains(buf.String(), "Error") {
		t.Errorf("expected an error message, got %q", buf.String())
	}
}

// stripANSI removes color.NoColor-independent escape codes in case the test
// environment forces color output; fatih/color disables color automatically
// when stdout isn't a terminal, which covers the common `go test` case, but
// this keeps the assertion robust either way.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
