package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/khanhnv2901/confaudit-cli/internal/analyzer"
	"github.com/khanhnv2901/confaudit-cli/internal/checker"
)

func sampleRunOutput() RunOutput {
	engine := analyzer.New()
	return RunOutput{
		Metadata: RunMetadata{
			ID:         "run-42",
			Source:     "edge-router.cfg",
			AnalyzedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		Result: engine.Analyze("enable password cisco\nline vty 0 4\n password cisco\n transport input telnet\n!", "cisco"),
	}
}

func TestGenerateMarkdownReport(t *testing.T) {
	content := generateMarkdownReport(sampleRunOutput())

	for _, want := range []string{
		"# Configuration Audit Report",
		"run-42",
		"edge-router.cfg",
		"| CRITICAL |",
		"Password strength: **CRITICAL**",
		"## Findings",
		"CWE-521",
		"## Recommendations",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("markdown report missing %q", want)
		}
	}
}

func TestGenerateMarkdownReport_SeverityOrdering(t *testing.T) {
	content := generateMarkdownReport(sampleRunOutput())

	first := strings.Index(content, "### [CRITICAL]")
	lowIdx := strings.Index(content, "### [MEDIUM]")
	if first == -1 {
		t.Fatal("expected a CRITICAL finding section")
	}
	if lowIdx != -1 && lowIdx < first {
		t.Error("expected CRITICAL findings before MEDIUM findings")
	}
}

func TestGeneratePDFReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := generatePDFReport(sampleRunOutput(), path); err != nil {
		t.Fatalf("pdf generation failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read pdf: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("output does not look like a PDF (%d bytes)", len(data))
	}
}

func TestSortIssuesBySeverity(t *testing.T) {
	issues := []checker.Issue{
		{Severity: checker.SeverityLow, Title: "a"},
		{Severity: checker.SeverityCritical, Title: "b"},
		{Severity: checker.SeverityMedium, Title: "c"},
		{Severity: checker.SeverityCritical, Title: "d"},
		{Severity: checker.SeverityHigh, Title: "e"},
	}

	sorted := sortIssuesBySeverity(issues)

	got := make([]string, len(sorted))
	for i, issue := range sorted {
		got[i] = issue.Title
	}
	want := []string{"b", "d", "e", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", got, want)
		}
	}
}
