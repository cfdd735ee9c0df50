package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/khanhnv2901/confaudit-cli/internal/checker"
	consts "github.com/khanhnv2901/confaudit-cli/internal/shared/constants"
	sharederrors "github.com/khanhnv2901/confaudit-cli/internal/shared/errors"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report from a saved analysis run (markdown or PDF)",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		format, _ := cmd.Flags().GetString("format")

		if id == "" {
			return fmt.Errorf("--id is required")
		}
		format = strings.ToLower(format)
		if format != "md" && format != "pdf" {
			return fmt.Errorf("%w: %s (must be md or pdf)", sharederrors.ErrInvalidFormat, format)
		}

		output, err := loadRunOutput(resultsDir, id)
		if err != nil {
			return err
		}

		runDir := filepath.Join(resultsDir, id)
		switch format {
		case "md":
			content := generateMarkdownReport(output)
			reportPath := filepath.Join(runDir, "report.md")
			if err := os.WriteFile(reportPath, []byte(content), consts.DefaultFilePerm); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", colorSuccess("Report written:"), reportPath)
		case "pdf":
			reportPath := filepath.Join(runDir, "report.pdf")
			if err := generatePDFReport(output, reportPath); err != nil {
				return fmt.Errorf("failed to generate PDF report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", colorSuccess("Report written:"), reportPath)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().String("id", "", "analysis run identifier")
	reportCmd.Flags().String("format", "md", "report format: md or pdf")
}

func loadRunOutput(baseDir, id string) (RunOutput, error) {
	var output RunOutput

	data, err := os.ReadFile(filepath.Join(baseDir, id, "results.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return output, fmt.Errorf("%w: %s", sharederrors.ErrRunNotFound, id)
		}
		return output, fmt.Errorf("failed to read results: %w", err)
	}
	if err := json.Unmarshal(data, &output); err != nil {
		return output, fmt.Errorf("failed to parse results: %w", err)
	}
	return output, nil
}

func generateMarkdownReport(output RunOutput) string {
	result := output.Result
	var b strings.Builder

	fmt.Fprintf(&b, "# Configuration Audit Report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", output.Metadata.ID)
	fmt.Fprintf(&b, "- Source: `%s`\n", output.Metadata.Source)
	fmt.Fprintf(&b, "- Analyzed: %s\n", output.Metadata.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "- Security score: **%d/100**\n\n", result.SecurityScore)

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Severity | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| CRITICAL | %d |\n", result.Critical)
	fmt.Fprintf(&b, "| HIGH | %d |\n", result.High)
	fmt.Fprintf(&b, "| MEDIUM | %d |\n", result.Medium)
	fmt.Fprintf(&b, "| LOW | %d |\n\n", result.Low)
	fmt.Fprintf(&b, "Parsed %d interface(s), %d VTY line(s), %d ACL(s).\n\n",
		result.ConfigSummary.TotalInterfaces, result.ConfigSummary.TotalVTYLines, result.ConfigSummary.TotalACLs)

	if pw := result.PasswordAnalysis; pw != nil {
		fmt.Fprintf(&b, "Password strength: **%s** (%d/100)\n\n", string(pw.Strength), pw.Score)
	}

	if len(result.Issues) > 0 {
		fmt.Fprintf(&b, "## Findings\n\n")
		for _, issue := range sortIssuesBySeverity(result.Issues) {
			fmt.Fprintf(&b, "### [%s] %s\n\n", string(issue.Severity), issue.Title)
			fmt.Fprintf(&b, "- Category: %s\n", issue.Category)
			fmt.Fprintf(&b, "- Location: %s\n", issue.Location)
			fmt.Fprintf(&b, "- Reference: %s\n\n", issue.CVE)
			fmt.Fprintf(&b, "%s\n\n", issue.Description)
			fmt.Fprintf(&b, "**Recommendation:** %s\n\n", issue.Recommendation)
		}
	}

	fmt.Fprintf(&b, "## Recommendations\n\n")
	for _, rec := range result.Recommendations {
		fmt.Fprintf(&b, "1. %s\n", rec)
	}
	return b.String()
}

func generatePDFReport(output RunOutput, path string) error {
	result := output.Result

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Configuration Audit Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Configuration Audit Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Run: %s    Source: %s", output.Metadata.ID, output.Metadata.Source))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Analyzed: %s", output.Metadata.AnalyzedAt.Format("2006-01-02 15:04 UTC")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Security score: %d/100", result.SecurityScore))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Severity", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Count", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range []struct {
		label string
		count int
	}{
		{"CRITICAL", result.Critical},
		{"HIGH", result.High},
		{"MEDIUM", result.Medium},
		{"LOW", result.Low},
	} {
		pdf.CellFormat(40, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", row.count), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	if pw := result.PasswordAnalysis; pw != nil {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Password strength: %s (%d/100)", string(pw.Strength), pw.Score))
		pdf.Ln(8)
	}

	if len(result.Issues) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Findings")
		pdf.Ln(9)
		for _, issue := range sortIssuesBySeverity(result.Issues) {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, fmt.Sprintf("[%s] %s (%s, %s)", string(issue.Severity), issue.Title, issue.Location, issue.CVE), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, issue.Description, "", "L", false)
			pdf.MultiCell(0, 5, "Recommendation: "+issue.Recommendation, "", "L", false)
			pdf.Ln(3)
		}
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Recommendations")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for i, rec := range result.Recommendations {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, rec), "", "L", false)
	}

	return pdf.OutputFileAndClose(path)
}

// severityRank orders severities for display grouping; lower sorts first.
func severityRank(sev checker.Severity) int {
	switch sev {
	case checker.SeverityCritical:
		return 0
	case checker.SeverityHigh:
		return 1
	case checker.SeverityMedium:
		return 2
	default:
		return 3
	}
}

// sortIssuesBySeverity returns a copy of issues grouped by descending
// severity, preserving check order within a severity.
func sortIssuesBySeverity(issues []checker.Issue) []checker.Issue {
	sorted := make([]checker.Issue, 0, len(issues))
	for rank := 0; rank <= 3; rank++ {
		for _, issue := range issues {
			if severityRank(issue.Severity) == rank {
				sorted = append(sorted, issue)
			}
		}
	}
	return sorted
}
