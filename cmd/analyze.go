package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/khanhnv2901/confaudit-cli/internal/analyzer"
	consts "github.com/khanhnv2901/confaudit-cli/internal/shared/constants"
	sharederrors "github.com/khanhnv2901/confaudit-cli/internal/shared/errors"
)

// RunMetadata records who/when/what for a saved analysis run.
type RunMetadata struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// RunOutput is the on-disk shape of results.json.
type RunOutput struct {
	Metadata RunMetadata              `json:"metadata"`
	Result   *analyzer.AnalysisResult `json:"result"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a configuration dump and produce a scored report",
	Long: `Run the analysis engine over a Cisco-IOS style configuration dump.
The input is a file path, or "-" to read from stdin. Results are printed as
a colored summary and written to <results_dir>/<run-id>/results.json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		asJSON, _ := cmd.Flags().GetBool("json")
		runID, _ := cmd.Flags().GetString("id")

		source := "-"
		if len(args) == 1 {
			source = args[0]
		}

		text, err := readConfigText(source)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return sharederrors.ErrEmptyConfig
		}

		engine := analyzer.New()
		result := engine.Analyze(text, password)

		if runID == "" {
			runID = uuid.NewString()[:8]
		}

		output := RunOutput{
			Metadata: RunMetadata{ID: runID, Source: source, AnalyzedAt: time.Now().UTC()},
			Result:   result,
		}
		resultsPath, err := saveRunOutput(resultsDir, output)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(output)
		}

		printAnalysisSummary(cmd.OutOrStdout(), output, resultsPath)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("password", "p", "", "admin credential to include in the analysis")
	analyzeCmd.Flags().Bool("json", false, "print the full result as JSON instead of a summary")
	analyzeCmd.Flags().String("id", "", "run identifier (default: generated)")
}

// readConfigText reads the configuration document from a file or stdin,
// enforcing the transport-layer size limit the engine itself does not apply.
func readConfigText(source string) (string, error) {
	var r io.Reader
	if source == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(source)
		if err != nil {
			return "", fmt.Errorf("failed to open configuration: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, consts.MaxConfigBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read configuration: %w", err)
	}
	if len(data) > consts.MaxConfigBytes {
		return "", sharederrors.ErrConfigTooLarge
	}
	return string(data), nil
}

func saveRunOutput(baseDir string, output RunOutput) (string, error) {
	runDir := filepath.Join(baseDir, output.Metadata.ID)
	if err := os.MkdirAll(runDir, consts.DefaultDirPerm); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize results: %w", err)
	}

	resultsPath := filepath.Join(runDir, "results.json")
	if err := os.WriteFile(resultsPath, data, consts.DefaultFilePerm); err != nil {
		return "", fmt.Errorf("failed to write results: %w", err)
	}
	return resultsPath, nil
}

func printAnalysisSummary(w io.Writer, output RunOutput, resultsPath string) {
	result := output.Result

	fmt.Fprintln(w, colorSuccess("Analysis complete."))
	fmt.Fprintf(w, "%s %s\n", colorInfo("Run:"), output.Metadata.ID)
	fmt.Fprintf(w, "%s %s/100\n", colorInfo("Security score:"), formatScoreWithColor(result.SecurityScore))
	fmt.Fprintf(w, "%s %d interface(s), %d VTY line(s), %d ACL(s)\n",
		colorInfo("Parsed:"),
		result.ConfigSummary.TotalInterfaces,
		result.ConfigSummary.TotalVTYLines,
		result.ConfigSummary.TotalACLs,
	)

	if result.TotalIssues == 0 {
		fmt.Fprintf(w, "%s no findings; verify the input actually contained a configuration\n", colorWarn("Note:"))
	} else {
		fmt.Fprintf(w, "%s %d total (%s critical, %s high, %s medium, %s low)\n",
			colorInfo("Findings:"),
			result.TotalIssues,
			colorCritical(result.Critical), colorError(result.High),
			colorWarn(result.Medium), colorInfo(result.Low),
		)

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SEVERITY\tLOCATION\tTITLE\tREF")
		for _, issue := range result.Issues {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				formatSeverityWithColor(issue.Severity), issue.Location, issue.Title, issue.CVE)
		}
		tw.Flush()
	}

	if pw := result.PasswordAnalysis; pw != nil {
		fmt.Fprintf(w, "%s %s (%d/100)\n", colorInfo("Password strength:"), string(pw.Strength), pw.Score)
	}

	fmt.Fprintln(w, colorInfo("Recommendations:"))
	for _, rec := range result.Recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}

	fmt.Fprintf(w, "%s %s\n", colorInfo("Results:"), resultsPath)
}
