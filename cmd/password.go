package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/confaudit-cli/internal/analyzer"
)

var passwordCmd = &cobra.Command{
	Use:   "password [candidate]",
	Short: "Evaluate the strength of a single credential",
	Long: `Analyze one candidate credential against the weak-password dictionary and
composition rules. Pass the candidate as an argument, or use --stdin to avoid
leaving it in shell history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		fromStdin, _ := cmd.Flags().GetBool("stdin")

		var candidate string
		switch {
		case fromStdin:
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("failed to read candidate from stdin: %w", err)
			}
			candidate = strings.TrimRight(line, "\r\n")
		case len(args) == 1:
			candidate = args[0]
		}
		// An absent candidate is analyzed as-is: "no password" is the worst
		// possible finding, not a usage error.

		analysis := analyzer.New().AnalyzePassword(candidate)

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(analysis)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%d/100)\n", colorInfo("Strength:"), string(analysis.Strength), analysis.Score)
		for _, issue := range analysis.Issues {
			fmt.Fprintf(out, "  %s %s: %s\n", formatSeverityWithColor(issue.Severity), issue.Title, issue.Recommendation)
		}
		return nil
	},
}

func init() {
	passwordCmd.Flags().Bool("json", false, "print the analysis as JSON")
	passwordCmd.Flags().Bool("stdin", false, "read the candidate from stdin")
}
