package checker

import (
	"fmt"
	"strings"

	"github.com/khanhnv2901/confaudit-cli/internal/config"
)

const categoryWeakAuth = "Weak Authentication"

// WeakPasswordCheck flags credentials set in the configuration text itself:
// dictionary passwords, short passwords, and the plaintext `enable password`
// directive.
//
// Dictionary matching here is case-sensitive and exact: `password Cisco`
// configures a different credential than the dictionary word. The standalone
// password analyzer (analyzer.AnalyzePassword) matches case-insensitively.
type WeakPasswordCheck struct {
	dictionary map[string]struct{}
}

// NewWeakPasswordCheck builds the check over the supplied dictionary.
func NewWeakPasswordCheck(words []string) WeakPasswordCheck {
	dict := make(map[string]struct{}, len(words))
	for _, w := range words {
		dict[w] = struct{}{}
	}
	return WeakPasswordCheck{dictionary: dict}
}

func (WeakPasswordCheck) Name() string { return "weak-passwords" }

func (c WeakPasswordCheck) Evaluate(lines []config.ConfigLine, _ *config.ParsedConfig) []Issue {
	var issues []Issue

	for _, line := range lines {
		text := line.Text

		if strings.HasPrefix(text, "password ") || strings.Contains(text, "secret ") {
			credential := secondToken(text)
			if _, known := c.dictionary[credential]; known {
				issues = append(issues, Issue{
					Severity:       SeverityCritical,
					Category:       categoryWeakAuth,
					Title:          "Default or dictionary password",
					Description:    fmt.Sprintf("The credential %q is a well-known default or dictionary entry and will be among the first guesses in any attack.", credential),
					Location:       fmt.Sprintf("Line %d", line.Number),
					Recommendation: "Replace with a unique credential of at least 12 characters mixing case, digits and symbols",
					CVE:            "CWE-521",
				})
			} else if len(credential) < 8 {
				issues = append(issues, Issue{
					Severity:       SeverityHigh,
					Category:       categoryWeakAuth,
					Title:          "Short password",
					Description:    fmt.Sprintf("A configured credential is only %d characters long; short credentials fall quickly to offline brute force.", len(credential)),
					Location:       fmt.Sprintf("Line %d", line.Number),
					Recommendation: "Use credentials of at least 8 characters; 12 or more is recommended",
					CVE:            "CWE-521",
				})
			}
		}

		if strings.HasPrefix(text, "enable password ") {
			issues = append(issues, Issue{
				Severity:       SeverityHigh,
				Category:       categoryWeakAuth,
				Title:          "Plaintext enable password",
				Description:    "`enable password` stores the privileged credential reversibly in the configuration; anyone who reads the dump recovers it.",
				Location:       fmt.Sprintf("Line %d", line.Number),
				Recommendation: "Use `enable secret` instead, which stores a one-way hash",
				CVE:            "CWE-256",
			})
		}
	}

	return issues
}

// secondToken returns the second whitespace-delimited token of a line, or ""
// when the directive carries no value.
func secondToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
