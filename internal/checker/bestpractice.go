package checker

import (
	"strings"

	"github.com/khanhnv2901/confaudit-cli/internal/config"
)

const (
	categoryBestPractice = "Best Practice"
	locationGlobal       = "Global configuration"
)

// BestPracticeCheck scans the joined configuration text for hardening
// directives that should exist somewhere in the document. These findings are
// lexical: absence anywhere in the text is the signal, so no structural
// context is needed.
type BestPracticeCheck struct{}

func (BestPracticeCheck) Name() string { return "best-practices" }

func (BestPracticeCheck) Evaluate(lines []config.ConfigLine, _ *config.ParsedConfig) []Issue {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	joined := strings.Join(texts, "\n")

	var issues []Issue

	if !strings.Contains(joined, "transport input ssh") {
		issues = append(issues, Issue{
			Severity:       SeverityHigh,
			Category:       categoryBestPractice,
			Title:          "SSH not configured",
			Description:    "No VTY line restricts its transport to SSH; remote management falls back to insecure protocols.",
			Location:       locationGlobal,
			Recommendation: "Generate host keys and configure `transport input ssh` on all VTY lines",
			CVE:            "CWE-319",
		})
	}

	if !strings.Contains(joined, "banner") {
		issues = append(issues, Issue{
			Severity:       SeverityLow,
			Category:       categoryBestPractice,
			Title:          "No login banner",
			Description:    "The configuration defines no banner; legal notice at login is a common audit requirement.",
			Location:       locationGlobal,
			Recommendation: "Configure a `banner motd` or `banner login` with an authorized-use notice",
			CVE:            "N/A",
		})
	}

	if !strings.Contains(joined, "logging") {
		issues = append(issues, Issue{
			Severity:       SeverityMedium,
			Category:       categoryBestPractice,
			Title:          "Logging not configured",
			Description:    "No logging directive is present; incidents on this device leave no trail.",
			Location:       locationGlobal,
			Recommendation: "Configure `logging host` pointing at a central syslog collector",
			CVE:            "N/A",
		})
	}

	if !strings.Contains(joined, "service password-encryption") {
		issues = append(issues, Issue{
			Severity:       SeverityMedium,
			Category:       categoryBestPractice,
			Title:          "Password encryption service disabled",
			Description:    "Without `service password-encryption`, line passwords are stored in cleartext in the configuration.",
			Location:       locationGlobal,
			Recommendation: "Enable `service password-encryption` (and prefer type-8/9 secrets where supported)",
			CVE:            "N/A",
		})
	}

	return issues
}
