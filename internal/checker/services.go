package checker

import (
	"fmt"
	"strings"

	"github.com/khanhnv2901/confaudit-cli/internal/config"
)

const categoryInsecureService = "Insecure Service"

// InsecureServiceCheck flags management services that transmit credentials
// and sessions in cleartext: Telnet on VTY lines and the embedded HTTP
// admin server.
type InsecureServiceCheck struct{}

func (InsecureServiceCheck) Name() string { return "insecure-services" }

func (InsecureServiceCheck) Evaluate(lines []config.ConfigLine, _ *config.ParsedConfig) []Issue {
	var issues []Issue

	for _, line := range lines {
		text := line.Text

		if strings.Contains(text, "transport input telnet") || strings.Contains(text, "transport input all") {
			issues = append(issues, Issue{
				Severity:       SeverityCritical,
				Category:       categoryInsecureService,
				Title:          "Telnet enabled for remote management",
				Description:    "Telnet exposes port 23 and carries credentials and session content in plaintext; anyone on the path can capture them.",
				Location:       fmt.Sprintf("Line %d", line.Number),
				Recommendation: "Restrict VTY transport to SSH: `transport input ssh`",
				CVE:            "CWE-319",
			})
		}

		if strings.Contains(text, "ip http server") && !strings.HasPrefix(text, "no ") {
			issues = append(issues, Issue{
				Severity:       SeverityHigh,
				Category:       categoryInsecureService,
				Title:          "Unencrypted HTTP management interface",
				Description:    "The embedded HTTP server serves the management interface without encryption.",
				Location:       fmt.Sprintf("Line %d", line.Number),
				Recommendation: "Disable with `no ip http server`, or use `ip http secure-server` if web management is required",
				CVE:            "CWE-319",
			})
		}
	}

	return issues
}
