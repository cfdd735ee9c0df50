package checker

import (
	"fmt"

	"github.com/khanhnv2901/confaudit-cli/internal/config"
)

// UnusedInterfaceCheck flags interfaces that are shut down or left in their
// default state. Informational only: a disabled interface is not a
// vulnerability, but forgotten interfaces are where undocumented access
// tends to appear.
type UnusedInterfaceCheck struct{}

func (UnusedInterfaceCheck) Name() string { return "unused-interfaces" }

func (UnusedInterfaceCheck) Evaluate(_ []config.ConfigLine, cfg *config.ParsedConfig) []Issue {
	var issues []Issue

	for _, iface := range cfg.Interfaces {
		if iface.Status == config.StatusActive {
			continue
		}
		state := "shut down"
		if iface.Status == config.StatusUnknown {
			state = "in its default state"
		}
		issues = append(issues, Issue{
			Severity:       SeverityLow,
			Category:       "Configuration Hygiene",
			Title:          "Unused interface",
			Description:    fmt.Sprintf("Interface %s is %s. Verify it is intentionally unused and explicitly shut down.", iface.Name, state),
			Location:       fmt.Sprintf("Line %d", iface.LineNumber),
			Recommendation: "Explicitly shut down unused interfaces and document the ones in service",
			CVE:            "N/A",
		})
	}

	return issues
}
