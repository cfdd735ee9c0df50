package checker

import (
	"fmt"

	"github.com/khanhnv2901/confaudit-cli/internal/config"
)

const categoryAccessControl = "Access Control"

// AccessControlCheck works on the parsed model rather than raw lines: it
// needs to know which object a missing setting belongs to. VTY lines without
// an access-class accept management sessions from anywhere; active
// interfaces without an ACL forward unfiltered traffic.
type AccessControlCheck struct{}

func (AccessControlCheck) Name() string { return "access-control" }

func (AccessControlCheck) Evaluate(_ []config.ConfigLine, cfg *config.ParsedConfig) []Issue {
	var issues []Issue

	for _, vty := range cfg.VTYLines {
		if vty.AccessClass != "" {
			continue
		}
		issues = append(issues, Issue{
			Severity:       SeverityHigh,
			Category:       categoryAccessControl,
			Title:          "VTY line without access-class",
			Description:    fmt.Sprintf("line vty %s accepts remote management sessions from any source address.", vty.Range),
			Location:       fmt.Sprintf("Line %d", vty.LineNumber),
			Recommendation: "Attach an access-class restricting VTY access to management networks",
			CVE:            "CWE-284",
		})
	}

	for _, iface := range cfg.Interfaces {
		if iface.Status != config.StatusActive || iface.ACL != "" {
			continue
		}
		issues = append(issues, Issue{
			Severity:       SeverityMedium,
			Category:       categoryAccessControl,
			Title:          "Active interface without ACL",
			Description:    fmt.Sprintf("Interface %s is active but has no access-group applied; traffic through it is unfiltered.", iface.Name),
			Location:       fmt.Sprintf("Line %d", iface.LineNumber),
			Recommendation: "Apply an ip access-group appropriate for the interface role",
			CVE:            "CWE-284",
		})
	}

	return issues
}
