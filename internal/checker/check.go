// Package checker contains the rule modules that detect security
// misconfigurations in a parsed device configuration. Each check is
// independent and pure: it receives the raw lines and the parsed model and
// returns zero or more issues. Checks run in a fixed order so the combined
// output is stable for identical input.
package checker

import "github.com/khanhnv2901/confaudit-cli/internal/config"

// Severity classifies an issue. The set is closed; scoring weights are keyed
// on these four values.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Issue is a single finding. Location is either a line reference
// ("Line 12") or a named scope ("Global configuration"). CVE carries a CWE
// taxonomy identifier, or "N/A" for informational findings.
type Issue struct {
	Severity       Severity `json:"severity"`
	Category       string   `json:"category"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Recommendation string   `json:"recommendation"`
	CVE            string   `json:"cve"`
}

// Check is a single rule module. New checks register into the ordered list
// returned by DefaultChecks; the orchestration loop never needs to change.
type Check interface {
	Name() string
	Evaluate(lines []config.ConfigLine, cfg *config.ParsedConfig) []Issue
}

// Config carries the data the rule modules are parameterized on. It is
// injected at construction so tests can substitute their own dictionaries.
type Config struct {
	// WeakPasswords is matched case-sensitively and exactly against
	// credentials extracted from configuration lines.
	WeakPasswords []string
}

// DefaultWeakPasswords is the built-in dictionary of credentials that ship
// as vendor defaults or top guessing-list entries.
func DefaultWeakPasswords() []string {
	return []string{
		"cisco", "cisco123", "admin", "admin123", "password", "password1",
		"123456", "12345678", "qwerty", "letmein", "default", "changeme",
		"root", "toor", "secret", "welcome",
	}
}

// DefaultConfig returns the checker configuration used when the caller does
// not override the dictionary.
func DefaultConfig() Config {
	return Config{WeakPasswords: DefaultWeakPasswords()}
}

// DefaultChecks returns the rule modules in their fixed evaluation order:
// weak passwords, insecure services, missing access control, unused
// interfaces, best practices.
func DefaultChecks(cfg Config) []Check {
	return []Check{
		NewWeakPasswordCheck(cfg.WeakPasswords),
		InsecureServiceCheck{},
		AccessControlCheck{},
		UnusedInterfaceCheck{},
		BestPracticeCheck{},
	}
}
