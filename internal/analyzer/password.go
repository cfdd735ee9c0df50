package analyzer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/khanhnv2901/confaudit-cli/internal/checker"
)

// PasswordStrength is the tier assigned to a standalone credential.
type PasswordStrength string

const (
	StrengthCritical PasswordStrength = "CRITICAL"
	StrengthWeak     PasswordStrength = "WEAK"
	StrengthModerate PasswordStrength = "MODERATE"
	StrengthStrong   PasswordStrength = "STRONG"
)

// PasswordAnalysis is the result of evaluating a single credential.
type PasswordAnalysis struct {
	Strength PasswordStrength `json:"strength"`
	Score    int              `json:"score"`
	Issues   []checker.Issue  `json:"issues"`
}

const locationAuth = "Router Authentication"

// commonSubstrings are fragments whose presence anywhere in a credential
// marks it as guessable.
var commonSubstrings = []string{"password", "admin", "root", "user", "login", "welcome"}

// AnalyzePassword evaluates a candidate credential. Unlike the line-based
// weak-password check, dictionary matching here is case-insensitive. An
// empty candidate is itself the worst finding.
func (e *Engine) AnalyzePassword(candidate string) *PasswordAnalysis {
	if candidate == "" {
		return &PasswordAnalysis{
			Strength: StrengthCritical,
			Score:    0,
			Issues: []checker.Issue{{
				Severity:       checker.SeverityCritical,
				Category:       "Weak Authentication",
				Title:          "No password provided",
				Description:    "No administrative credential is set; the device is open to anyone who can reach it.",
				Location:       locationAuth,
				Recommendation: "Set a strong administrative credential immediately",
				CVE:            "CWE-521",
			}},
		}
	}

	lowered := strings.ToLower(candidate)
	if _, known := e.passwordDict[lowered]; known {
		return &PasswordAnalysis{
			Strength: StrengthCritical,
			Score:    10,
			Issues: []checker.Issue{{
				Severity:       checker.SeverityCritical,
				Category:       "Weak Authentication",
				Title:          "Dictionary password",
				Description:    "The credential is a well-known default or dictionary entry.",
				Location:       locationAuth,
				Recommendation: "Replace with a unique credential of at least 12 characters mixing case, digits and symbols",
				CVE:            "CWE-521",
			}},
		}
	}

	var issues []checker.Issue
	add := func(sev checker.Severity, title, desc, rec string) {
		issues = append(issues, checker.Issue{
			Severity:       sev,
			Category:       "Password Policy",
			Title:          title,
			Description:    desc,
			Location:       locationAuth,
			Recommendation: rec,
			CVE:            "CWE-521",
		})
	}

	length := len(candidate)
	switch {
	case length < 8:
		add(checker.SeverityCritical, "Password too short",
			fmt.Sprintf("The credential is %d characters long; under 8 characters falls quickly to brute force.", length),
			"Use at least 12 characters")
	case length < 12:
		add(checker.SeverityHigh, "Password shorter than recommended",
			fmt.Sprintf("The credential is %d characters long; 12 or more is recommended.", length),
			"Use at least 12 characters")
	}

	if allDigits(candidate) {
		add(checker.SeverityHigh, "Password is all digits",
			"A purely numeric credential drastically shrinks the search space.",
			"Mix letters, digits and symbols")
	}
	if allLetters(candidate) {
		add(checker.SeverityHigh, "Password is all letters",
			"A purely alphabetic credential drastically shrinks the search space.",
			"Mix letters, digits and symbols")
	}
	for _, frag := range commonSubstrings {
		if strings.Contains(lowered, frag) {
			add(checker.SeverityHigh, "Password contains a common word",
				fmt.Sprintf("The credential contains %q, a fragment present on every guessing list.", frag),
				"Avoid dictionary words and common fragments")
			break
		}
	}

	strength := deriveStrength(candidate, issues)
	return &PasswordAnalysis{
		Strength: strength,
		Score:    strengthScore(strength),
		Issues:   issues,
	}
}

// deriveStrength maps accumulated issues (and, absent any, composition) to a
// strength tier.
func deriveStrength(candidate string, issues []checker.Issue) PasswordStrength {
	for _, is := range issues {
		if is.Severity == checker.SeverityCritical {
			return StrengthCritical
		}
	}
	for _, is := range issues {
		if is.Severity == checker.SeverityHigh {
			return StrengthWeak
		}
	}
	if len(candidate) >= 12 {
		if hasUpper(candidate) && hasLower(candidate) && hasDigit(candidate) && hasSymbol(candidate) {
			return StrengthStrong
		}
		return StrengthModerate
	}
	// No rule fired on a shorter credential: acceptable.
	return StrengthStrong
}

func strengthScore(s PasswordStrength) int {
	switch s {
	case StrengthCritical:
		return 20
	case StrengthWeak:
		return 40
	case StrengthModerate:
		return 70
	default:
		return 100
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

func hasUpper(s string) bool { return strings.IndexFunc(s, unicode.IsUpper) >= 0 }
func hasLower(s string) bool { return strings.IndexFunc(s, unicode.IsLower) >= 0 }
func hasDigit(s string) bool { return strings.IndexFunc(s, unicode.IsDigit) >= 0 }

func hasSymbol(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
