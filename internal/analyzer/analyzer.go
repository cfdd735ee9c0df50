// Package analyzer is the configuration analysis engine: it runs the rule
// modules over a parsed configuration, evaluates an optional administrative
// credential, and synthesizes a single scored, recommendation-carrying
// result. Every analysis is a pure, stateless transformation of one input
// document; an Engine is safe for concurrent use.
package analyzer

import (
	"strings"

	"github.com/khanhnv2901/confaudit-cli/internal/checker"
	"github.com/khanhnv2901/confaudit-cli/internal/config"
)

// AnalysisResult is the immutable outcome of one analysis call. The severity
// counters include password-analysis issues when a credential was supplied,
// so critical+high+medium+low == totalIssues == len(issues) always holds.
type AnalysisResult struct {
	TotalIssues      int               `json:"totalIssues"`
	Critical         int               `json:"critical"`
	High             int               `json:"high"`
	Medium           int               `json:"medium"`
	Low              int               `json:"low"`
	SecurityScore    int               `json:"securityScore"`
	Issues           []checker.Issue   `json:"issues"`
	Recommendations  []string          `json:"recommendations"`
	PasswordAnalysis *PasswordAnalysis `json:"passwordAnalysis,omitempty"`
	ConfigSummary    config.Summary    `json:"configSummary"`
}

// Engine runs analyses. Construct once with New and reuse freely; it holds
// no per-call state.
type Engine struct {
	checks       []checker.Check
	passwordDict map[string]struct{} // lowercased, for the standalone analyzer
	weights      map[PasswordStrength]SeverityWeights
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithDictionary replaces the weak-password dictionary for both the
// line-based check and the standalone analyzer. Intended for tests and
// site-specific banned-credential lists.
func WithDictionary(words []string) Option {
	return func(e *Engine) {
		e.checks = checker.DefaultChecks(checker.Config{WeakPasswords: words})
		e.passwordDict = lowerSet(words)
	}
}

// WithChecks replaces the rule modules entirely. The supplied order is the
// order findings appear in the result.
func WithChecks(checks ...checker.Check) Option {
	return func(e *Engine) { e.checks = checks }
}

// WithWeights overrides the score weight table.
func WithWeights(weights map[PasswordStrength]SeverityWeights) Option {
	return func(e *Engine) { e.weights = weights }
}

// New constructs an Engine with the default dictionary, checks and weights.
func New(opts ...Option) *Engine {
	e := &Engine{
		checks:       checker.DefaultChecks(checker.DefaultConfig()),
		passwordDict: lowerSet(checker.DefaultWeakPasswords()),
		weights:      defaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze audits one configuration document. password is the optional
// administrative credential; pass "" when none was supplied and no
// PasswordAnalysis will be attached. Analyze never fails: unrecognized input
// simply yields no findings, and empty text produces a result with zero
// issues and a score of 100, which callers must read as "nothing analyzed"
// rather than "verified secure".
func (e *Engine) Analyze(text, password string) *AnalysisResult {
	lines := config.SplitLines(text)
	parsed := config.Parse(lines)

	issues := []checker.Issue{}
	// Blank input is "nothing analyzed": the absence-style best-practice
	// rules must not fire against an empty document.
	if strings.TrimSpace(text) != "" {
		for _, check := range e.checks {
			issues = append(issues, check.Evaluate(lines, parsed)...)
		}
	}

	var pw *PasswordAnalysis
	if password != "" {
		pw = e.AnalyzePassword(password)
		issues = append(issues, pw.Issues...)
	}

	var counts issueCounts
	for _, is := range issues {
		switch is.Severity {
		case checker.SeverityCritical:
			counts.Critical++
		case checker.SeverityHigh:
			counts.High++
		case checker.SeverityMedium:
			counts.Medium++
		case checker.SeverityLow:
			counts.Low++
		}
	}

	score := e.synthesizeScore(counts, pw)

	return &AnalysisResult{
		TotalIssues:      counts.total(),
		Critical:         counts.Critical,
		High:             counts.High,
		Medium:           counts.Medium,
		Low:              counts.Low,
		SecurityScore:    score,
		Issues:           issues,
		Recommendations:  buildRecommendations(counts, score),
		PasswordAnalysis: pw,
		ConfigSummary:    parsed.Summary,
	}
}

func lowerSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
