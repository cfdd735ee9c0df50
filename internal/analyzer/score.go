package analyzer

// issueCounts aggregates findings by severity.
type issueCounts struct {
	Critical int
	High     int
	Medium   int
	Low      int
}

func (c issueCounts) total() int {
	return c.Critical + c.High + c.Medium + c.Low
}

// SeverityWeights is a scoring row: a base (ceiling) and per-severity
// deduction weights.
type SeverityWeights struct {
	Base     int
	Critical int
	High     int
	Medium   int
	Low      int
}

// defaultWeights keys the scoring row on the credential's strength tier.
// A weaker credential lowers the ceiling and makes each further flaw cheaper:
// once authentication is broken, marginal issues matter less than the
// already-compromised baseline.
func defaultWeights() map[PasswordStrength]SeverityWeights {
	return map[PasswordStrength]SeverityWeights{
		StrengthCritical: {Base: 20, Critical: 5, High: 3, Medium: 2, Low: 1},
		StrengthWeak:     {Base: 40, Critical: 8, High: 5, Medium: 3, Low: 1},
		StrengthModerate: {Base: 70, Critical: 12, High: 8, Medium: 4, Low: 2},
		StrengthStrong:   {Base: 100, Critical: 15, High: 10, Medium: 5, Low: 2},
	}
}

// noPasswordWeights is the row used when no credential was supplied at all.
var noPasswordWeights = SeverityWeights{Base: 100, Critical: 15, High: 10, Medium: 5, Low: 2}

// synthesizeScore combines finding counts with the optional password
// analysis into a single 0-100 score. The password strength acts as a
// ceiling, not an additive penalty.
func (e *Engine) synthesizeScore(counts issueCounts, pw *PasswordAnalysis) int {
	weights := noPasswordWeights
	if pw != nil {
		if row, ok := e.weights[pw.Strength]; ok {
			weights = row
		}
	}

	score := weights.Base -
		counts.Critical*weights.Critical -
		counts.High*weights.High -
		counts.Medium*weights.Medium -
		counts.Low*weights.Low

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
