package analyzer

import "testing"

func TestSynthesizeScore_NoPassword(t *testing.T) {
	e := New()

	cases := []struct {
		counts issueCounts
		want   int
	}{
		{issueCounts{}, 100},
		{issueCounts{Critical: 1}, 85},
		{issueCounts{Critical: 1, High: 1, Medium: 1, Low: 1}, 68},
		{issueCounts{Critical: 2, High: 2, Medium: 2, Low: 1}, 38},
		{issueCounts{Critical: 10}, 0}, // clamped
	}
	for _, tc := range cases {
		if got := e.synthesizeScore(tc.counts, nil); got != tc.want {
			t.Errorf("counts %+v: expected %d, got %d", tc.counts, tc.want, got)
		}
	}
}

func TestSynthesizeScore_PasswordCeiling(t *testing.T) {
	e := New()
	counts := issueCounts{Critical: 1, High: 1}

	cases := []struct {
		strength PasswordStrength
		want     int
	}{
		{StrengthCritical, 12}, // 20 - 5 - 3
		{StrengthWeak, 27},     // 40 - 8 - 5
		{StrengthModerate, 50}, // 70 - 12 - 8
		{StrengthStrong, 75},   // 100 - 15 - 10
	}
	for _, tc := range cases {
		pw := &PasswordAnalysis{Strength: tc.strength}
		if got := e.synthesizeScore(counts, pw); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.strength, tc.want, got)
		}
	}
}

func TestSynthesizeScore_ClampsToZero(t *testing.T) {
	e := New()
	pw := &PasswordAnalysis{Strength: StrengthCritical}

	if got := e.synthesizeScore(issueCounts{Critical: 5}, pw); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
}

func TestSynthesizeScore_CustomWeights(t *testing.T) {
	e := New(WithWeights(map[PasswordStrength]SeverityWeights{
		StrengthStrong: {Base: 90, Critical: 1, High: 1, Medium: 1, Low: 1},
	}))
	pw := &PasswordAnalysis{Strength: StrengthStrong}

	if got := e.synthesizeScore(issueCounts{Critical: 1, High: 1}, pw); got != 88 {
		t.Errorf("expected 88 with custom weights, got %d", got)
	}
}
