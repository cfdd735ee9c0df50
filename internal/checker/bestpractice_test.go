package checker

import "testing"

func TestBestPracticeCheck_AllAbsent(t *testing.T) {
	issues := evaluate(t, BestPracticeCheck{}, "hostname r1")

	if len(issues) != 4 {
		t.Fatalf("expected 4 issues, got %d", len(issues))
	}

	bySeverity := map[Severity]int{}
	for _, issue := range issues {
		bySeverity[issue.Severity]++
		if issue.Location != "Global configuration" {
			t.Errorf("expected global location, got %q", issue.Location)
		}
	}
	if bySeverity[SeverityHigh] != 1 || bySeverity[SeverityLow] != 1 || bySeverity[SeverityMedium] != 2 {
		t.Errorf("unexpected severity distribution %v", bySeverity)
	}
}

func TestBestPracticeCheck_AllPresent(t *testing.T) {
	text := `service password-encryption
logging host 10.0.0.5
banner motd # authorized use only #
line vty 0 4
 transport input ssh
!`
	issues := evaluate(t, BestPracticeCheck{}, text)

	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestBestPracticeCheck_SSHMissing(t *testing.T) {
	text := `service password-encryption
logging host 10.0.0.5
banner motd # hi #
line vty 0 4
 transport input telnet
!`
	issues := evaluate(t, BestPracticeCheck{}, text)

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Title != "SSH not configured" {
		t.Errorf("unexpected title %q", issues[0].Title)
	}
	if issues[0].Severity != SeverityHigh {
		t.Errorf("expected HIGH, got %s", issues[0].Severity)
	}
}
