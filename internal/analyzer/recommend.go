package analyzer

import "fmt"

// buildRecommendations derives the prioritized advisory list from aggregated
// counts and the final score. Order is fixed; the two closing lines are
// unconditional.
func buildRecommendations(counts issueCounts, score int) []string {
	var recs []string

	if counts.Critical > 0 {
		recs = append(recs, fmt.Sprintf("URGENT: Remediate the %d critical finding(s) before this device stays in service", counts.Critical))
	}
	if counts.High > 0 {
		recs = append(recs, fmt.Sprintf("HIGH: Address the %d high-severity finding(s) in the next maintenance window", counts.High))
	}
	if score < 50 {
		recs = append(recs, "Overall security posture is poor; schedule a full hardening review of this device")
	}

	recs = append(recs,
		"Review the vendor's hardening guide: disable unused services, enforce SSH-only management, apply ACLs",
		"Audit device configurations regularly and after every change",
	)
	return recs
}
