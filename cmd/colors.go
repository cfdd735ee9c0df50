package cmd

import (
	"strconv"

	"github.com/fatih/color"

	"github.com/khanhnv2901/confaudit-cli/internal/checker"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()

	colorCritical = color.New(color.FgRed, color.Bold).SprintFunc()
)

func formatSeverityWithColor(sev checker.Severity) string {
	switch sev {
	case checker.SeverityCritical:
		return colorCritical(string(sev))
	case checker.SeverityHigh:
		return colorError(string(sev))
	case checker.SeverityMedium:
		return colorWarn(string(sev))
	case checker.SeverityLow:
		return colorInfo(string(sev))
	default:
		return string(sev)
	}
}

// formatScoreWithColor colors a 0-100 security score by band.
func formatScoreWithColor(score int) string {
	s := strconv.Itoa(score)
	switch {
	case score >= 80:
		return colorSuccess(s)
	case score >= 50:
		return colorWarn(s)
	default:
		return colorError(s)
	}
}
