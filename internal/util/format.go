package util

import "time"

// Severity bands for a 0-100 match score, fixed thresholds.
const (
	ScoreBandHigh   = "high"   // >= 80
	ScoreBandMedium = "medium" // >= 60
	ScoreBandLow    = "low"
)

func ScoreBand(score float64) string {
	switch {
	case score >= 80:
		return ScoreBandHigh
	case score >= 60:
		return ScoreBandMedium
	default:
		return ScoreBandLow
	}
}

// FormatLongDate renders a timestamp the way the job page shows posting dates,
// e.g. "January 2, 2006".
func FormatLongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
