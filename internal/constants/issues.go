package constants

// HealthIssues is the fixed vocabulary of issue tags, in display order.
var HealthIssues = []string{
	"Respiratory Issues",
	"Headache",
	"Stomachache",
	"Back Pain",
	"Vomits",
	"Fatigue",
	"Eyes",
	"Pcod",
	"Anxiety",
}

// IsKnownIssue reports whether issue belongs to HealthIssues.
func IsKnownIssue(issue string) bool {
	for _, known := range HealthIssues {
		if known == issue {
			return true
		}
	}
	return false
}
