package ui

// Health score thresholds. Scores are 0-100.
const (
	GoodScore = 80
	FairScore = 60
)

// HealthScoreColor returns the text colour class of score.
func HealthScoreColor(score int) string {
	switch {
	case score >= GoodScore:
		return "text-green-600"
	case score >= FairScore:
		return "text-yellow-600"
	default:
		return "text-red-600"
	}
}

// HealthScoreLabel returns "Good", "Fair" or "Poor".
func HealthScoreLabel(score int) string {
	switch {
	case score >= GoodScore:
		return "Good"
	case score >= FairScore:
		return "Fair"
	default:
		return "Poor"
	}
}
