package journal

import (
	"math"

	"github.com/julianstephens/healthlog/internal/models"
)

// Averages returns the per-field means of entries rounded half-up, so 1.5
// becomes 2. Empty input yields zeros. A missing health score counts as 0.
func Averages(entries []models.Entry) models.Averages {
	if len(entries) == 0 {
		return models.Averages{}
	}

	var mood, stress, health int
	for _, e := range entries {
		mood += e.Mood
		stress += e.Stress
		health += e.HealthScore
	}

	n := float64(len(entries))
	return models.Averages{
		Mood:   roundHalfUp(float64(mood) / n),
		Stress: roundHalfUp(float64(stress) / n),
		Health: roundHalfUp(float64(health) / n),
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
