package engine

import (
	"math"

	"lumi-exercise-service/internal/domain"
)

// successThreshold is the pass/fail gate, independent of the tier bands.
const successThreshold = 0.7

// Score aggregates earned and possible points. Earned points come only from
// correct verdicts. Possible points sum over every question, including the
// short-answer and speaking variants that can never be auto-graded: they
// count toward the denominator but never the numerator.
func Score(questions []domain.Question, verdicts map[int]domain.Verdict) (total, possible int) {
	for i, q := range questions {
		possible += q.Points
		if verdicts[i] == domain.VerdictCorrect {
			total += q.Points
		}
	}
	return total, possible
}

// Percentage converts the score pair into a rounded 0–100 value. A session
// with nothing gradable scores 0.
func Percentage(total, possible int) int {
	if possible == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(possible) * 100))
}

// ClassifyTier maps a percentage onto the display band. Bands are inclusive
// of their lower bound. This table is cosmetic copy only; the pass/fail gate
// lives in IsSuccess and must stay a separate computation.
func ClassifyTier(percentage int) domain.Tier {
	switch {
	case percentage >= 90:
		return domain.TierExcellent
	case percentage >= 70:
		return domain.TierGood
	case percentage >= 50:
		return domain.TierFair
	default:
		return domain.TierNeedsImprovement
	}
}

// IsSuccess applies the 70% gate. A zero-possible session can never succeed.
func IsSuccess(total, possible int) bool {
	if possible == 0 {
		return false
	}
	return float64(total) >= successThreshold*float64(possible)
}
