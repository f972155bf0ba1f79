package engine

import "lumi-exercise-service/internal/domain"

// Summarize builds the immutable result for a completed session: the ordered
// per-question breakdown zipped from questions, answers, and verdicts, plus
// the aggregate score, tier, and success flag. Finalization is explicit;
// asking for a result before the session completes is an error, not an
// inference from reaching the last index.
func Summarize(s *Session) (domain.Result, error) {
	if !s.Completed() {
		return domain.Result{}, domain.ErrSessionNotComplete
	}

	breakdown := make([]domain.QuestionOutcome, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		q, _ := s.QuestionAt(i)
		outcome := domain.QuestionOutcome{Question: q}
		if a, v, ok := s.AnswerAt(i); ok {
			outcome.Submitted = a
			outcome.Verdict = v
		}
		breakdown = append(breakdown, outcome)
	}

	total, possible := Score(s.questions, s.verdicts)
	pct := Percentage(total, possible)
	return domain.Result{
		ExerciseID:         s.ExerciseID(),
		TotalScore:         total,
		TotalPossibleScore: possible,
		ScorePercentage:    pct,
		Tier:               ClassifyTier(pct),
		IsSuccess:          IsSuccess(total, possible),
		Breakdown:          breakdown,
	}, nil
}
