package engine

import (
	"fmt"
	"strings"

	"lumi-exercise-service/internal/domain"
)

// Evaluate returns the verdict for a submitted answer. It is pure and
// deterministic: the same question and answer always yield the same verdict.
// An answer whose shape does not match the question variant is a caller bug
// and surfaces as ErrTypeMismatch rather than a silent coercion.
func Evaluate(q domain.Question, a domain.Answer) (domain.Verdict, error) {
	switch v := q.Variant.(type) {
	case domain.MultipleChoice:
		sel, ok := a.(domain.SelectedOption)
		if !ok {
			return "", mismatch(q, a)
		}
		// An option id absent from the question is simply a wrong answer.
		if sel.OptionID == v.CorrectOptionID {
			return domain.VerdictCorrect, nil
		}
		return domain.VerdictIncorrect, nil
	case domain.TrueOrFalse:
		b, ok := a.(domain.BoolAnswer)
		if !ok {
			return "", mismatch(q, a)
		}
		if b.Value == v.Answer {
			return domain.VerdictCorrect, nil
		}
		return domain.VerdictIncorrect, nil
	case domain.FillInBlank:
		t, ok := a.(domain.TextAnswer)
		if !ok {
			return "", mismatch(q, a)
		}
		submitted := normalize(t.Text)
		if submitted == "" {
			return domain.VerdictIncorrect, nil
		}
		if submitted == normalize(v.Answer) {
			return domain.VerdictCorrect, nil
		}
		return domain.VerdictIncorrect, nil
	case domain.ShortAnswer:
		if _, ok := a.(domain.TextAnswer); !ok {
			return "", mismatch(q, a)
		}
		// Free text is never auto-graded; keywords stay available to callers
		// for manual review.
		return domain.VerdictUndetermined, nil
	case domain.Speaking:
		if _, ok := a.(domain.SpokenAnswer); !ok {
			return "", mismatch(q, a)
		}
		return domain.VerdictUndetermined, nil
	default:
		return "", fmt.Errorf("%w: question %s has variant %T", domain.ErrInvalidQuestion, q.ID, q.Variant)
	}
}

func mismatch(q domain.Question, a domain.Answer) error {
	return fmt.Errorf("%w: question %s (%s) got %T", domain.ErrTypeMismatch, q.ID, q.Variant.Kind(), a)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
