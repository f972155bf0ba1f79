package engine

import (
	"errors"
	"testing"

	"lumi-exercise-service/internal/domain"
)

func mcQuestion() domain.Question {
	return domain.Question{
		ID:     "q1",
		Prompt: "Which city is the capital of France?",
		Points: 10,
		Variant: domain.MultipleChoice{
			Options: []domain.Option{
				{ID: "a", Text: "Lyon"},
				{ID: "b", Text: "Paris"},
			},
			CorrectOptionID: "b",
		},
	}
}

func TestEvaluateMultipleChoice(t *testing.T) {
	q := mcQuestion()

	tests := []struct {
		name   string
		answer domain.Answer
		want   domain.Verdict
	}{
		{"correct option", domain.SelectedOption{OptionID: "b"}, domain.VerdictCorrect},
		{"wrong option", domain.SelectedOption{OptionID: "a"}, domain.VerdictIncorrect},
		{"unknown option is incorrect, not an error", domain.SelectedOption{OptionID: "zzz"}, domain.VerdictIncorrect},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(q, tc.answer)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestEvaluateTrueOrFalse(t *testing.T) {
	q := domain.Question{ID: "q1", Points: 5, Variant: domain.TrueOrFalse{Answer: true}}

	if v, err := Evaluate(q, domain.BoolAnswer{Value: true}); err != nil || v != domain.VerdictCorrect {
		t.Fatalf("expected correct, got %s err=%v", v, err)
	}
	if v, err := Evaluate(q, domain.BoolAnswer{Value: false}); err != nil || v != domain.VerdictIncorrect {
		t.Fatalf("expected incorrect, got %s err=%v", v, err)
	}
}

func TestEvaluateFillInBlank(t *testing.T) {
	q := domain.Question{ID: "q1", Points: 5, Variant: domain.FillInBlank{Answer: "Paris"}}

	tests := []struct {
		name string
		text string
		want domain.Verdict
	}{
		{"exact", "Paris", domain.VerdictCorrect},
		{"case insensitive", "pArIs", domain.VerdictCorrect},
		{"surrounding whitespace", "  paris \t", domain.VerdictCorrect},
		{"wrong answer", "Lyon", domain.VerdictIncorrect},
		{"empty is incorrect", "", domain.VerdictIncorrect},
		{"whitespace only is incorrect", "   ", domain.VerdictIncorrect},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(q, domain.TextAnswer{Text: tc.text})
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestEvaluateUngradedVariants(t *testing.T) {
	short := domain.Question{ID: "q1", Points: 20, Variant: domain.ShortAnswer{Keywords: []string{"country"}}}
	speaking := domain.Question{ID: "q2", Points: 10, Variant: domain.Speaking{Guidance: "speak"}}

	for _, text := range []string{"", "country", "anything at all"} {
		v, err := Evaluate(short, domain.TextAnswer{Text: text})
		if err != nil {
			t.Fatalf("evaluate short answer: %v", err)
		}
		if v != domain.VerdictUndetermined {
			t.Fatalf("short answer %q: expected undetermined, got %s", text, v)
		}
	}

	v, err := Evaluate(speaking, domain.SpokenAnswer{Transcript: "my home town"})
	if err != nil {
		t.Fatalf("evaluate speaking: %v", err)
	}
	if v != domain.VerdictUndetermined {
		t.Fatalf("speaking: expected undetermined, got %s", v)
	}
}

func TestEvaluateTypeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		q      domain.Question
		answer domain.Answer
	}{
		{"bool to multiple choice", mcQuestion(), domain.BoolAnswer{Value: true}},
		{"text to true/false", domain.Question{ID: "q", Points: 1, Variant: domain.TrueOrFalse{}}, domain.TextAnswer{Text: "true"}},
		{"option to fill-in", domain.Question{ID: "q", Points: 1, Variant: domain.FillInBlank{Answer: "x"}}, domain.SelectedOption{OptionID: "a"}},
		{"spoken to short answer", domain.Question{ID: "q", Points: 1, Variant: domain.ShortAnswer{}}, domain.SpokenAnswer{Transcript: "hi"}},
		{"text to speaking", domain.Question{ID: "q", Points: 1, Variant: domain.Speaking{}}, domain.TextAnswer{Text: "hi"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Evaluate(tc.q, tc.answer); !errors.Is(err, domain.ErrTypeMismatch) {
				t.Fatalf("expected type mismatch, got %v", err)
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	q := mcQuestion()
	first, _ := Evaluate(q, domain.SelectedOption{OptionID: "b"})
	for i := 0; i < 10; i++ {
		again, _ := Evaluate(q, domain.SelectedOption{OptionID: "b"})
		if again != first {
			t.Fatalf("verdict changed between calls: %s vs %s", first, again)
		}
	}
}
