package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{
			name: "valid multiple choice",
			q: Question{ID: "q1", Points: 10, Variant: MultipleChoice{
				Options:         []Option{{ID: "a"}, {ID: "b"}},
				CorrectOptionID: "a",
			}},
		},
		{
			name: "correct option missing from options",
			q: Question{ID: "q1", Points: 10, Variant: MultipleChoice{
				Options:         []Option{{ID: "a"}, {ID: "b"}},
				CorrectOptionID: "c",
			}},
			wantErr: true,
		},
		{
			name: "too few options",
			q: Question{ID: "q1", Points: 10, Variant: MultipleChoice{
				Options:         []Option{{ID: "a"}},
				CorrectOptionID: "a",
			}},
			wantErr: true,
		},
		{
			name: "duplicate option ids",
			q: Question{ID: "q1", Points: 10, Variant: MultipleChoice{
				Options:         []Option{{ID: "a"}, {ID: "a"}},
				CorrectOptionID: "a",
			}},
			wantErr: true,
		},
		{
			name:    "zero points",
			q:       Question{ID: "q1", Points: 0, Variant: TrueOrFalse{Answer: true}},
			wantErr: true,
		},
		{
			name:    "negative points",
			q:       Question{ID: "q1", Points: -5, Variant: TrueOrFalse{Answer: true}},
			wantErr: true,
		},
		{
			name:    "missing variant",
			q:       Question{ID: "q1", Points: 10},
			wantErr: true,
		},
		{
			name:    "missing id",
			q:       Question{Points: 10, Variant: Speaking{}},
			wantErr: true,
		},
		{
			name: "valid fill in blank",
			q:    Question{ID: "q1", Points: 5, Variant: FillInBlank{Answer: "Paris"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.q.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidQuestion) {
					t.Fatalf("expected invalid question error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestExerciseValidateRejectsWholeList(t *testing.T) {
	e := Exercise{
		ID: "ex-1",
		Questions: []Question{
			{ID: "q1", Points: 10, Variant: TrueOrFalse{Answer: true}},
			{ID: "q2", Points: 0, Variant: TrueOrFalse{Answer: false}},
		},
	}
	if err := e.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected invalid question error, got %v", err)
	}
}

func TestQuestionJSONRoundTrip(t *testing.T) {
	original := Exercise{
		ID:    "ex-1",
		Title: "Mixed",
		Questions: []Question{
			{
				ID: "q1", Prompt: "Pick", Points: 10, TimeLimitSeconds: 30,
				Variant: MultipleChoice{
					Options:         []Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}},
					CorrectOptionID: "b",
				},
			},
			{ID: "q2", Prompt: "True?", Points: 5, Variant: TrueOrFalse{Answer: true}},
			{ID: "q3", Prompt: "Type it", Points: 5, Variant: FillInBlank{Answer: "Tokyo"}},
			{ID: "q4", Prompt: "Explain", Points: 20, Variant: ShortAnswer{Keywords: []string{"because", "so"}}},
			{ID: "q5", Prompt: "Say it", Points: 10, MediaURL: "img://town", Variant: Speaking{Guidance: "slowly"}},
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Exercise
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(decoded.Questions))
	}
	mc, ok := decoded.Questions[0].Variant.(MultipleChoice)
	if !ok {
		t.Fatalf("expected multiple choice variant, got %T", decoded.Questions[0].Variant)
	}
	if mc.CorrectOptionID != "b" || len(mc.Options) != 2 {
		t.Fatalf("multiple choice payload lost: %+v", mc)
	}
	if v, ok := decoded.Questions[3].Variant.(ShortAnswer); !ok || len(v.Keywords) != 2 {
		t.Fatalf("short answer payload lost: %T %+v", decoded.Questions[3].Variant, decoded.Questions[3].Variant)
	}
	if decoded.Questions[0].TimeLimitSeconds != 30 {
		t.Fatalf("time limit lost: %d", decoded.Questions[0].TimeLimitSeconds)
	}
	if err := decoded.Validate(); err != nil {
		t.Fatalf("round-tripped exercise invalid: %v", err)
	}
}

func TestQuestionUnmarshalUnknownKind(t *testing.T) {
	raw := []byte(`{"id":"q1","prompt":"?","points":5,"kind":"matching"}`)
	var q Question
	if err := json.Unmarshal(raw, &q); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected invalid question error, got %v", err)
	}
}

func TestAnswerCodec(t *testing.T) {
	answers := []Answer{
		SelectedOption{OptionID: "b"},
		BoolAnswer{Value: true},
		TextAnswer{Text: " paris "},
		SpokenAnswer{Transcript: "hello"},
	}
	for _, a := range answers {
		data, err := MarshalAnswer(a)
		if err != nil {
			t.Fatalf("marshal %T: %v", a, err)
		}
		decoded, err := UnmarshalAnswer(data)
		if err != nil {
			t.Fatalf("unmarshal %T: %v", a, err)
		}
		if decoded != a {
			t.Fatalf("expected %#v, got %#v", a, decoded)
		}
	}

	if _, err := UnmarshalAnswer([]byte(`{"type":"emoji"}`)); err == nil {
		t.Fatalf("expected error for unknown answer type")
	}
}
