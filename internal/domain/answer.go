package domain

// Answer is the closed set of submission shapes. The validator rejects an
// answer whose concrete type does not match the question variant.
type Answer interface {
	answer()
}

// SelectedOption is the submission shape for multiple-choice questions.
type SelectedOption struct {
	OptionID string `json:"optionId"`
}

func (SelectedOption) answer() {}

// BoolAnswer is the submission shape for true/false questions.
type BoolAnswer struct {
	Value bool `json:"value"`
}

func (BoolAnswer) answer() {}

// TextAnswer is the submission shape for fill-in-the-blank and short-answer
// questions.
type TextAnswer struct {
	Text string `json:"text"`
}

func (TextAnswer) answer() {}

// SpokenAnswer carries the transcript of a speaking practice response.
type SpokenAnswer struct {
	Transcript string `json:"transcript"`
}

func (SpokenAnswer) answer() {}
