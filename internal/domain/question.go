package domain

import "fmt"

// Kind discriminates the question variants.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindTrueOrFalse    Kind = "true_or_false"
	KindFillInBlank    Kind = "fill_in_blank"
	KindShortAnswer    Kind = "short_answer"
	KindSpeaking       Kind = "speaking"
)

// Option represents a selectable answer for a multiple-choice question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Variant is the closed set of question payloads. Exactly one variant is
// attached to every Question; consumers switch exhaustively on the concrete
// type so a new variant cannot be ignored silently.
type Variant interface {
	Kind() Kind
}

// MultipleChoice asks the learner to pick one option.
type MultipleChoice struct {
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
}

func (MultipleChoice) Kind() Kind { return KindMultipleChoice }

// TrueOrFalse asks the learner to judge a statement.
type TrueOrFalse struct {
	Answer bool `json:"correctAnswer"`
}

func (TrueOrFalse) Kind() Kind { return KindTrueOrFalse }

// FillInBlank expects typed text matched case-insensitively after trimming.
type FillInBlank struct {
	Answer string `json:"correctAnswer"`
}

func (FillInBlank) Kind() Kind { return KindFillInBlank }

// ShortAnswer collects free text. It is never auto-graded; Keywords are
// exposed so a reviewer (or a heuristic outside this engine) can grade later.
type ShortAnswer struct {
	Keywords []string `json:"expectedKeywords"`
}

func (ShortAnswer) Kind() Kind { return KindShortAnswer }

// Speaking is a practice-only variant guiding a spoken response.
type Speaking struct {
	Guidance string `json:"guidanceText"`
}

func (Speaking) Kind() Kind { return KindSpeaking }

// Question is a single prompt within an exercise.
type Question struct {
	ID               string
	Prompt           string
	Points           int
	TimeLimitSeconds int    // display-only hint, not enforced here
	MediaURL         string // optional illustration reference
	Variant          Variant
}

// Validate checks the construction invariants for a single question.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: missing question id", ErrInvalidQuestion)
	}
	if q.Points <= 0 {
		return fmt.Errorf("%w: question %s: points must be positive", ErrInvalidQuestion, q.ID)
	}
	switch v := q.Variant.(type) {
	case MultipleChoice:
		if len(v.Options) < 2 {
			return fmt.Errorf("%w: question %s: needs at least 2 options", ErrInvalidQuestion, q.ID)
		}
		seen := make(map[string]struct{}, len(v.Options))
		for _, opt := range v.Options {
			if _, dup := seen[opt.ID]; dup {
				return fmt.Errorf("%w: question %s: duplicate option id %s", ErrInvalidQuestion, q.ID, opt.ID)
			}
			seen[opt.ID] = struct{}{}
		}
		if _, ok := seen[v.CorrectOptionID]; !ok {
			return fmt.Errorf("%w: question %s: correct option %q not among options", ErrInvalidQuestion, q.ID, v.CorrectOptionID)
		}
	case TrueOrFalse, FillInBlank, ShortAnswer, Speaking:
		// no variant-specific invariants
	case nil:
		return fmt.Errorf("%w: question %s: missing variant payload", ErrInvalidQuestion, q.ID)
	default:
		return fmt.Errorf("%w: question %s: unknown variant %T", ErrInvalidQuestion, q.ID, q.Variant)
	}
	return nil
}

// Exercise is an ordered collection of questions, the unit of content a
// session is created from.
type Exercise struct {
	ID        string
	Title     string
	Questions []Question
}

// Validate rejects the whole exercise if any question is malformed, so a
// session is never started over partially valid content.
func (e Exercise) Validate() error {
	for _, q := range e.Questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
