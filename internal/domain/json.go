package domain

import (
	"encoding/json"
	"fmt"
)

// questionHeader carries the variant-independent fields plus the kind
// discriminator. Variant payloads are flattened alongside it via embedding.
type questionHeader struct {
	ID               string `json:"id"`
	Prompt           string `json:"prompt"`
	Points           int    `json:"points"`
	TimeLimitSeconds int    `json:"timeLimitSeconds,omitempty"`
	MediaURL         string `json:"mediaUrl,omitempty"`
	Kind             Kind   `json:"kind"`
}

func (q Question) header() questionHeader {
	h := questionHeader{
		ID:               q.ID,
		Prompt:           q.Prompt,
		Points:           q.Points,
		TimeLimitSeconds: q.TimeLimitSeconds,
		MediaURL:         q.MediaURL,
	}
	if q.Variant != nil {
		h.Kind = q.Variant.Kind()
	}
	return h
}

// MarshalJSON flattens the variant payload next to the common fields so
// exercises round-trip through Postgres JSONB and the Redis cache.
func (q Question) MarshalJSON() ([]byte, error) {
	h := q.header()
	switch v := q.Variant.(type) {
	case MultipleChoice:
		return json.Marshal(struct {
			questionHeader
			MultipleChoice
		}{h, v})
	case TrueOrFalse:
		return json.Marshal(struct {
			questionHeader
			TrueOrFalse
		}{h, v})
	case FillInBlank:
		return json.Marshal(struct {
			questionHeader
			FillInBlank
		}{h, v})
	case ShortAnswer:
		return json.Marshal(struct {
			questionHeader
			ShortAnswer
		}{h, v})
	case Speaking:
		return json.Marshal(struct {
			questionHeader
			Speaking
		}{h, v})
	default:
		return nil, fmt.Errorf("%w: question %s: cannot marshal variant %T", ErrInvalidQuestion, q.ID, q.Variant)
	}
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var h questionHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return err
	}
	q.ID = h.ID
	q.Prompt = h.Prompt
	q.Points = h.Points
	q.TimeLimitSeconds = h.TimeLimitSeconds
	q.MediaURL = h.MediaURL

	switch h.Kind {
	case KindMultipleChoice:
		var v MultipleChoice
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		q.Variant = v
	case KindTrueOrFalse:
		var v TrueOrFalse
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		q.Variant = v
	case KindFillInBlank:
		var v FillInBlank
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		q.Variant = v
	case KindShortAnswer:
		var v ShortAnswer
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		q.Variant = v
	case KindSpeaking:
		var v Speaking
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		q.Variant = v
	default:
		return fmt.Errorf("%w: question %s: unknown kind %q", ErrInvalidQuestion, h.ID, h.Kind)
	}
	return nil
}

// exerciseJSON gives Exercise explicit wire names without a custom codec.
type exerciseJSON struct {
	ID        string     `json:"id"`
	Title     string     `json:"title,omitempty"`
	Questions []Question `json:"questions"`
}

func (e Exercise) MarshalJSON() ([]byte, error) {
	return json.Marshal(exerciseJSON{ID: e.ID, Title: e.Title, Questions: e.Questions})
}

func (e *Exercise) UnmarshalJSON(data []byte) error {
	var raw exerciseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.ID = raw.ID
	e.Title = raw.Title
	e.Questions = raw.Questions
	return nil
}

// answerEnvelope discriminates answer shapes on the wire.
type answerEnvelope struct {
	Type       string `json:"type"`
	OptionID   string `json:"optionId,omitempty"`
	Value      bool   `json:"value,omitempty"`
	Text       string `json:"text,omitempty"`
	Transcript string `json:"transcript,omitempty"`
}

const (
	answerTypeOption = "option"
	answerTypeBool   = "boolean"
	answerTypeText   = "text"
	answerTypeSpeech = "speech"
)

// MarshalAnswer encodes an answer with its type tag.
func MarshalAnswer(a Answer) ([]byte, error) {
	switch v := a.(type) {
	case SelectedOption:
		return json.Marshal(answerEnvelope{Type: answerTypeOption, OptionID: v.OptionID})
	case BoolAnswer:
		return json.Marshal(answerEnvelope{Type: answerTypeBool, Value: v.Value})
	case TextAnswer:
		return json.Marshal(answerEnvelope{Type: answerTypeText, Text: v.Text})
	case SpokenAnswer:
		return json.Marshal(answerEnvelope{Type: answerTypeSpeech, Transcript: v.Transcript})
	default:
		return nil, fmt.Errorf("cannot marshal answer %T", a)
	}
}

// UnmarshalAnswer decodes a type-tagged answer from the wire.
func UnmarshalAnswer(data []byte) (Answer, error) {
	var env answerEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case answerTypeOption:
		return SelectedOption{OptionID: env.OptionID}, nil
	case answerTypeBool:
		return BoolAnswer{Value: env.Value}, nil
	case answerTypeText:
		return TextAnswer{Text: env.Text}, nil
	case answerTypeSpeech:
		return SpokenAnswer{Transcript: env.Transcript}, nil
	default:
		return nil, fmt.Errorf("unknown answer type %q", env.Type)
	}
}
