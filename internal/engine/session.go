package engine

import (
	"fmt"

	"lumi-exercise-service/internal/domain"
)

// Session is the state machine for one attempt at an exercise. It owns the
// ordered question list, the cursor, and everything recorded so far. It is a
// plain single-writer value: callers that share one across goroutines must
// serialize access themselves (the app layer's Attempt does exactly that).
type Session struct {
	exerciseID string
	questions  []domain.Question
	current    int
	answers    map[int]domain.Answer
	verdicts   map[int]domain.Verdict
	completed  bool
}

// NewSession validates the questions and builds a fresh session. An empty
// question list is legal and yields an immediately completed session.
func NewSession(exerciseID string, questions []domain.Question) (*Session, error) {
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)
	return &Session{
		exerciseID: exerciseID,
		questions:  qs,
		answers:    make(map[int]domain.Answer, len(qs)),
		verdicts:   make(map[int]domain.Verdict, len(qs)),
		completed:  len(qs) == 0,
	}, nil
}

// Submit records and validates an answer for the current question. A repeat
// submission for the same index overwrites the previous one and re-validates.
func (s *Session) Submit(index int, answer domain.Answer) (domain.Verdict, error) {
	if s.completed {
		return "", domain.ErrSessionComplete
	}
	if index != s.current {
		return "", fmt.Errorf("%w: got index %d, current is %d", domain.ErrOutOfOrderSubmission, index, s.current)
	}
	verdict, err := Evaluate(s.questions[index], answer)
	if err != nil {
		return "", err
	}
	s.answers[index] = answer
	s.verdicts[index] = verdict
	return verdict, nil
}

// Advance moves to the next question, or completes the session when the
// current question is the last one. The current question must have a recorded
// answer, even an undetermined one.
func (s *Session) Advance() error {
	if s.completed {
		return domain.ErrSessionComplete
	}
	if _, ok := s.answers[s.current]; !ok {
		return fmt.Errorf("%w: index %d", domain.ErrQuestionUnanswered, s.current)
	}
	if s.IsLastQuestion() {
		s.completed = true
		return nil
	}
	s.current++
	return nil
}

// Retreat moves back one question. At the first question it is a no-op, never
// an error, and it never clears the answer recorded for the question left.
func (s *Session) Retreat() {
	if s.current > 0 && !s.completed {
		s.current--
	}
}

// IsLastQuestion reports whether the cursor sits on the final question.
func (s *Session) IsLastQuestion() bool {
	return len(s.questions) > 0 && s.current == len(s.questions)-1
}

// Completed reports whether the session has finished.
func (s *Session) Completed() bool { return s.completed }

// CurrentIndex returns the cursor position.
func (s *Session) CurrentIndex() int { return s.current }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// ExerciseID returns the id of the exercise this session was built from.
func (s *Session) ExerciseID() string { return s.exerciseID }

// AnsweredCount returns how many questions have a recorded answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// QuestionAt exposes a question for rendering.
func (s *Session) QuestionAt(index int) (domain.Question, bool) {
	if index < 0 || index >= len(s.questions) {
		return domain.Question{}, false
	}
	return s.questions[index], true
}

// AnswerAt exposes the recorded answer and verdict for an index, if any.
func (s *Session) AnswerAt(index int) (domain.Answer, domain.Verdict, bool) {
	a, ok := s.answers[index]
	if !ok {
		return nil, "", false
	}
	return a, s.verdicts[index], true
}
