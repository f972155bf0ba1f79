package domain

import "errors"

var (
	// ErrInvalidQuestion is returned when a question violates its
	// construction invariants.
	ErrInvalidQuestion = errors.New("invalid question definition")
	// ErrTypeMismatch is returned when an answer's shape does not match the
	// question variant. It signals a caller bug, never a wrong answer.
	ErrTypeMismatch = errors.New("answer type does not match question variant")
	// ErrOutOfOrderSubmission is returned when a submission targets an index
	// other than the session's current one.
	ErrOutOfOrderSubmission = errors.New("submission out of order")
	// ErrQuestionUnanswered is returned when advancing past a question that
	// has no recorded answer.
	ErrQuestionUnanswered = errors.New("current question has no recorded answer")
	// ErrSessionComplete is returned when advancing a completed session.
	ErrSessionComplete = errors.New("session already complete")
	// ErrSessionNotComplete is returned when a result is requested before the
	// session completes.
	ErrSessionNotComplete = errors.New("session not complete")
	// ErrExerciseNotFound indicates the exercise content could not be loaded.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrQuestionNotFound indicates a question index outside the session.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAttemptNotFound is returned when a caller acts on an attempt that was
	// never started or has been discarded.
	ErrAttemptNotFound = errors.New("attempt not found")
)
