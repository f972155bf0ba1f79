package app

import (
	"context"

	"lumi-exercise-service/internal/domain"
	"lumi-exercise-service/internal/engine"
)

// AttemptRepository abstracts how live attempts are tracked (in-memory,
// Redis-marked, etc).
type AttemptRepository interface {
	GetOrCreate(attemptID string, build func() (*Attempt, error)) (*Attempt, error)
	Get(attemptID string) (*Attempt, bool)
	Delete(attemptID string)
}

// ExerciseRepository loads exercise content (from cache/backing store).
type ExerciseRepository interface {
	GetExercise(ctx context.Context, exerciseID string) (domain.Exercise, error)
}

// ExerciseService contains the attempt lifecycle use cases: start an attempt,
// drive it with submissions and navigation, and finalize it into a result.
type ExerciseService struct {
	attempts  AttemptRepository
	exercises ExerciseRepository
}

func NewExerciseService(attempts AttemptRepository, exercises ExerciseRepository) *ExerciseService {
	return &ExerciseService{attempts: attempts, exercises: exercises}
}

// Start loads and validates the exercise, then creates (or rejoins) the
// attempt. Content that fails its invariants rejects the whole attempt.
func (s *ExerciseService) Start(ctx context.Context, exerciseID, attemptID string) (domain.ProgressSnapshot, error) {
	exercise, err := s.exercises.GetExercise(ctx, exerciseID)
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}

	attempt, err := s.attempts.GetOrCreate(attemptID, func() (*Attempt, error) {
		session, err := engine.NewSession(exercise.ID, exercise.Questions)
		if err != nil {
			return nil, err
		}
		return NewAttempt(attemptID, session), nil
	})
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}
	return attempt.snapshot(), nil
}

// Submit validates an answer for the attempt's current question and returns
// the verdict together with the refreshed progress snapshot.
func (s *ExerciseService) Submit(_ context.Context, attemptID string, index int, answer domain.Answer) (domain.Verdict, domain.ProgressSnapshot, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return "", domain.ProgressSnapshot{}, domain.ErrAttemptNotFound
	}
	return attempt.submit(index, answer)
}

// Advance moves the attempt forward, completing it on the last question.
func (s *ExerciseService) Advance(_ context.Context, attemptID string) (domain.ProgressSnapshot, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return domain.ProgressSnapshot{}, domain.ErrAttemptNotFound
	}
	return attempt.advance()
}

// Retreat moves the attempt back one question; a no-op at the first.
func (s *ExerciseService) Retreat(_ context.Context, attemptID string) (domain.ProgressSnapshot, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return domain.ProgressSnapshot{}, domain.ErrAttemptNotFound
	}
	return attempt.retreat(), nil
}

// Finalize builds the result report for a completed attempt.
func (s *ExerciseService) Finalize(_ context.Context, attemptID string) (domain.Result, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return domain.Result{}, domain.ErrAttemptNotFound
	}
	return attempt.finalize()
}

// Question exposes a question for rendering by index.
func (s *ExerciseService) Question(_ context.Context, attemptID string, index int) (domain.Question, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return domain.Question{}, domain.ErrAttemptNotFound
	}
	q, ok := attempt.questionAt(index)
	if !ok {
		return domain.Question{}, domain.ErrQuestionNotFound
	}
	return q, nil
}

// Subscribe returns a channel that receives progress updates for an attempt.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *ExerciseService) Subscribe(_ context.Context, attemptID string) (<-chan domain.ProgressSnapshot, func(), error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return nil, nil, domain.ErrAttemptNotFound
	}
	ch, cancel := attempt.subscribe()
	return ch, cancel, nil
}

// Abandon discards the attempt; the learner simply walked away.
func (s *ExerciseService) Abandon(_ context.Context, attemptID string) {
	s.attempts.Delete(attemptID)
}
