package memory

import (
	"sync"

	"lumi-exercise-service/internal/app"
)

// AttemptStore is an in-memory implementation of app.AttemptRepository.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts map[string]*app.Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{
		attempts: make(map[string]*app.Attempt),
	}
}

func (s *AttemptStore) GetOrCreate(attemptID string, build func() (*app.Attempt, error)) (*app.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt, ok := s.attempts[attemptID]; ok {
		return attempt, nil
	}
	attempt, err := build()
	if err != nil {
		return nil, err
	}
	s.attempts[attemptID] = attempt
	return attempt, nil
}

func (s *AttemptStore) Get(attemptID string) (*app.Attempt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attempt, ok := s.attempts[attemptID]
	return attempt, ok
}

func (s *AttemptStore) Delete(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, attemptID)
}
