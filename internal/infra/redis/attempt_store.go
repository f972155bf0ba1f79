package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"lumi-exercise-service/internal/app"
)

// AttemptStore is a Redis-aware implementation of app.AttemptRepository.
// Notes:
//   - It still keeps a local in-memory map of attempts because the engine
//     session and its in-process progress broadcast live in this process.
//   - Redis is used to mark attempt liveness (and could be extended to share
//     snapshots or route cross-instance pub/sub).
type AttemptStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	attempts map[string]*app.Attempt
}

func NewAttemptStore(client *redis.Client, ttl time.Duration) *AttemptStore {
	return &AttemptStore{
		client:   client,
		ttl:      ttl,
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
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(attemptID), "1", s.ttl).Err()
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
	if _, ok := s.attempts[attemptID]; !ok {
		return
	}
	delete(s.attempts, attemptID)
	_ = s.client.Del(context.Background(), s.key(attemptID)).Err()
}

func (s *AttemptStore) key(attemptID string) string {
	return "attempt:live:" + attemptID
}
