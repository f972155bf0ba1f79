package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"lumi-exercise-service/internal/domain"
)

// ExerciseLoader fetches exercise content from a backing store (e.g., Postgres).
type ExerciseLoader interface {
	LoadExercise(ctx context.Context, exerciseID string) (domain.Exercise, error)
}

// ExerciseRepository caches exercises with TTL to avoid repeated DB hits.
type ExerciseRepository struct {
	loader ExerciseLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedExercise
}

type cachedExercise struct {
	exercise  domain.Exercise
	expiresAt time.Time
}

func NewExerciseRepository(loader ExerciseLoader, ttl time.Duration) *ExerciseRepository {
	return &ExerciseRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedExercise),
	}
}

func (r *ExerciseRepository) GetExercise(ctx context.Context, exerciseID string) (domain.Exercise, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[exerciseID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.exercise, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(exerciseID, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[exerciseID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.exercise, nil
		}
		r.mu.RUnlock()

		exercise, err := r.loader.LoadExercise(ctx, exerciseID)
		if err != nil {
			return domain.Exercise{}, err
		}

		r.mu.Lock()
		r.cache[exerciseID] = cachedExercise{
			exercise:  exercise,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return exercise, nil
	})
	if err != nil {
		return domain.Exercise{}, err
	}
	return result.(domain.Exercise), nil
}

// StaticExerciseLoader is a simple loader backed by an in-memory map (useful
// for tests/demos).
type StaticExerciseLoader struct {
	exercises map[string]domain.Exercise
}

func NewStaticExerciseLoader(exercises map[string]domain.Exercise) *StaticExerciseLoader {
	return &StaticExerciseLoader{exercises: exercises}
}

func (l *StaticExerciseLoader) LoadExercise(_ context.Context, exerciseID string) (domain.Exercise, error) {
	if exercise, ok := l.exercises[exerciseID]; ok {
		return exercise, nil
	}
	return domain.Exercise{}, domain.ErrExerciseNotFound
}

func (r *ExerciseRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
