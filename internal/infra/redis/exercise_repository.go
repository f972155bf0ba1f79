package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"lumi-exercise-service/internal/domain"
)

// ExerciseLoader fetches exercise content from a backing store (e.g., Postgres).
type ExerciseLoader interface {
	LoadExercise(ctx context.Context, exerciseID string) (domain.Exercise, error)
}

// ExerciseRepository caches the full exercise document in Redis and falls
// back to a loader on cache miss. The heterogeneous question variants (typed
// text answers, keyword sets) don't flatten into per-question hashes, so the
// whole document is stored as JSON:
//
//	SET exercise:{exerciseID}:doc {json} EX ttl
type ExerciseRepository struct {
	client *redis.Client
	loader ExerciseLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewExerciseRepository(client *redis.Client, loader ExerciseLoader, ttl time.Duration) *ExerciseRepository {
	return &ExerciseRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ExerciseRepository) GetExercise(ctx context.Context, exerciseID string) (domain.Exercise, error) {
	key := r.docKey(exerciseID)

	if cached, err := r.client.Get(ctx, key).Bytes(); err == nil && len(cached) > 0 {
		var exercise domain.Exercise
		if err := json.Unmarshal(cached, &exercise); err == nil {
			return exercise, nil
		}
		// Corrupt cache entry; fall through and reload.
		_ = r.client.Del(ctx, key).Err()
	}

	result, err, _ := r.sf.Do(exerciseID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if cached, err := r.client.Get(ctx, key).Bytes(); err == nil && len(cached) > 0 {
			var exercise domain.Exercise
			if err := json.Unmarshal(cached, &exercise); err == nil {
				return exercise, nil
			}
		}

		exercise, err := r.loader.LoadExercise(ctx, exerciseID)
		if err != nil {
			return domain.Exercise{}, err
		}

		if data, err := json.Marshal(exercise); err == nil {
			_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()
		}
		return exercise, nil
	})
	if err != nil {
		return domain.Exercise{}, err
	}
	return result.(domain.Exercise), nil
}

func (r *ExerciseRepository) docKey(exerciseID string) string {
	return "exercise:" + exerciseID + ":doc"
}

func (r *ExerciseRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
