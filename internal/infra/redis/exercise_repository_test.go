package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"lumi-exercise-service/internal/domain"
	"lumi-exercise-service/internal/infra/memory"
)

func TestExerciseRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		ExerciseLoader: memory.NewStaticExerciseLoader(map[string]domain.Exercise{
			"ex-1": sampleExercise(),
		}),
	}
	repo := NewExerciseRepository(client, loader, time.Minute)

	exercise, err := repo.GetExercise(context.Background(), "ex-1")
	if err != nil {
		t.Fatalf("get exercise: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("exercise:ex-1:doc") {
		t.Fatalf("expected cached document in redis")
	}

	// Second call should hit cache, loader not incremented.
	cached, err := repo.GetExercise(context.Background(), "ex-1")
	if err != nil {
		t.Fatalf("get exercise 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if len(cached.Questions) != len(exercise.Questions) {
		t.Fatalf("cached exercise lost questions: %d vs %d", len(cached.Questions), len(exercise.Questions))
	}
	// Variant payloads must survive the round trip through redis.
	if _, ok := cached.Questions[0].Variant.(domain.MultipleChoice); !ok {
		t.Fatalf("expected multiple choice variant, got %T", cached.Questions[0].Variant)
	}
}

type countingLoader struct {
	memory.ExerciseLoader
	calls int
}

func (l *countingLoader) LoadExercise(ctx context.Context, exerciseID string) (domain.Exercise, error) {
	l.calls++
	return l.ExerciseLoader.LoadExercise(ctx, exerciseID)
}

func sampleExercise() domain.Exercise {
	return domain.Exercise{
		ID: "ex-1",
		Questions: []domain.Question{
			{
				ID:     "q1",
				Prompt: "Which city is the capital of France?",
				Points: 10,
				Variant: domain.MultipleChoice{
					Options:         []domain.Option{{ID: "a", Text: "Lyon"}, {ID: "b", Text: "Paris"}},
					CorrectOptionID: "b",
				},
			},
			{ID: "q2", Prompt: "Say hello.", Points: 5, Variant: domain.Speaking{Guidance: "slowly"}},
		},
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
