package redis

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"lumi-exercise-service/internal/app"
	"lumi-exercise-service/internal/engine"
)

func TestAttemptStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewAttemptStore(client, time.Minute)

	_, err = store.GetOrCreate("attempt-1", func() (*app.Attempt, error) {
		session, err := engine.NewSession("ex-1", sampleExercise().Questions)
		if err != nil {
			return nil, err
		}
		return app.NewAttempt("attempt-1", session), nil
	})
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if !mr.Exists("attempt:live:attempt-1") {
		t.Fatalf("expected redis key to be set")
	}

	store.Delete("attempt-1")
	if mr.Exists("attempt:live:attempt-1") {
		t.Fatalf("expected redis key to be removed")
	}
}
