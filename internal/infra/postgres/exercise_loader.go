package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"lumi-exercise-service/internal/domain"
)

// ExerciseLoader loads exercise JSONB from Postgres.
type ExerciseLoader struct {
	pool *pgxpool.Pool
}

func NewExerciseLoader(pool *pgxpool.Pool) *ExerciseLoader {
	return &ExerciseLoader{pool: pool}
}

func (l *ExerciseLoader) LoadExercise(ctx context.Context, exerciseID string) (domain.Exercise, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM exercises WHERE id=$1`, exerciseID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Exercise{}, domain.ErrExerciseNotFound
	}
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("load exercise: %w", err)
	}
	var exercise domain.Exercise
	if err := json.Unmarshal(raw, &exercise); err != nil {
		return domain.Exercise{}, fmt.Errorf("unmarshal exercise: %w", err)
	}
	return exercise, nil
}
