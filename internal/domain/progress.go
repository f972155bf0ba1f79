package domain

import "time"

// ProgressSnapshot is a read-only view of an attempt, safe to hand to the
// presentation layer for rendering progress bars and navigation state.
type ProgressSnapshot struct {
	AttemptID      string    `json:"attemptId"`
	ExerciseID     string    `json:"exerciseId"`
	CurrentIndex   int       `json:"currentIndex"`
	TotalQuestions int       `json:"totalQuestions"`
	AnsweredCount  int       `json:"answeredCount"`
	IsLastQuestion bool      `json:"isLastQuestion"`
	Completed      bool      `json:"completed"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
