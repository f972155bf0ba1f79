package domain

// Verdict is the outcome of validating a single submission.
type Verdict string

const (
	VerdictCorrect      Verdict = "correct"
	VerdictIncorrect    Verdict = "incorrect"
	VerdictUndetermined Verdict = "undetermined"
)

// Tier is the display band derived from the score percentage.
type Tier string

const (
	TierExcellent        Tier = "excellent"
	TierGood             Tier = "good"
	TierFair             Tier = "fair"
	TierNeedsImprovement Tier = "needs_improvement"
)

// QuestionOutcome pairs a question with what was submitted for it.
type QuestionOutcome struct {
	Question  Question `json:"question"`
	Submitted Answer   `json:"submitted"`
	Verdict   Verdict  `json:"verdict"`
}

// Result is the immutable report produced once a session completes.
type Result struct {
	ExerciseID         string            `json:"exerciseId"`
	TotalScore         int               `json:"totalScore"`
	TotalPossibleScore int               `json:"totalPossibleScore"`
	ScorePercentage    int               `json:"scorePercentage"`
	Tier               Tier              `json:"tier"`
	IsSuccess          bool              `json:"isSuccess"`
	Breakdown          []QuestionOutcome `json:"breakdown"`
}
