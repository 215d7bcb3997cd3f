package models

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is the project-complexity multiplier applied to a member's
// net evaluation points
type Difficulty int

const (
	DifficultyEasy     Difficulty = 1
	DifficultyMedium   Difficulty = 2
	DifficultyHard     Difficulty = 3
	DifficultyHardcore Difficulty = 5
)

// Difficulties returns all multipliers in ascending order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyHardcore}
}

// IsValid checks if the difficulty is one of the closed set {1, 2, 3, 5}
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyHardcore:
		return true
	}
	return false
}

// Label returns the difficulty name shown in the UI
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyHardcore:
		return "Hardcore"
	}
	return "Unknown"
}

// ScoreBreakdown carries the aggregate positive and warning point sums
// behind a score, for the "+7 / -3" badges in the rankings view
type ScoreBreakdown struct {
	Positives int `json:"positives"`
	Warnings  int `json:"warnings"`
}

// Base returns the net points before the difficulty multiplier. May be
// negative.
func (b ScoreBreakdown) Base() int {
	return b.Positives - b.Warnings
}

// Score is the cached ranking result for one (project, user) pair.
// At most one row exists per pair; recomputation replaces it in place.
type Score struct {
	ID             string         `json:"id"`
	ProjectID      string         `json:"project_id"`
	UserID         string         `json:"user_id"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Difficulty     Difficulty     `json:"difficulty"`
	Value          int            `json:"value"`
	HasEvaluations bool           `json:"has_evaluations"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewScore creates a new Score with a generated UUID
func NewScore(projectID, userID string, difficulty Difficulty) *Score {
	now := time.Now()
	return &Score{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		UserID:     userID,
		Difficulty: difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Compute fills the breakdown and final value from a set of evaluation
// records. The value is clamped at zero: a heavily warned member and a
// never-evaluated member both display 0.
func (s *Score) Compute(records []*Evaluation) {
	breakdown := ScoreBreakdown{}
	for _, record := range records {
		switch record.Criterion.Kind {
		case KindPositive:
			breakdown.Positives += record.Criterion.Points
		case KindWarning:
			breakdown.Warnings += record.Criterion.Points
		}
	}

	value := breakdown.Base() * int(s.Difficulty)
	if value < 0 {
		value = 0
	}

	s.Breakdown = breakdown
	s.Value = value
	s.HasEvaluations = len(records) > 0
}
