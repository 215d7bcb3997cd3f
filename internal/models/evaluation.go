package models

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation represents one criterion checked for a user on a project.
// The criterion is embedded as a full copy taken at assignment time, so
// the record stays self-contained even if the catalog changes later.
type Evaluation struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Criterion Criterion `json:"criterion"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEvaluation creates a new Evaluation embedding a snapshot of the
// given criterion
func NewEvaluation(projectID, userID string, criterion *Criterion) *Evaluation {
	return &Evaluation{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		UserID:    userID,
		Criterion: *criterion,
		CreatedAt: time.Now(),
	}
}

// Validate validates the Evaluation
func (e *Evaluation) Validate() error {
	if e.ProjectID == "" {
		return &ValidationError{Field: "project_id", Message: "Project ID is required"}
	}
	if e.UserID == "" {
		return &ValidationError{Field: "user_id", Message: "User ID is required"}
	}
	return e.Criterion.Validate()
}
