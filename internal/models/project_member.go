package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMember represents a user's assignment to a project team
type ProjectMember struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProjectMember creates a new ProjectMember with a generated UUID
func NewProjectMember(projectID, userID, role string) *ProjectMember {
	now := time.Now()
	return &ProjectMember{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the ProjectMember
func (pm *ProjectMember) Validate() error {
	if pm.ProjectID == "" {
		return &ValidationError{Field: "project_id", Message: "Project ID is required"}
	}
	if pm.UserID == "" {
		return &ValidationError{Field: "user_id", Message: "User ID is required"}
	}
	return nil
}
