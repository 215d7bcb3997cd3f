package models

import (
	"time"

	"github.com/google/uuid"
)

// Stage represents a project's position in the production workflow
type Stage string

const (
	StageBriefing   Stage = "briefing"
	StageScripting  Stage = "scripting"
	StageProduction Stage = "production"
	StageEditing    Stage = "editing"
	StageReview     Stage = "review"
	StageDelivered  Stage = "delivered"
)

// stageOrder is the fixed linear workflow. Projects only ever move
// forward, one stage at a time.
var stageOrder = []Stage{
	StageBriefing,
	StageScripting,
	StageProduction,
	StageEditing,
	StageReview,
	StageDelivered,
}

// Stages returns the workflow sequence in order
func Stages() []Stage {
	return stageOrder
}

// IsValid checks if the stage is one of the workflow stages
func (s Stage) IsValid() bool {
	for _, stage := range stageOrder {
		if s == stage {
			return true
		}
	}
	return false
}

// Next returns the following workflow stage. The second return value
// is false when the project is already delivered.
func (s Stage) Next() (Stage, bool) {
	for i, stage := range stageOrder {
		if s == stage && i < len(stageOrder)-1 {
			return stageOrder[i+1], true
		}
	}
	return s, false
}

type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ClientID    string     `json:"client_id"`
	OwnerID     string     `json:"owner_id"`
	Description string     `json:"description"`
	Stage       Stage      `json:"stage"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// NewProject creates a new Project in the briefing stage
func NewProject(name, clientID, ownerID string) *Project {
	now := time.Now()
	return &Project{
		ID:        uuid.New().String(),
		Name:      name,
		ClientID:  clientID,
		OwnerID:   ownerID,
		Stage:     StageBriefing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return ErrProjectNameRequired
	}
	if !p.Stage.IsValid() {
		return &ValidationError{Field: "stage", Message: "Unknown workflow stage"}
	}
	return nil
}

// Common errors
var (
	ErrProjectNameRequired = &ValidationError{Field: "name", Message: "Project name is required"}
)
