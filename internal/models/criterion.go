package models

import (
	"time"

	"github.com/google/uuid"
)

// CriterionKind determines whether a criterion's points add to or
// subtract from a member's score
type CriterionKind string

const (
	KindPositive CriterionKind = "positive"
	KindWarning  CriterionKind = "warning"
)

// IsValid checks if the kind is one of the known values
func (k CriterionKind) IsValid() bool {
	return k == KindPositive || k == KindWarning
}

// Criterion represents a single peer-evaluation scoring rule. Points
// are always stored as a positive magnitude; Kind carries the sign.
type Criterion struct {
	ID        string        `json:"id"`
	Label     string        `json:"label"`
	Points    int           `json:"points"`
	Kind      CriterionKind `json:"kind"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewCriterion creates a new Criterion with a generated UUID
func NewCriterion(label string, points int, kind CriterionKind) *Criterion {
	return &Criterion{
		ID:        uuid.New().String(),
		Label:     label,
		Points:    points,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
}

// Validate validates the Criterion
func (c *Criterion) Validate() error {
	if c.Label == "" {
		return &ValidationError{Field: "label", Message: "Criterion label is required"}
	}
	if c.Points <= 0 {
		return &ValidationError{Field: "points", Message: "Criterion points must be positive"}
	}
	if !c.Kind.IsValid() {
		return &ValidationError{Field: "kind", Message: "Criterion kind must be positive or warning"}
	}
	return nil
}

// DefaultCriteria returns the built-in scoring catalog used to seed a
// fresh installation
func DefaultCriteria() []*Criterion {
	return []*Criterion{
		NewCriterion("Delivered ahead of schedule", 3, KindPositive),
		NewCriterion("Client praised the work", 4, KindPositive),
		NewCriterion("Helped a teammate unblock", 2, KindPositive),
		NewCriterion("Cut approved on first review pass", 3, KindPositive),
		NewCriterion("Brought an idea the client bought", 5, KindPositive),
		NewCriterion("Missed an internal deadline", 2, KindWarning),
		NewCriterion("Footage required a reshoot", 4, KindWarning),
		NewCriterion("Brief not followed", 3, KindWarning),
		NewCriterion("Unresponsive during review", 2, KindWarning),
		NewCriterion("Delivered without QC checklist", 1, KindWarning),
	}
}
