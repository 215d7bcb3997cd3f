package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriterionValidation(t *testing.T) {
	t.Run("Valid criterion", func(t *testing.T) {
		criterion := NewCriterion("Delivered ahead of schedule", 3, KindPositive)
		assert.NoError(t, criterion.Validate())
		assert.NotEmpty(t, criterion.ID)
	})

	t.Run("Missing label", func(t *testing.T) {
		criterion := NewCriterion("", 3, KindPositive)
		assert.Error(t, criterion.Validate())
	})

	t.Run("Non-positive points", func(t *testing.T) {
		assert.Error(t, NewCriterion("test", 0, KindWarning).Validate())
		assert.Error(t, NewCriterion("test", -2, KindWarning).Validate())
	})

	t.Run("Unknown kind", func(t *testing.T) {
		criterion := NewCriterion("test", 1, CriterionKind("neutral"))
		assert.Error(t, criterion.Validate())
	})
}

func TestDefaultCriteria(t *testing.T) {
	criteria := DefaultCriteria()
	assert.NotEmpty(t, criteria)

	var positives, warnings int
	for _, criterion := range criteria {
		assert.NoError(t, criterion.Validate())
		switch criterion.Kind {
		case KindPositive:
			positives++
		case KindWarning:
			warnings++
		}
	}

	// The seed catalog carries both kinds
	assert.Greater(t, positives, 0)
	assert.Greater(t, warnings, 0)
	assert.Equal(t, len(criteria), positives+warnings)
}

func TestEvaluationEmbedsCriterionCopy(t *testing.T) {
	criterion := NewCriterion("Client praised the work", 4, KindPositive)
	evaluation := NewEvaluation("project-1", "user-1", criterion)

	// Mutating the catalog entry afterwards must not affect the record
	criterion.Points = 99
	assert.Equal(t, 4, evaluation.Criterion.Points)
	assert.Equal(t, "Client praised the work", evaluation.Criterion.Label)
}

func TestEvaluationValidation(t *testing.T) {
	criterion := NewCriterion("test", 1, KindWarning)

	assert.NoError(t, NewEvaluation("p", "u", criterion).Validate())
	assert.Error(t, NewEvaluation("", "u", criterion).Validate())
	assert.Error(t, NewEvaluation("p", "", criterion).Validate())
}
