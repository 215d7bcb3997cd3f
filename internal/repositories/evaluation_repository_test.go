package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/crewboard/internal/models"
)

func TestEvaluationReplaceForProjectUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewEvaluationRepository(db)

	onTime := models.NewCriterion("Delivered ahead of schedule", 3, models.KindPositive)
	praised := models.NewCriterion("Client praised the work", 4, models.KindPositive)
	missed := models.NewCriterion("Missed an internal deadline", 2, models.KindWarning)

	// Initial selection for user-1: two criteria
	err := repo.ReplaceForProjectUser("project-1", "user-1", []*models.Evaluation{
		models.NewEvaluation("project-1", "user-1", onTime),
		models.NewEvaluation("project-1", "user-1", praised),
	})
	require.NoError(t, err)

	// Another user on the same project
	err = repo.ReplaceForProjectUser("project-1", "user-2", []*models.Evaluation{
		models.NewEvaluation("project-1", "user-2", missed),
	})
	require.NoError(t, err)

	// Re-submitting user-1 with a different selection replaces, not appends
	err = repo.ReplaceForProjectUser("project-1", "user-1", []*models.Evaluation{
		models.NewEvaluation("project-1", "user-1", missed),
	})
	require.NoError(t, err)

	records, err := repo.ListByProjectAndUser("project-1", "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, missed.ID, records[0].Criterion.ID)
	assert.Equal(t, "Missed an internal deadline", records[0].Criterion.Label)
	assert.Equal(t, 2, records[0].Criterion.Points)
	assert.Equal(t, models.KindWarning, records[0].Criterion.Kind)

	// user-2's ledger is untouched
	others, err := repo.ListByProjectAndUser("project-1", "user-2")
	require.NoError(t, err)
	assert.Len(t, others, 1)

	all, err := repo.ListByProject("project-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEvaluationReplaceWithEmptyClearsLedger(t *testing.T) {
	db := newTestDB(t)
	repo := NewEvaluationRepository(db)

	criterion := models.NewCriterion("Helped a teammate unblock", 2, models.KindPositive)
	err := repo.ReplaceForProjectUser("project-1", "user-1", []*models.Evaluation{
		models.NewEvaluation("project-1", "user-1", criterion),
	})
	require.NoError(t, err)

	// An empty selection wipes the pair's records
	err = repo.ReplaceForProjectUser("project-1", "user-1", nil)
	require.NoError(t, err)

	records, err := repo.ListByProjectAndUser("project-1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEvaluationListByProjectAndUserEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewEvaluationRepository(db)

	records, err := repo.ListByProjectAndUser("project-1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEvaluationSnapshotSurvivesCatalogDelete(t *testing.T) {
	db := newTestDB(t)
	evaluations := NewEvaluationRepository(db)
	criteria := NewCriterionRepository(db)

	criterion := models.NewCriterion("Brought an idea the client bought", 5, models.KindPositive)
	require.NoError(t, criteria.Create(criterion))

	err := evaluations.ReplaceForProjectUser("project-1", "user-1", []*models.Evaluation{
		models.NewEvaluation("project-1", "user-1", criterion),
	})
	require.NoError(t, err)

	// Wiping the catalog must not invalidate the ledger snapshot
	require.NoError(t, criteria.DeleteAll())

	records, err := evaluations.ListByProjectAndUser("project-1", "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Criterion.Points)
	assert.Equal(t, "Brought an idea the client bought", records[0].Criterion.Label)
}
