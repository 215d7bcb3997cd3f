package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/crewboard/internal/models"
)

func TestRecomputeIsDeterministic(t *testing.T) {
	stack := newScoringStack(t)

	win := seedCriterion(t, stack, "win", 6, models.KindPositive)
	slip := seedCriterion(t, stack, "slip", 2, models.KindWarning)

	_, err := stack.evaluations.SaveEvaluation("project-1", "user-1", []string{win, slip}, models.DifficultyHard)
	require.NoError(t, err)

	first, err := stack.scoring.GetScore("project-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, first)

	// Recomputing over the unchanged ledger gives the same result and
	// updates the same row
	for i := 0; i < 3; i++ {
		_, err := stack.scoring.Recompute("project-1", "user-1", models.DifficultyHard)
		require.NoError(t, err)

		stored, err := stack.scoring.GetScore("project-1", "user-1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, first.ID, stored.ID)
		assert.Equal(t, first.Value, stored.Value)
		assert.Equal(t, first.Breakdown, stored.Breakdown)
		assert.Equal(t, first.Difficulty, stored.Difficulty)
		assert.Equal(t, first.HasEvaluations, stored.HasEvaluations)
	}
}

func TestRecomputeValidatesInput(t *testing.T) {
	stack := newScoringStack(t)

	_, err := stack.scoring.Recompute("", "user-1", models.DifficultyEasy)
	assert.Error(t, err)

	_, err = stack.scoring.Recompute("project-1", "", models.DifficultyEasy)
	assert.Error(t, err)

	_, err = stack.scoring.Recompute("project-1", "user-1", models.Difficulty(9))
	assert.Error(t, err)
}

func TestGetScoreMissingPairReturnsNil(t *testing.T) {
	stack := newScoringStack(t)

	score, err := stack.scoring.GetScore("project-1", "never-evaluated")
	require.NoError(t, err)
	assert.Nil(t, score)
}

func TestRankingsOrderAndTieBreak(t *testing.T) {
	stack := newScoringStack(t)

	big := seedCriterion(t, stack, "big", 6, models.KindPositive)
	small := seedCriterion(t, stack, "small", 2, models.KindPositive)

	// user-c outranks the tied pair; the tie between user-a and user-b
	// breaks on user ID ascending
	_, err := stack.evaluations.SaveEvaluation("project-1", "user-c", []string{big}, models.DifficultyMedium)
	require.NoError(t, err)
	_, err = stack.evaluations.SaveEvaluation("project-1", "user-b", []string{small}, models.DifficultyEasy)
	require.NoError(t, err)
	_, err = stack.evaluations.SaveEvaluation("project-1", "user-a", []string{small}, models.DifficultyEasy)
	require.NoError(t, err)

	rankings, err := stack.scoring.Rankings("project-1")
	require.NoError(t, err)
	require.Len(t, rankings, 3)

	assert.Equal(t, []string{"user-c", "user-a", "user-b"}, []string{
		rankings[0].UserID, rankings[1].UserID, rankings[2].UserID,
	})
	assert.Equal(t, 12, rankings[0].Value)
	assert.Equal(t, 2, rankings[1].Value)
	assert.Equal(t, 2, rankings[2].Value)
	for i, entry := range rankings {
		assert.Equal(t, i+1, entry.Position)
	}
}

func TestRankingsUsesDisplayNames(t *testing.T) {
	stack := newScoringStack(t)

	editor := &models.User{ID: uuid.New(), Name: "Maya the Editor", Email: "maya@studio.test"}
	require.NoError(t, stack.userRepo.Create(editor))

	win := seedCriterion(t, stack, "win", 3, models.KindPositive)
	_, err := stack.evaluations.SaveEvaluation("project-1", editor.ID.String(), []string{win}, models.DifficultyEasy)
	require.NoError(t, err)

	// A second score belongs to a user ID with no user row behind it
	_, err = stack.evaluations.SaveEvaluation("project-1", "departed-freelancer", nil, models.DifficultyEasy)
	require.NoError(t, err)

	rankings, err := stack.scoring.Rankings("project-1")
	require.NoError(t, err)
	require.Len(t, rankings, 2)

	assert.Equal(t, "Maya the Editor", rankings[0].UserName)
	// Dangling IDs fall back to the raw ID instead of dropping the row
	assert.Equal(t, "departed-freelancer", rankings[1].UserName)
	assert.False(t, rankings[1].HasEvaluations)
}

func TestRankingsIncludesZeroScoredMembers(t *testing.T) {
	stack := newScoringStack(t)

	blunder := seedCriterion(t, stack, "blunder", 8, models.KindWarning)
	win := seedCriterion(t, stack, "win", 1, models.KindPositive)

	_, err := stack.evaluations.SaveEvaluation("project-1", "user-a", []string{blunder}, models.DifficultyMedium)
	require.NoError(t, err)
	_, err = stack.evaluations.SaveEvaluation("project-1", "user-b", []string{win}, models.DifficultyEasy)
	require.NoError(t, err)

	rankings, err := stack.scoring.Rankings("project-1")
	require.NoError(t, err)
	require.Len(t, rankings, 2)

	// The clamped member ranks last but is still shown, flagged as evaluated
	assert.Equal(t, "user-b", rankings[0].UserID)
	assert.Equal(t, "user-a", rankings[1].UserID)
	assert.Equal(t, 0, rankings[1].Value)
	assert.True(t, rankings[1].HasEvaluations)
}
