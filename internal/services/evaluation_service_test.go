package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/crewboard/internal/events"
	"github.com/studiokit/crewboard/internal/models"
)

// seedCriterion registers a criterion with known points directly in the
// catalog and returns its ID
func seedCriterion(t *testing.T, stack *scoringStack, label string, points int, kind models.CriterionKind) string {
	t.Helper()
	criterion := models.NewCriterion(label, points, kind)
	require.NoError(t, stack.criterionRepo.Create(criterion))
	return criterion.ID
}

func TestSaveEvaluationComputesScore(t *testing.T) {
	stack := newScoringStack(t)

	bigWin := seedCriterion(t, stack, "positive six", 6, models.KindPositive)
	smallWin := seedCriterion(t, stack, "positive four", 4, models.KindPositive)
	slip := seedCriterion(t, stack, "warning four", 4, models.KindWarning)
	blunder := seedCriterion(t, stack, "warning ten", 10, models.KindWarning)

	testCases := []struct {
		name              string
		criterionIDs      []string
		difficulty        models.Difficulty
		expectedValue     int
		expectedPositives int
		expectedWarnings  int
	}{
		{
			name:              "Mixed selection with medium difficulty",
			criterionIDs:      []string{bigWin, smallWin, slip},
			difficulty:        models.DifficultyMedium,
			expectedValue:     12, // (10 - 4) * 2
			expectedPositives: 10,
			expectedWarnings:  4,
		},
		{
			name:              "Net negative clamps to zero",
			criterionIDs:      []string{smallWin, blunder},
			difficulty:        models.DifficultyHard,
			expectedValue:     0,
			expectedPositives: 4,
			expectedWarnings:  10,
		},
		{
			name:              "Positives only on an easy project",
			criterionIDs:      []string{smallWin},
			difficulty:        models.DifficultyEasy,
			expectedValue:     4,
			expectedPositives: 4,
		},
	}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userID := "user-" + string(rune('a'+i))
			score, err := stack.evaluations.SaveEvaluation("project-1", userID, tc.criterionIDs, tc.difficulty)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedValue, score.Value)
			assert.Equal(t, tc.expectedPositives, score.Breakdown.Positives)
			assert.Equal(t, tc.expectedWarnings, score.Breakdown.Warnings)
			assert.Equal(t, tc.difficulty, score.Difficulty)
			assert.True(t, score.HasEvaluations)

			// The stored row matches what was returned
			stored, err := stack.scoring.GetScore("project-1", userID)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, score.Value, stored.Value)
			assert.Equal(t, score.Breakdown, stored.Breakdown)
		})
	}
}

func TestSaveEvaluationReplacesPreviousSelection(t *testing.T) {
	stack := newScoringStack(t)

	win := seedCriterion(t, stack, "win", 5, models.KindPositive)
	slip := seedCriterion(t, stack, "slip", 2, models.KindWarning)

	_, err := stack.evaluations.SaveEvaluation("project-1", "user-1", []string{win, slip}, models.DifficultyMedium)
	require.NoError(t, err)

	// Second submission keeps only the warning
	score, err := stack.evaluations.SaveEvaluation("project-1", "user-1", []string{slip}, models.DifficultyMedium)
	require.NoError(t, err)

	assert.Equal(t, 0, score.Value)
	assert.Equal(t, 0, score.Breakdown.Positives)
	assert.Equal(t, 2, score.Breakdown.Warnings)

	records, err := stack.evaluations.GetEvaluations("project-1", "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, slip, records[0].Criterion.ID)
}

func TestSaveEvaluationEmptySelection(t *testing.T) {
	stack := newScoringStack(t)

	win := seedCriterion(t, stack, "win", 5, models.KindPositive)
	_, err := stack.evaluations.SaveEvaluation("project-1", "user-1", []string{win}, models.DifficultyHardcore)
	require.NoError(t, err)

	// Clearing every checkbox is a valid submission that zeroes the score
	score, err := stack.evaluations.SaveEvaluation("project-1", "user-1", nil, models.DifficultyHardcore)
	require.NoError(t, err)

	assert.Equal(t, 0, score.Value)
	assert.Equal(t, models.ScoreBreakdown{}, score.Breakdown)
	assert.False(t, score.HasEvaluations)

	// The row still exists, distinguishing "cleared" from "never scored"
	stored, err := stack.scoring.GetScore("project-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.HasEvaluations)
}

func TestSaveEvaluationRejectsUnknownCriterion(t *testing.T) {
	stack := newScoringStack(t)

	_, err := stack.evaluations.SaveEvaluation("project-1", "user-1", []string{"no-such-criterion"}, models.DifficultyEasy)
	assert.Error(t, err)

	// Nothing was written
	records, listErr := stack.evaluations.GetEvaluations("project-1", "user-1")
	require.NoError(t, listErr)
	assert.Empty(t, records)
}

func TestSaveEvaluationRejectsInvalidDifficulty(t *testing.T) {
	stack := newScoringStack(t)

	_, err := stack.evaluations.SaveEvaluation("project-1", "user-1", nil, models.Difficulty(4))
	assert.Error(t, err)

	_, err = stack.evaluations.SaveEvaluation("project-1", "user-1", nil, models.Difficulty(0))
	assert.Error(t, err)
}

func TestSaveEvaluationPublishesEvents(t *testing.T) {
	stack := newScoringStack(t)

	evaluationCh, unsubEval := stack.hub.Subscribe(events.TopicEvaluationUpdated)
	defer unsubEval()
	scoreCh, unsubScore := stack.hub.Subscribe(events.TopicScoreUpdated)
	defer unsubScore()

	win := seedCriterion(t, stack, "win", 3, models.KindPositive)
	_, err := stack.evaluations.SaveEvaluation("project-1", "user-1", []string{win}, models.DifficultyEasy)
	require.NoError(t, err)

	select {
	case event := <-evaluationCh:
		assert.Equal(t, "project-1", event.ProjectID)
		assert.Equal(t, "user-1", event.UserID)
	case <-time.After(time.Second):
		t.Fatal("expected an evaluation.updated event")
	}

	select {
	case event := <-scoreCh:
		assert.Equal(t, "project-1", event.ProjectID)
		assert.Equal(t, "user-1", event.UserID)
	case <-time.After(time.Second):
		t.Fatal("expected a score.updated event")
	}
}
