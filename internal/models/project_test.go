package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageSequence(t *testing.T) {
	expected := []Stage{
		StageBriefing,
		StageScripting,
		StageProduction,
		StageEditing,
		StageReview,
		StageDelivered,
	}
	assert.Equal(t, expected, Stages())

	// Walking Next from the start visits every stage exactly once
	stage := StageBriefing
	visited := []Stage{stage}
	for {
		next, ok := stage.Next()
		if !ok {
			break
		}
		visited = append(visited, next)
		stage = next
	}
	assert.Equal(t, expected, visited)
}

func TestStageDeliveredIsTerminal(t *testing.T) {
	next, ok := StageDelivered.Next()
	assert.False(t, ok)
	assert.Equal(t, StageDelivered, next)
}

func TestStageValidation(t *testing.T) {
	for _, stage := range Stages() {
		assert.True(t, stage.IsValid())
	}
	assert.False(t, Stage("post-production").IsValid())
	assert.False(t, Stage("").IsValid())
}

func TestProjectValidation(t *testing.T) {
	t.Run("Valid project", func(t *testing.T) {
		project := NewProject("Spring campaign", "client-1", "owner-1")
		assert.NoError(t, project.Validate())
		assert.Equal(t, StageBriefing, project.Stage)
	})

	t.Run("Missing name", func(t *testing.T) {
		project := NewProject("", "client-1", "owner-1")
		assert.Error(t, project.Validate())
	})

	t.Run("Invalid stage", func(t *testing.T) {
		project := NewProject("Spring campaign", "client-1", "owner-1")
		project.Stage = Stage("unknown")
		assert.Error(t, project.Validate())
	})
}
