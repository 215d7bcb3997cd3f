package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
)

func newProjectService(t *testing.T) (*ProjectService, *ProjectMemberService) {
	t.Helper()
	db := newTestDB(t)
	projectRepo := repositories.NewProjectRepository(db)
	memberRepo := repositories.NewProjectMemberRepository(db)
	userRepo := repositories.NewUserRepository(db)
	return NewProjectService(projectRepo, memberRepo), NewProjectMemberService(memberRepo, userRepo)
}

func TestCreateProjectStartsInBriefing(t *testing.T) {
	projects, _ := newProjectService(t)

	project := models.NewProject("  Spring campaign  ", "client-1", "owner-1")
	require.NoError(t, projects.CreateProject(project))
	assert.Equal(t, "Spring campaign", project.Name)

	found, err := projects.GetProjectByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageBriefing, found.Stage)
}

func TestCreateProjectValidation(t *testing.T) {
	projects, _ := newProjectService(t)

	assert.Error(t, projects.CreateProject(models.NewProject("", "client-1", "owner-1")))
	assert.Error(t, projects.CreateProject(models.NewProject("   ", "client-1", "owner-1")))

	noOwner := models.NewProject("Spring campaign", "client-1", "")
	assert.Error(t, projects.CreateProject(noOwner))
}

func TestAdvanceStageWalksTheWorkflow(t *testing.T) {
	projects, _ := newProjectService(t)

	project := models.NewProject("Spring campaign", "client-1", "owner-1")
	require.NoError(t, projects.CreateProject(project))

	expected := []models.Stage{
		models.StageScripting,
		models.StageProduction,
		models.StageEditing,
		models.StageReview,
		models.StageDelivered,
	}
	for _, stage := range expected {
		advanced, err := projects.AdvanceStage(project.ID)
		require.NoError(t, err)
		assert.Equal(t, stage, advanced.Stage)
	}

	// Delivered is terminal
	_, err := projects.AdvanceStage(project.ID)
	assert.ErrorIs(t, err, ErrProjectDelivered)

	found, err := projects.GetProjectByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageDelivered, found.Stage)
}

func TestDeleteProjectRemovesTeam(t *testing.T) {
	projects, members := newProjectService(t)

	project := models.NewProject("Spring campaign", "client-1", "owner-1")
	require.NoError(t, projects.CreateProject(project))
	require.NoError(t, members.AddMember(project.ID, "user-1", "editor"))

	require.NoError(t, projects.DeleteProject(project.ID))

	// Soft-deleted project is no longer returned
	found, err := projects.GetProjectByID(project.ID)
	assert.Error(t, err)
	assert.Nil(t, found)

	team, err := members.GetProjectMembers(project.ID)
	require.NoError(t, err)
	assert.Empty(t, team)
}

func TestAddMemberRejectsDuplicates(t *testing.T) {
	projects, members := newProjectService(t)

	project := models.NewProject("Spring campaign", "client-1", "owner-1")
	require.NoError(t, projects.CreateProject(project))

	require.NoError(t, members.AddMember(project.ID, "user-1", "editor"))
	assert.Error(t, members.AddMember(project.ID, "user-1", "colorist"))

	// Same user on a different project is fine
	other := models.NewProject("Autumn campaign", "client-1", "owner-1")
	require.NoError(t, projects.CreateProject(other))
	assert.NoError(t, members.AddMember(other.ID, "user-1", "editor"))
}

func TestRemoveMember(t *testing.T) {
	projects, members := newProjectService(t)

	project := models.NewProject("Spring campaign", "client-1", "owner-1")
	require.NoError(t, projects.CreateProject(project))
	require.NoError(t, members.AddMember(project.ID, "user-1", "editor"))
	require.NoError(t, members.AddMember(project.ID, "user-2", "producer"))

	require.NoError(t, members.RemoveMember(project.ID, "user-1"))

	remaining, err := members.GetProjectMembers(project.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "user-2", remaining[0].UserID)
}
