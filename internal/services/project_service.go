package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
)

// ErrProjectDelivered is returned when advancing a project that has
// already reached the end of the workflow.
var ErrProjectDelivered = errors.New("project is already delivered")

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	memberRepo  *repositories.ProjectMemberRepository
}

func NewProjectService(projectRepo *repositories.ProjectRepository, memberRepo *repositories.ProjectMemberRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
	}
}

// CreateProject creates a new project in the briefing stage
func (s *ProjectService) CreateProject(project *models.Project) error {
	// Trim whitespace from name
	project.Name = strings.TrimSpace(project.Name)

	// Validate project
	if err := project.Validate(); err != nil {
		return err
	}

	// Validate owner ID
	if project.OwnerID == "" {
		return errors.New("owner ID is required")
	}

	return s.projectRepo.Create(project)
}

// GetProjectByID retrieves a project by ID
func (s *ProjectService) GetProjectByID(id string) (*models.Project, error) {
	if id == "" {
		return nil, errors.New("project ID is required")
	}

	// Validate UUID format
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid project ID format")
	}

	return s.projectRepo.GetByID(id)
}

// GetProjectsByOwnerID retrieves all projects for an owner
func (s *ProjectService) GetProjectsByOwnerID(ownerID string) ([]*models.Project, error) {
	if ownerID == "" {
		return nil, errors.New("owner ID is required")
	}

	return s.projectRepo.GetByOwnerID(ownerID)
}

// GetProjectsByClientID retrieves all projects for a client
func (s *ProjectService) GetProjectsByClientID(clientID string) ([]*models.Project, error) {
	if clientID == "" {
		return nil, errors.New("client ID is required")
	}

	return s.projectRepo.GetByClientID(clientID)
}

// UpdateProject updates a project's name, description and client
func (s *ProjectService) UpdateProject(project *models.Project) error {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return models.ErrProjectNameRequired
	}

	return s.projectRepo.Update(project)
}

// AdvanceStage moves a project one step forward in the fixed workflow
// sequence. Returns the updated project.
func (s *ProjectService) AdvanceStage(id string) (*models.Project, error) {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return nil, err
	}

	next, ok := project.Stage.Next()
	if !ok {
		return nil, ErrProjectDelivered
	}

	if err := s.projectRepo.UpdateStage(id, next); err != nil {
		return nil, err
	}

	project.Stage = next
	return project, nil
}

// DeleteProject soft-deletes a project and removes its team assignments
func (s *ProjectService) DeleteProject(id string) error {
	if id == "" {
		return errors.New("project ID is required")
	}

	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid project ID format")
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return err
	}

	return s.memberRepo.DeleteByProjectID(id)
}
