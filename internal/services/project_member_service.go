package services

import (
	"errors"

	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
)

type ProjectMemberService struct {
	memberRepo *repositories.ProjectMemberRepository
	userRepo   *repositories.UserRepository
}

func NewProjectMemberService(memberRepo *repositories.ProjectMemberRepository, userRepo *repositories.UserRepository) *ProjectMemberService {
	return &ProjectMemberService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

// AddMember assigns a user to a project team
func (s *ProjectMemberService) AddMember(projectID, userID, role string) error {
	member := models.NewProjectMember(projectID, userID, role)
	if err := member.Validate(); err != nil {
		return err
	}

	exists, err := s.memberRepo.ExistsByProjectAndUserID(projectID, userID)
	if err != nil {
		return err
	}
	if exists {
		return errors.New("user is already on the project team")
	}

	return s.memberRepo.Create(member)
}

// RemoveMember removes a user from a project team. Evaluation records
// and scores for the pair are kept; rankings simply stop listing the
// user once the score row is replaced.
func (s *ProjectMemberService) RemoveMember(projectID, userID string) error {
	if projectID == "" || userID == "" {
		return errors.New("project ID and user ID are required")
	}

	return s.memberRepo.DeleteByProjectAndUserID(projectID, userID)
}

// GetProjectMembers retrieves all assignments for a project
func (s *ProjectMemberService) GetProjectMembers(projectID string) ([]*models.ProjectMember, error) {
	if projectID == "" {
		return nil, errors.New("project ID is required")
	}

	return s.memberRepo.GetByProjectID(projectID)
}

// GetProjectTeam retrieves the users currently assigned to a project.
// This backs the "who can be evaluated" selector; the scoring core does
// not re-check membership of an evaluated user.
func (s *ProjectMemberService) GetProjectTeam(projectID string) ([]*models.User, error) {
	members, err := s.GetProjectMembers(projectID)
	if err != nil {
		return nil, err
	}

	var team []*models.User
	for _, member := range members {
		user, err := s.userRepo.GetByID(member.UserID)
		if err != nil {
			// Dangling user references are tolerated
			continue
		}
		team = append(team, user)
	}

	return team, nil
}

// GetUserProjects retrieves all project assignments for a user
func (s *ProjectMemberService) GetUserProjects(userID string) ([]*models.ProjectMember, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	return s.memberRepo.GetByUserID(userID)
}
