package repositories

import (
	"database/sql"
	"sync"

	"github.com/studiokit/crewboard/internal/models"
)

type ProjectMemberRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

func NewProjectMemberRepository(db *sql.DB) *ProjectMemberRepository {
	return &ProjectMemberRepository{db: db}
}

// Create creates a new project member
func (r *ProjectMemberRepository) Create(member *models.ProjectMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO project_members (
			id, project_id, user_id, role, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		member.ID, member.ProjectID, member.UserID, member.Role,
		member.CreatedAt, member.UpdatedAt,
	)

	return err
}

// GetByProjectID retrieves all members of a project
func (r *ProjectMemberRepository) GetByProjectID(projectID string) ([]*models.ProjectMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `
		SELECT id, project_id, user_id, role, created_at, updated_at
		FROM project_members WHERE project_id = ?
		ORDER BY created_at ASC
	`

	return r.queryMembers(query, projectID)
}

// GetByUserID retrieves all project assignments for a user
func (r *ProjectMemberRepository) GetByUserID(userID string) ([]*models.ProjectMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `
		SELECT id, project_id, user_id, role, created_at, updated_at
		FROM project_members WHERE user_id = ?
		ORDER BY created_at ASC
	`

	return r.queryMembers(query, userID)
}

// GetByProjectAndUserID retrieves a specific assignment
func (r *ProjectMemberRepository) GetByProjectAndUserID(projectID, userID string) (*models.ProjectMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `
		SELECT id, project_id, user_id, role, created_at, updated_at
		FROM project_members WHERE project_id = ? AND user_id = ?
	`

	member := &models.ProjectMember{}
	err := r.db.QueryRow(query, projectID, userID).Scan(
		&member.ID, &member.ProjectID, &member.UserID, &member.Role,
		&member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return member, nil
}

// DeleteByProjectAndUserID removes a user from a project team
func (r *ProjectMemberRepository) DeleteByProjectAndUserID(projectID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `DELETE FROM project_members WHERE project_id = ? AND user_id = ?`
	_, err := r.db.Exec(query, projectID, userID)
	return err
}

// DeleteByProjectID removes all members of a project
func (r *ProjectMemberRepository) DeleteByProjectID(projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `DELETE FROM project_members WHERE project_id = ?`
	_, err := r.db.Exec(query, projectID)
	return err
}

// ExistsByProjectAndUserID checks if an assignment exists
func (r *ProjectMemberRepository) ExistsByProjectAndUserID(projectID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `SELECT COUNT(*) FROM project_members WHERE project_id = ? AND user_id = ?`
	var count int
	err := r.db.QueryRow(query, projectID, userID).Scan(&count)
	return count > 0, err
}

func (r *ProjectMemberRepository) queryMembers(query string, args ...interface{}) ([]*models.ProjectMember, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.ProjectMember
	for rows.Next() {
		member := &models.ProjectMember{}
		err := rows.Scan(
			&member.ID, &member.ProjectID, &member.UserID, &member.Role,
			&member.CreatedAt, &member.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
