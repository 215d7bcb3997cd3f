package repositories

import (
	"database/sql"

	"github.com/studiokit/crewboard/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	query := `
		INSERT INTO projects (id, name, client_id, owner_id, description, stage, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		project.ID,
		project.Name,
		project.ClientID,
		project.OwnerID,
		project.Description,
		project.Stage,
		project.CreatedAt,
		project.UpdatedAt,
	)
	return err
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id string) (*models.Project, error) {
	query := `
		SELECT id, name, client_id, owner_id, description, stage, created_at, updated_at, deleted_at
		FROM projects WHERE id = ? AND deleted_at IS NULL
	`

	project := &models.Project{}
	err := r.db.QueryRow(query, id).Scan(
		&project.ID,
		&project.Name,
		&project.ClientID,
		&project.OwnerID,
		&project.Description,
		&project.Stage,
		&project.CreatedAt,
		&project.UpdatedAt,
		&project.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return project, nil
}

// GetByOwnerID retrieves all projects owned by a user
func (r *ProjectRepository) GetByOwnerID(ownerID string) ([]*models.Project, error) {
	query := `
		SELECT id, name, client_id, owner_id, description, stage, created_at, updated_at, deleted_at
		FROM projects WHERE owner_id = ? AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	return r.queryProjects(query, ownerID)
}

// GetByClientID retrieves all projects for a client
func (r *ProjectRepository) GetByClientID(clientID string) ([]*models.Project, error) {
	query := `
		SELECT id, name, client_id, owner_id, description, stage, created_at, updated_at, deleted_at
		FROM projects WHERE client_id = ? AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	return r.queryProjects(query, clientID)
}

// Update updates a project's name, description and client
func (r *ProjectRepository) Update(project *models.Project) error {
	query := `
		UPDATE projects
		SET name = ?, client_id = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		project.Name,
		project.ClientID,
		project.Description,
		project.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// UpdateStage moves a project to the given workflow stage
func (r *ProjectRepository) UpdateStage(id string, stage models.Stage) error {
	query := `UPDATE projects SET stage = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.Exec(query, stage, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete soft-deletes a project
func (r *ProjectRepository) Delete(id string) error {
	query := `UPDATE projects SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *ProjectRepository) queryProjects(query string, args ...interface{}) ([]*models.Project, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.ClientID,
			&project.OwnerID,
			&project.Description,
			&project.Stage,
			&project.CreatedAt,
			&project.UpdatedAt,
			&project.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}
