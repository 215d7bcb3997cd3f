package repositories

import (
	"database/sql"

	"github.com/studiokit/crewboard/internal/models"
)

type CriterionRepository struct {
	db *sql.DB
}

func NewCriterionRepository(db *sql.DB) *CriterionRepository {
	return &CriterionRepository{
		db: db,
	}
}

// Create inserts a single criterion
func (r *CriterionRepository) Create(criterion *models.Criterion) error {
	query := `
		INSERT INTO criteria (id, label, points, kind, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		criterion.ID,
		criterion.Label,
		criterion.Points,
		criterion.Kind,
		criterion.CreatedAt,
	)
	return err
}

// GetByID retrieves a criterion by ID
func (r *CriterionRepository) GetByID(id string) (*models.Criterion, error) {
	query := `SELECT id, label, points, kind, created_at FROM criteria WHERE id = ?`

	criterion := &models.Criterion{}
	err := r.db.QueryRow(query, id).Scan(
		&criterion.ID,
		&criterion.Label,
		&criterion.Points,
		&criterion.Kind,
		&criterion.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return criterion, nil
}

// ListAll retrieves the full catalog in seed order
func (r *CriterionRepository) ListAll() ([]*models.Criterion, error) {
	query := `SELECT id, label, points, kind, created_at FROM criteria ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var criteria []*models.Criterion
	for rows.Next() {
		criterion := &models.Criterion{}
		err := rows.Scan(
			&criterion.ID,
			&criterion.Label,
			&criterion.Points,
			&criterion.Kind,
			&criterion.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, criterion)
	}

	return criteria, rows.Err()
}

// Count returns the number of catalog entries
func (r *CriterionRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM criteria`).Scan(&count)
	return count, err
}

// DeleteAll removes the entire catalog. Only used by force reseeding.
func (r *CriterionRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM criteria`)
	return err
}
