package repositories

import (
	"database/sql"

	"github.com/studiokit/crewboard/internal/models"
)

type ScoreRepository struct {
	db *sql.DB
}

func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{
		db: db,
	}
}

// Upsert inserts the score or replaces the existing row for the same
// (project_id, user_id) key in place. The UNIQUE index on the pair
// guarantees at most one row per key.
func (r *ScoreRepository) Upsert(score *models.Score) error {
	query := `
		INSERT INTO scores (
			id, project_id, user_id, positives, warnings,
			difficulty, value, has_evaluations, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(project_id, user_id) DO UPDATE SET
			positives = excluded.positives,
			warnings = excluded.warnings,
			difficulty = excluded.difficulty,
			value = excluded.value,
			has_evaluations = excluded.has_evaluations,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		score.ID,
		score.ProjectID,
		score.UserID,
		score.Breakdown.Positives,
		score.Breakdown.Warnings,
		score.Difficulty,
		score.Value,
		score.HasEvaluations,
		score.CreatedAt,
		score.UpdatedAt,
	)
	return err
}

// FindByProjectAndUser retrieves the score for the exact pair. A missing
// row is not an error: it returns (nil, nil).
func (r *ScoreRepository) FindByProjectAndUser(projectID, userID string) (*models.Score, error) {
	query := `
		SELECT id, project_id, user_id, positives, warnings,
		       difficulty, value, has_evaluations, created_at, updated_at
		FROM scores WHERE project_id = ? AND user_id = ?
	`

	score := &models.Score{}
	err := r.db.QueryRow(query, projectID, userID).Scan(
		&score.ID,
		&score.ProjectID,
		&score.UserID,
		&score.Breakdown.Positives,
		&score.Breakdown.Warnings,
		&score.Difficulty,
		&score.Value,
		&score.HasEvaluations,
		&score.CreatedAt,
		&score.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return score, nil
}

// ListByProject retrieves all scores for a project, unordered. Sorting
// is a presentation concern.
func (r *ScoreRepository) ListByProject(projectID string) ([]*models.Score, error) {
	query := `
		SELECT id, project_id, user_id, positives, warnings,
		       difficulty, value, has_evaluations, created_at, updated_at
		FROM scores WHERE project_id = ?
	`
	return r.queryScores(query, projectID)
}

// ListAll retrieves every score row
func (r *ScoreRepository) ListAll() ([]*models.Score, error) {
	query := `
		SELECT id, project_id, user_id, positives, warnings,
		       difficulty, value, has_evaluations, created_at, updated_at
		FROM scores
	`
	return r.queryScores(query)
}

func (r *ScoreRepository) queryScores(query string, args ...interface{}) ([]*models.Score, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []*models.Score
	for rows.Next() {
		score := &models.Score{}
		err := rows.Scan(
			&score.ID,
			&score.ProjectID,
			&score.UserID,
			&score.Breakdown.Positives,
			&score.Breakdown.Warnings,
			&score.Difficulty,
			&score.Value,
			&score.HasEvaluations,
			&score.CreatedAt,
			&score.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}

	return scores, rows.Err()
}
