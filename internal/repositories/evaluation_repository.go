package repositories

import (
	"database/sql"

	"github.com/studiokit/crewboard/internal/models"
)

type EvaluationRepository struct {
	db *sql.DB
}

func NewEvaluationRepository(db *sql.DB) *EvaluationRepository {
	return &EvaluationRepository{
		db: db,
	}
}

// Create appends one evaluation record unconditionally. No duplicate
// detection: the replace path is what prevents accumulation across
// edits of the same (project, user) pair.
func (r *EvaluationRepository) Create(evaluation *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (
			id, project_id, user_id,
			criterion_id, criterion_label, criterion_points, criterion_kind,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		evaluation.ID,
		evaluation.ProjectID,
		evaluation.UserID,
		evaluation.Criterion.ID,
		evaluation.Criterion.Label,
		evaluation.Criterion.Points,
		evaluation.Criterion.Kind,
		evaluation.CreatedAt,
	)
	return err
}

// ReplaceForProjectUser deletes every record for the exact
// (projectID, userID) pair and inserts the given batch in one
// transaction. Records for other pairs are untouched. Callers must have
// tagged the records with the same projectID and userID; the operation
// does not re-tag them.
func (r *EvaluationRepository) ReplaceForProjectUser(projectID, userID string, evaluations []*models.Evaluation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM evaluations WHERE project_id = ? AND user_id = ?`, projectID, userID); err != nil {
		return err
	}

	insert := `
		INSERT INTO evaluations (
			id, project_id, user_id,
			criterion_id, criterion_label, criterion_points, criterion_kind,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, evaluation := range evaluations {
		_, err := tx.Exec(insert,
			evaluation.ID,
			evaluation.ProjectID,
			evaluation.UserID,
			evaluation.Criterion.ID,
			evaluation.Criterion.Label,
			evaluation.Criterion.Points,
			evaluation.Criterion.Kind,
			evaluation.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListByProjectAndUser retrieves all records for the exact pair. Zero
// matches return an empty slice, not an error. Row order is storage
// order and not guaranteed across replace cycles.
func (r *EvaluationRepository) ListByProjectAndUser(projectID, userID string) ([]*models.Evaluation, error) {
	query := `
		SELECT id, project_id, user_id,
		       criterion_id, criterion_label, criterion_points, criterion_kind,
		       created_at
		FROM evaluations WHERE project_id = ? AND user_id = ?
	`
	return r.queryEvaluations(query, projectID, userID)
}

// ListByProject retrieves all records for a project across all users
func (r *EvaluationRepository) ListByProject(projectID string) ([]*models.Evaluation, error) {
	query := `
		SELECT id, project_id, user_id,
		       criterion_id, criterion_label, criterion_points, criterion_kind,
		       created_at
		FROM evaluations WHERE project_id = ?
	`
	return r.queryEvaluations(query, projectID)
}

// ListAll retrieves the full ledger
func (r *EvaluationRepository) ListAll() ([]*models.Evaluation, error) {
	query := `
		SELECT id, project_id, user_id,
		       criterion_id, criterion_label, criterion_points, criterion_kind,
		       created_at
		FROM evaluations
	`
	return r.queryEvaluations(query)
}

func (r *EvaluationRepository) queryEvaluations(query string, args ...interface{}) ([]*models.Evaluation, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evaluations []*models.Evaluation
	for rows.Next() {
		evaluation := &models.Evaluation{}
		err := rows.Scan(
			&evaluation.ID,
			&evaluation.ProjectID,
			&evaluation.UserID,
			&evaluation.Criterion.ID,
			&evaluation.Criterion.Label,
			&evaluation.Criterion.Points,
			&evaluation.Criterion.Kind,
			&evaluation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, evaluation)
	}

	return evaluations, rows.Err()
}
