package repositories

import (
	"database/sql"
	"sync"

	"github.com/studiokit/crewboard/internal/models"
)

type JobRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job
func (r *JobRepository) Create(job *models.Job) error {
	query := `
		INSERT INTO jobs (
			id, project_id, job_type, status, result_path, error_message,
			started_at, completed_at, worker_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		job.ID, job.ProjectID, job.JobType, job.Status, job.ResultPath,
		job.ErrorMessage, job.StartedAt, job.CompletedAt, job.WorkerID,
		job.CreatedAt, job.UpdatedAt,
	)
	return err
}

// GetNextPendingJob retrieves and claims the oldest pending job of the
// given type (FIFO). Returns nil when no job is available.
func (r *JobRepository) GetNextPendingJob(jobType models.JobType, workerID string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		SELECT id, project_id, job_type, status, result_path, error_message,
		       started_at, completed_at, worker_id, created_at, updated_at
		FROM jobs
		WHERE status = ? AND job_type = ?
		ORDER BY created_at ASC
		LIMIT 1
	`

	job := &models.Job{}
	err = tx.QueryRow(query, models.JobStatusPending, jobType).Scan(
		&job.ID, &job.ProjectID, &job.JobType, &job.Status, &job.ResultPath,
		&job.ErrorMessage, &job.StartedAt, &job.CompletedAt, &job.WorkerID,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	job.MarkStarted(workerID)
	update := `UPDATE jobs SET status = ?, started_at = ?, worker_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := tx.Exec(update, job.Status, job.StartedAt, job.WorkerID, job.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return job, nil
}

// Update persists a job's status fields
func (r *JobRepository) Update(job *models.Job) error {
	query := `
		UPDATE jobs
		SET status = ?, result_path = ?, error_message = ?, started_at = ?,
		    completed_at = ?, worker_id = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		job.Status, job.ResultPath, job.ErrorMessage, job.StartedAt,
		job.CompletedAt, job.WorkerID, job.ID,
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

// GetByProjectID retrieves all jobs for a project, newest first
func (r *JobRepository) GetByProjectID(projectID string) ([]*models.Job, error) {
	query := `
		SELECT id, project_id, job_type, status, result_path, error_message,
		       started_at, completed_at, worker_id, created_at, updated_at
		FROM jobs WHERE project_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job := &models.Job{}
		err := rows.Scan(
			&job.ID, &job.ProjectID, &job.JobType, &job.Status, &job.ResultPath,
			&job.ErrorMessage, &job.StartedAt, &job.CompletedAt, &job.WorkerID,
			&job.CreatedAt, &job.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}
