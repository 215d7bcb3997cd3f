package repositories

import (
	"database/sql"

	"github.com/studiokit/crewboard/internal/models"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{
		db: db,
	}
}

// Create creates a new client
func (r *ClientRepository) Create(client *models.Client) error {
	query := `
		INSERT INTO clients (id, name, company, email, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		client.ID,
		client.Name,
		client.Company,
		client.Email,
		client.Phone,
		client.CreatedAt,
		client.UpdatedAt,
	)
	return err
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id string) (*models.Client, error) {
	query := `
		SELECT id, name, company, email, phone, created_at, updated_at, archived_at
		FROM clients WHERE id = ?
	`

	client := &models.Client{}
	err := r.db.QueryRow(query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Company,
		&client.Email,
		&client.Phone,
		&client.CreatedAt,
		&client.UpdatedAt,
		&client.ArchivedAt,
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// List retrieves all non-archived clients
func (r *ClientRepository) List() ([]*models.Client, error) {
	query := `
		SELECT id, name, company, email, phone, created_at, updated_at, archived_at
		FROM clients WHERE archived_at IS NULL
		ORDER BY name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client := &models.Client{}
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Company,
			&client.Email,
			&client.Phone,
			&client.CreatedAt,
			&client.UpdatedAt,
			&client.ArchivedAt,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

// Update updates a client's contact fields
func (r *ClientRepository) Update(client *models.Client) error {
	query := `
		UPDATE clients
		SET name = ?, company = ?, email = ?, phone = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		client.Name,
		client.Company,
		client.Email,
		client.Phone,
		client.ID,
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

// Archive soft-deletes a client
func (r *ClientRepository) Archive(id string) error {
	query := `UPDATE clients SET archived_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

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
