package repositories

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/studiokit/crewboard/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, profile_picture, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		user.ID.String(),
		user.Name,
		user.Email,
		user.ProfilePicture,
		user.Role,
		user.CreatedAt,
	)
	return err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := `SELECT id, name, email, profile_picture, role, created_at FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRow(query, id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT id, name, email, profile_picture, role, created_at FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRow(query, email))
}

// List retrieves all users ordered by name
func (r *UserRepository) List() ([]*models.User, error) {
	query := `SELECT id, name, email, profile_picture, role, created_at FROM users ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		var userID string
		err := rows.Scan(
			&userID,
			&user.Name,
			&user.Email,
			&user.ProfilePicture,
			&user.Role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		user.ID, err = uuid.Parse(userID)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

// Update updates a user's profile fields
func (r *UserRepository) Update(user *models.User) error {
	query := `UPDATE users SET name = ?, profile_picture = ?, role = ? WHERE id = ?`

	result, err := r.db.Exec(query, user.Name, user.ProfilePicture, user.Role, user.ID.String())
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

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var userID string
	err := row.Scan(
		&userID,
		&user.Name,
		&user.Email,
		&user.ProfilePicture,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.ID, err = uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
