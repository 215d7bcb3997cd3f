package models

import (
	"time"

	"github.com/google/uuid"
)

// Client represents an agency client that projects are produced for
type Client struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Company    string     `json:"company"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// NewClient creates a new Client with a generated UUID
func NewClient(name, company, email string) *Client {
	now := time.Now()
	return &Client{
		ID:        uuid.New().String(),
		Name:      name,
		Company:   company,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the Client
func (c *Client) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "Client name is required"}
	}
	return nil
}

// IsArchived reports whether the client has been archived
func (c *Client) IsArchived() bool {
	return c.ArchivedAt != nil
}
