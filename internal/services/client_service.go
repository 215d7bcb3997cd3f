package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/studiokit/crewboard/internal/models"
	"github.com/studiokit/crewboard/internal/repositories"
)

type ClientService struct {
	clientRepo *repositories.ClientRepository
}

func NewClientService(clientRepo *repositories.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// CreateClient creates a new agency client
func (s *ClientService) CreateClient(client *models.Client) error {
	client.Name = strings.TrimSpace(client.Name)
	if err := client.Validate(); err != nil {
		return err
	}

	return s.clientRepo.Create(client)
}

// GetClientByID retrieves a client by ID
func (s *ClientService) GetClientByID(id string) (*models.Client, error) {
	if id == "" {
		return nil, errors.New("client ID is required")
	}

	// Validate UUID format
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid client ID format")
	}

	return s.clientRepo.GetByID(id)
}

// GetAllClients retrieves all non-archived clients
func (s *ClientService) GetAllClients() ([]*models.Client, error) {
	return s.clientRepo.List()
}

// UpdateClient updates a client's contact details
func (s *ClientService) UpdateClient(client *models.Client) error {
	client.Name = strings.TrimSpace(client.Name)
	if err := client.Validate(); err != nil {
		return err
	}

	return s.clientRepo.Update(client)
}

// ArchiveClient soft-deletes a client. Existing projects keep their
// client reference; lookups simply stop resolving the client.
func (s *ClientService) ArchiveClient(id string) error {
	if id == "" {
		return errors.New("client ID is required")
	}

	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid client ID format")
	}

	return s.clientRepo.Archive(id)
}
