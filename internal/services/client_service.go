package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/freelanceflow/freelance-flow-api/internal/models"
	"github.com/freelanceflow/freelance-flow-api/internal/repository"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientNameRequired = errors.New("name is required")
)

// ClientService handles client business logic. Every operation is scoped to
// the acting user.
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// ListClientsInput represents filters for listing clients
type ListClientsInput struct {
	Query string
	Stage string
}

// ListClients returns the user's clients
func (s *ClientService) ListClients(userID uint64, input ListClientsInput) ([]models.Client, error) {
	clients, err := s.clientRepo.List(userID, repository.ClientFilter{
		Query: strings.TrimSpace(strings.ToLower(input.Query)),
		Stage: strings.TrimSpace(strings.ToLower(input.Stage)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// GetClient returns a single client owned by the user
func (s *ClientService) GetClient(id, userID uint64) (*models.Client, error) {
	client, err := s.clientRepo.FindByIDAndOwner(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// CreateClientInput represents input for creating a client
type CreateClientInput struct {
	UserID         uint64
	Name           string
	Email          string
	Company        string
	Stage          string
	NextActionDate *time.Time
}

// CreateClient validates and persists a new client owned by the user
func (s *ClientService) CreateClient(input CreateClientInput) (*models.Client, error) {
	name := optionalText(input.Name)
	if name == nil {
		return nil, ErrClientNameRequired
	}

	client := &models.Client{
		UserID:         input.UserID,
		Name:           name,
		Email:          optionalText(input.Email),
		Company:        optionalText(input.Company),
		Stage:          textOrDefault(input.Stage, models.ClientStageLead),
		NextActionDate: input.NextActionDate,
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// UpdateClientInput is an explicit patch: a set pointer overwrites the field
// (blank text stored as null), ClearNextActionDate nulls the date, and unset
// fields are left untouched.
type UpdateClientInput struct {
	Name                *string
	Email               *string
	Company             *string
	Stage               *string
	NextActionDate      *time.Time
	ClearNextActionDate bool
}

// UpdateClient applies a partial update to a client owned by the user
func (s *ClientService) UpdateClient(id, userID uint64, input UpdateClientInput) error {
	client, err := s.clientRepo.FindByIDAndOwner(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to find client: %w", err)
	}

	if input.Name != nil {
		client.Name = optionalText(*input.Name)
	}
	if input.Email != nil {
		client.Email = optionalText(*input.Email)
	}
	if input.Company != nil {
		client.Company = optionalText(*input.Company)
	}
	if input.Stage != nil {
		client.Stage = optionalText(*input.Stage)
	}
	if input.ClearNextActionDate {
		client.NextActionDate = nil
	} else if input.NextActionDate != nil {
		client.NextActionDate = input.NextActionDate
	}

	if err := s.clientRepo.Save(client); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	return nil
}

// DeleteClient removes a client owned by the user along with its projects
// and tasks
func (s *ClientService) DeleteClient(id, userID uint64) error {
	if _, err := s.clientRepo.FindByIDAndOwner(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to find client: %w", err)
	}

	if err := s.clientRepo.Delete(id, userID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
