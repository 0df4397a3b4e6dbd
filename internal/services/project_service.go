package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/freelanceflow/freelance-flow-api/internal/models"
	"github.com/freelanceflow/freelance-flow-api/internal/repository"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrProjectFieldsRequired = errors.New("name and client_id are required")
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
	}
}

// ListProjectsInput represents filters for listing projects
type ListProjectsInput struct {
	ClientID *uint64
}

// ListProjects returns the user's projects
func (s *ProjectService) ListProjects(userID uint64, input ListProjectsInput) ([]models.Project, error) {
	projects, err := s.projectRepo.List(userID, repository.ProjectFilter{ClientID: input.ClientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a single project owned by the user
func (s *ProjectService) GetProject(id, userID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDAndOwner(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	UserID   uint64
	ClientID uint64
	Name     string
	Status   string
	DueDate  *time.Time
}

// CreateProject validates the parent client belongs to the user and persists
// a new project. The owner id is copied from the parent client.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := optionalText(input.Name)
	if name == nil || input.ClientID == 0 {
		return nil, ErrProjectFieldsRequired
	}

	client, err := s.clientRepo.FindByIDAndOwner(input.ClientID, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	project := &models.Project{
		UserID:   client.UserID,
		ClientID: client.ID,
		Name:     name,
		Status:   textOrDefault(input.Status, models.ProjectStatusActive),
		DueDate:  input.DueDate,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProjectInput is an explicit patch; updates never reparent a project.
type UpdateProjectInput struct {
	Name         *string
	Status       *string
	DueDate      *time.Time
	ClearDueDate bool
}

// UpdateProject applies a partial update to a project owned by the user
func (s *ProjectService) UpdateProject(id, userID uint64, input UpdateProjectInput) error {
	project, err := s.projectRepo.FindByIDAndOwner(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if input.Name != nil {
		project.Name = optionalText(*input.Name)
	}
	if input.Status != nil {
		project.Status = optionalText(*input.Status)
	}
	if input.ClearDueDate {
		project.DueDate = nil
	} else if input.DueDate != nil {
		project.DueDate = input.DueDate
	}

	if err := s.projectRepo.Save(project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// DeleteProject removes a project owned by the user along with its tasks
func (s *ProjectService) DeleteProject(id, userID uint64) error {
	if _, err := s.projectRepo.FindByIDAndOwner(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(id, userID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
