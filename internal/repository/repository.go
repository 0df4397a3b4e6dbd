package repository

import (
	"github.com/freelanceflow/freelance-flow-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(email string) (*models.User, error)
}

// ClientFilter holds the list filters for clients.
type ClientFilter struct {
	// Query is a case-insensitive substring match over name, email and
	// company.
	Query string

	// Stage is an exact match on the stage column.
	Stage string
}

// ClientRepository defines the interface for client data access. Every
// operation is scoped to the owning user; a row owned by someone else is
// indistinguishable from a missing one.
type ClientRepository interface {
	Create(client *models.Client) error

	// FindByIDAndOwner finds a client by (id, user_id)
	FindByIDAndOwner(id, userID uint64) (*models.Client, error)

	// List returns the caller's clients, follow-ups first: rows with a
	// next_action_date ascending, null-dated rows last, ties by name.
	List(userID uint64, filter ClientFilter) ([]models.Client, error)

	Save(client *models.Client) error

	// Delete removes the client and cascades to its projects and tasks.
	Delete(id, userID uint64) error
}

// ProjectFilter holds the list filters for projects.
type ProjectFilter struct {
	ClientID *uint64
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error

	FindByIDAndOwner(id, userID uint64) (*models.Project, error)

	// List returns the caller's projects ordered by due date ascending
	// (nulls last), ties by name.
	List(userID uint64, filter ProjectFilter) ([]models.Project, error)

	Save(project *models.Project) error

	// Delete removes the project and cascades to its tasks.
	Delete(id, userID uint64) error
}

// TaskFilter holds the list filters for tasks.
type TaskFilter struct {
	ProjectID *uint64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error

	FindByIDAndOwner(id, userID uint64) (*models.Task, error)

	// List returns the caller's tasks bucketed todo, doing, then the rest;
	// within a bucket by due date ascending (nulls last), then id
	// descending.
	List(userID uint64, filter TaskFilter) ([]models.Task, error)

	Save(task *models.Task) error

	Delete(id, userID uint64) error
}
