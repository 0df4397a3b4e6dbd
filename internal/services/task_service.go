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
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskFieldsRequired = errors.New("title and project_id are required")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	ProjectID *uint64
}

// ListTasks returns the user's tasks
func (s *TaskService) ListTasks(userID uint64, input ListTasksInput) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(userID, repository.TaskFilter{ProjectID: input.ProjectID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task owned by the user
func (s *TaskService) GetTask(id, userID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDAndOwner(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	UserID    uint64
	ProjectID uint64
	Title     string
	Status    string
	DueDate   *time.Time
	Notes     string
}

// CreateTask validates the parent project belongs to the user and persists a
// new task. The owner id is copied from the parent project.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	title := optionalText(input.Title)
	if title == nil || input.ProjectID == 0 {
		return nil, ErrTaskFieldsRequired
	}

	project, err := s.projectRepo.FindByIDAndOwner(input.ProjectID, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	task := &models.Task{
		UserID:    project.UserID,
		ProjectID: project.ID,
		Title:     title,
		Status:    textOrDefault(input.Status, models.TaskStatusTodo),
		DueDate:   input.DueDate,
		Notes:     optionalText(input.Notes),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTaskInput is an explicit patch; updates never reparent a task.
type UpdateTaskInput struct {
	Title        *string
	Status       *string
	Notes        *string
	DueDate      *time.Time
	ClearDueDate bool
}

// UpdateTask applies a partial update to a task owned by the user
func (s *TaskService) UpdateTask(id, userID uint64, input UpdateTaskInput) error {
	task, err := s.taskRepo.FindByIDAndOwner(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		task.Title = optionalText(*input.Title)
	}
	if input.Status != nil {
		task.Status = optionalText(*input.Status)
	}
	if input.Notes != nil {
		task.Notes = optionalText(*input.Notes)
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.taskRepo.Save(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// DeleteTask removes a task owned by the user
func (s *TaskService) DeleteTask(id, userID uint64) error {
	if _, err := s.taskRepo.FindByIDAndOwner(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(id, userID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
