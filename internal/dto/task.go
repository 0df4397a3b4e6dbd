package dto

import "github.com/freelanceflow/freelance-flow-api/internal/models"

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64  `json:"id"`
	ProjectID uint64  `json:"project_id"`
	Title     *string `json:"title"`
	Status    *string `json:"status"`
	DueDate   *string `json:"due_date"`
	Notes     *string `json:"notes"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		ProjectID: task.ProjectID,
		Title:     task.Title,
		Status:    task.Status,
		DueDate:   formatDate(task.DueDate),
		Notes:     task.Notes,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
