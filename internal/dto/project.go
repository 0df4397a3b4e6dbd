package dto

import "github.com/freelanceflow/freelance-flow-api/internal/models"

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID       uint64  `json:"id"`
	ClientID uint64  `json:"client_id"`
	Name     *string `json:"name"`
	Status   *string `json:"status"`
	DueDate  *string `json:"due_date"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:       project.ID,
		ClientID: project.ClientID,
		Name:     project.Name,
		Status:   project.Status,
		DueDate:  formatDate(project.DueDate),
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}
	return items
}
