package repository

import (
	"github.com/freelanceflow/freelance-flow-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByIDAndOwner finds a project by (id, user_id)
func (r *GormProjectRepository) FindByIDAndOwner(id, userID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves the user's projects, optionally narrowed to one client
func (r *GormProjectRepository) List(userID uint64, filter ProjectFilter) ([]models.Project, error) {
	query := r.db.Where("user_id = ?", userID)

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}

	var projects []models.Project
	err := query.
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Save persists changes to a project
func (r *GormProjectRepository) Save(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project and its tasks in a transaction
func (r *GormProjectRepository) Delete(id, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Project{}).Error
	})
}
