package repository

import (
	"github.com/freelanceflow/freelance-flow-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByIDAndOwner finds a task by (id, user_id)
func (r *GormTaskRepository) FindByIDAndOwner(id, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves the user's tasks in working order: todo first, then doing,
// then everything else, each bucket by due date (nulls last), newest id
// breaking ties.
func (r *GormTaskRepository) List(userID uint64, filter TaskFilter) ([]models.Task, error) {
	query := r.db.Where("user_id = ?", userID)

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	var tasks []models.Task
	err := query.
		Order("CASE WHEN status = 'todo' THEN 0 WHEN status = 'doing' THEN 1 ELSE 2 END, " +
			"CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, id DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// Save persists changes to a task
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task
func (r *GormTaskRepository) Delete(id, userID uint64) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{}).Error
}
