package repository

import (
	"strings"

	"github.com/freelanceflow/freelance-flow-api/internal/models"
	"gorm.io/gorm"
)

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

// Create creates a new client
func (r *GormClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// FindByIDAndOwner finds a client by (id, user_id)
func (r *GormClientRepository) FindByIDAndOwner(id, userID uint64) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// List retrieves the user's clients with filtering and follow-up ordering
func (r *GormClientRepository) List(userID uint64, filter ClientFilter) ([]models.Client, error) {
	query := r.db.Where("user_id = ?", userID)

	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			like, like, like,
		)
	}
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}

	var clients []models.Client
	err := query.
		Order("CASE WHEN next_action_date IS NULL THEN 1 ELSE 0 END, next_action_date ASC, name ASC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}

	return clients, nil
}

// Save persists changes to a client
func (r *GormClientRepository) Save(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete removes a client and all its projects and tasks in a transaction
func (r *GormClientRepository) Delete(id, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var projectIDs []uint64
		if err := tx.Model(&models.Project{}).
			Where("client_id = ? AND user_id = ?", id, userID).
			Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		if len(projectIDs) > 0 {
			if err := tx.Where("project_id IN ?", projectIDs).Delete(&models.Task{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", projectIDs).Delete(&models.Project{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Client{}).Error
	})
}
