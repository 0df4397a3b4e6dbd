package models

import "time"

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
)

// Project rows carry the owner's user id denormalized from the parent
// client. The value is copied at creation time and never re-derived.
type Project struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	UserID   uint64 `gorm:"not null;index" json:"user_id"`
	ClientID uint64 `gorm:"not null;index" json:"client_id"`

	Name    *string    `gorm:"type:varchar(150)" json:"name"`
	Status  *string    `gorm:"type:varchar(30)" json:"status"`
	DueDate *time.Time `gorm:"type:date" json:"due_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Client Client `gorm:"foreignKey:ClientID" json:"-"`
	Tasks  []Task `gorm:"foreignKey:ProjectID" json:"-"`
}
