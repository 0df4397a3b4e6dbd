package models

import "time"

// Client stage labels. Stored as free text; defaults are filled on create
// but unknown values are never rejected.
const (
	ClientStageLead     = "lead"
	ClientStageProspect = "prospect"
	ClientStageActive   = "active"
	ClientStageArchived = "archived"
)

type Client struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"not null;index" json:"user_id"`

	Name           *string    `gorm:"type:varchar(150)" json:"name"`
	Email          *string    `gorm:"type:varchar(150)" json:"email"`
	Company        *string    `gorm:"type:varchar(150)" json:"company"`
	Stage          *string    `gorm:"type:varchar(30)" json:"stage"`
	NextActionDate *time.Time `gorm:"type:date" json:"next_action_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Projects []Project `gorm:"foreignKey:ClientID" json:"-"`
}
