package models

import "time"

const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

type Task struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	UserID    uint64 `gorm:"not null;index" json:"user_id"`
	ProjectID uint64 `gorm:"not null;index" json:"project_id"`

	Title   *string    `gorm:"type:varchar(150)" json:"title"`
	Status  *string    `gorm:"type:varchar(30)" json:"status"`
	DueDate *time.Time `gorm:"type:date" json:"due_date"`
	Notes   *string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}
