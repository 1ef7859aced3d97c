package model

import (
	"time"

	"github.com/google/uuid"
)

// TicketTitlePrefix marks tasks created through the raise-ticket flow.
const TicketTitlePrefix = "TICKET: "

type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ProjectID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title       string       `gorm:"not null"`
	Description string
	Status      TaskStatus   `gorm:"not null;default:'todo'"`
	Priority    TaskPriority `gorm:"not null;default:'medium'"`
	AssigneeID  *uuid.UUID   `gorm:"type:uuid"`
	ReporterID  uuid.UUID    `gorm:"type:uuid;not null"`
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Project     Project      `gorm:"foreignKey:ProjectID"`
	Assignee    *User        `gorm:"foreignKey:AssigneeID"`
	Reporter    User         `gorm:"foreignKey:ReporterID"`
	Comments    []Comment    `gorm:"foreignKey:TaskID"`
	Attachments []Attachment `gorm:"foreignKey:TaskID"`
}
