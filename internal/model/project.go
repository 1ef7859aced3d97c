package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string        `gorm:"not null"`
	Description string
	Status      ProjectStatus `gorm:"not null;default:'planning'"`
	StartDate   time.Time     `gorm:"not null"`
	EndDate     *time.Time
	Progress    int    `gorm:"not null;default:0"`
	LeadID      uuid.UUID `gorm:"type:uuid;not null"`
	Client      string
	BudgetTotal float64 `gorm:"not null;default:0"`
	BudgetSpent float64 `gorm:"not null;default:0"`
	Currency    string  `gorm:"not null;default:'USD'"`
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lead User   `gorm:"foreignKey:LeadID"`
	Team []User `gorm:"many2many:project_members"`
}
