package model

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is part of the schema but has no upload path yet; tasks always
// return an empty list.
type Attachment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TaskID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"not null"`
	URL        string    `gorm:"not null"`
	MimeType   string
	SizeBytes  int64
	UploaderID uuid.UUID `gorm:"type:uuid;not null"`
	UploadedAt time.Time `gorm:"autoCreateTime"`

	Uploader User `gorm:"foreignKey:UploaderID"`
}
