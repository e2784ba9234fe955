package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invoices, permits and sign-offs are three structurally identical name+URL
// lists kept as three distinct relations: their callers are always
// type-specific and merging them behind a discriminant would let one replace
// call clobber another's rows. Each attachment row owns its FileObject.

type ProjectInvoice struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID   `gorm:"type:uuid;not null;index" json:"project_id"`
	FileID    uuid.UUID   `gorm:"type:uuid;not null" json:"file_id"`
	File      *FileObject `gorm:"foreignKey:FileID;references:ID" json:"file,omitempty"`
	Position  int         `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
}

func (ProjectInvoice) TableName() string { return "project_invoice" }

type ProjectPermit struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID   `gorm:"type:uuid;not null;index" json:"project_id"`
	FileID    uuid.UUID   `gorm:"type:uuid;not null" json:"file_id"`
	File      *FileObject `gorm:"foreignKey:FileID;references:ID" json:"file,omitempty"`
	Position  int         `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
}

func (ProjectPermit) TableName() string { return "project_permit" }

type ProjectSignOff struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID   `gorm:"type:uuid;not null;index" json:"project_id"`
	FileID    uuid.UUID   `gorm:"type:uuid;not null" json:"file_id"`
	File      *FileObject `gorm:"foreignKey:FileID;references:ID" json:"file,omitempty"`
	Position  int         `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
}

func (ProjectSignOff) TableName() string { return "project_signoff" }
