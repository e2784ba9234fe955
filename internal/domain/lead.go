package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lead is a public capture-form submission. Meta keeps whatever the form
// attaches (utm tags, referrer, page) without schema churn.
type Lead struct {
	ID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string         `gorm:"not null" json:"name"`
	Phone   string         `json:"phone,omitempty"`
	Email   string         `json:"email,omitempty"`
	Message string         `json:"message,omitempty"`
	Source  string         `gorm:"index" json:"source,omitempty"`
	Meta    datatypes.JSON `gorm:"type:jsonb" json:"meta,omitempty"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Lead) TableName() string { return "lead" }
