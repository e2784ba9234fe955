package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Milestone struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	Label      string          `gorm:"not null" json:"label"`
	Amount     float64         `gorm:"not null;default:0" json:"amount"`
	StatusCode int16           `gorm:"column:status_code;not null" json:"-"`
	Approved   bool            `gorm:"not null;default:false" json:"approved"`
	DueDate    *datatypes.Date `json:"due_date,omitempty"`
	Position   int             `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Milestone) TableName() string { return "project_milestone" }
