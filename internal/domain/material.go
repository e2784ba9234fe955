package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaterialLineItem status is a nullable code: absence means unknown and is
// never defaulted to a guess.
type MaterialLineItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	Type       string `gorm:"not null" json:"type"`
	Brand      string `json:"brand,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	StatusCode *int16 `gorm:"column:status_code" json:"-"`
	Position   int    `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (MaterialLineItem) TableName() string { return "project_material" }
