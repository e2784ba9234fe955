package domain

import (
	"time"

	"github.com/google/uuid"
)

type DesignAsset struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	URL      string `gorm:"not null" json:"url"`
	Title    string `json:"title,omitempty"`
	Position int    `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (DesignAsset) TableName() string { return "project_design" }
