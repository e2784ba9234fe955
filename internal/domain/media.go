package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaAsset rows are partitioned by the Closure flag into worksite-progress
// media (false) and closure/final media (true). The two partitions are
// replaced through distinct operations and must never be touched by the same
// call.
type MediaAsset struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	KindCode int16  `gorm:"column:kind_code;not null" json:"-"`
	URL      string `gorm:"not null" json:"url"`
	Caption  string `json:"caption,omitempty"`
	Closure  bool   `gorm:"not null;default:false;index" json:"closure"`
	Position int    `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (MediaAsset) TableName() string { return "project_media" }
