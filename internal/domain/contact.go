package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact rows are shared: projects reference them by id from the
// salesperson/designer/contractor/after-sales slots and edit them in place.
type Contact struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Phone string    `json:"phone,omitempty"`
	Email string    `json:"email,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Contact) TableName() string { return "contact" }
