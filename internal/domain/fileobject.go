package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileObject is a name+URL pair produced by the upload transport. Quotation,
// certificate and warranty slots reference these rows; attachment rows
// (invoice/permit/sign-off) own theirs and delete them on replace.
type FileObject struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null" json:"name"`
	URL  string    `gorm:"not null" json:"url"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (FileObject) TableName() string { return "file_object" }
