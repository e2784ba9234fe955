package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectClosure is the optional 1:1 handover record. The unique project_id
// index enforces the singleton invariant; final media lives in project_media
// rows with the closure flag set.
type ProjectClosure struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"project_id"`

	CertificateFileID   *uuid.UUID  `gorm:"type:uuid" json:"certificate_file_id,omitempty"`
	CertificateFile     *FileObject `gorm:"foreignKey:CertificateFileID;references:ID" json:"certificate_file,omitempty"`
	WarrantyFileID      *uuid.UUID  `gorm:"type:uuid" json:"warranty_file_id,omitempty"`
	WarrantyFile        *FileObject `gorm:"foreignKey:WarrantyFileID;references:ID" json:"warranty_file,omitempty"`
	AfterSalesContactID *uuid.UUID  `gorm:"type:uuid" json:"after_sales_contact_id,omitempty"`
	AfterSalesContact   *Contact    `gorm:"foreignKey:AfterSalesContactID;references:ID" json:"after_sales_contact,omitempty"`

	HandoverDate *datatypes.Date `json:"handover_date,omitempty"`
	FollowUpDate *datatypes.Date `json:"follow_up_date,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ProjectClosure) TableName() string { return "project_closure" }
