package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is the aggregate root for a single interior-design engagement.
// Only the root carries a soft-delete column; owned sub-collections are
// replaced by hard delete + bulk insert, so they stay append-only simple.
type Project struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code string    `gorm:"uniqueIndex;not null" json:"code"`

	Address      string          `gorm:"not null" json:"address"`
	Type         string          `gorm:"not null;index" json:"type"`
	StatusCode   int16           `gorm:"column:status_code;not null;index" json:"-"`
	StartDate    *datatypes.Date `gorm:"index" json:"start_date,omitempty"`
	ETA          *datatypes.Date `gorm:"column:eta;index" json:"eta,omitempty"`
	SitePhotoURL string          `gorm:"column:site_photo_url" json:"site_photo_url,omitempty"`
	Discount     float64         `gorm:"not null;default:0" json:"discount"`
	ExtraCharge  float64         `gorm:"not null;default:0" json:"extra_charge"`

	SalespersonID *uuid.UUID `gorm:"type:uuid" json:"salesperson_id,omitempty"`
	Salesperson   *Contact   `gorm:"foreignKey:SalespersonID;references:ID" json:"salesperson,omitempty"`
	DesignerID    *uuid.UUID `gorm:"type:uuid" json:"designer_id,omitempty"`
	Designer      *Contact   `gorm:"foreignKey:DesignerID;references:ID" json:"designer,omitempty"`
	ContractorID  *uuid.UUID `gorm:"type:uuid" json:"contractor_id,omitempty"`
	Contractor    *Contact   `gorm:"foreignKey:ContractorID;references:ID" json:"contractor,omitempty"`

	QuotationFileID *uuid.UUID  `gorm:"type:uuid" json:"quotation_file_id,omitempty"`
	QuotationFile   *FileObject `gorm:"foreignKey:QuotationFileID;references:ID" json:"quotation_file,omitempty"`

	Milestones []Milestone        `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"milestones"`
	Materials  []MaterialLineItem `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"materials"`
	Designs    []DesignAsset      `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"designs"`
	Media      []MediaAsset       `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"media"`
	Invoices   []ProjectInvoice   `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"invoices"`
	Permits    []ProjectPermit    `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"permits"`
	SignOffs   []ProjectSignOff   `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"sign_offs"`
	Closure    *ProjectClosure    `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE" json:"closure,omitempty"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Project) TableName() string { return "project" }
