package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

// The three attachment tables get three repos rather than one keyed by a
// discriminant. GetByProjectID exists so callers can collect the owned
// FileObject ids before a replace wipes the rows.

type InvoiceRepo interface {
	CreateBatch(dbc dbctx.Context, rows []*domain.ProjectInvoice) error
	GetByProjectID(dbc dbctx.Context, projectID uuid.UUID) ([]*domain.ProjectInvoice, error)
	DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error
	CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error)
}

type invoiceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInvoiceRepo(db *gorm.DB, baseLog *logger.Logger) InvoiceRepo {
	return &invoiceRepo{db: db, log: baseLog.With("repo", "InvoiceRepo")}
}

func (r *invoiceRepo) CreateBatch(dbc dbctx.Context, rows []*domain.ProjectInvoice) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).Omit("File").Create(&rows).Error
}

func (r *invoiceRepo) GetByProjectID(dbc dbctx.Context, projectID uuid.UUID) ([]*domain.ProjectInvoice, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.ProjectInvoice
	if err := transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *invoiceRepo) DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Delete(&domain.ProjectInvoice{}).Error
}

func (r *invoiceRepo) CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.ProjectInvoice{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type PermitRepo interface {
	CreateBatch(dbc dbctx.Context, rows []*domain.ProjectPermit) error
	GetByProjectID(dbc dbctx.Context, projectID uuid.UUID) ([]*domain.ProjectPermit, error)
	DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error
	CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error)
}

type permitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPermitRepo(db *gorm.DB, baseLog *logger.Logger) PermitRepo {
	return &permitRepo{db: db, log: baseLog.With("repo", "PermitRepo")}
}

func (r *permitRepo) CreateBatch(dbc dbctx.Context, rows []*domain.ProjectPermit) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).Omit("File").Create(&rows).Error
}

func (r *permitRepo) GetByProjectID(dbc dbctx.Context, projectID uuid.UUID) ([]*domain.ProjectPermit, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.ProjectPermit
	if err := transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *permitRepo) DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Delete(&domain.ProjectPermit{}).Error
}

func (r *permitRepo) CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.ProjectPermit{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type SignOffRepo interface {
	CreateBatch(dbc dbctx.Context, rows []*domain.ProjectSignOff) error
	GetByProjectID(dbc dbctx.Context, projectID uuid.UUID) ([]*domain.ProjectSignOff, error)
	DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error
	CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error)
}

type signOffRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSignOffRepo(db *gorm.DB, baseLog *logger.Logger) SignOffRepo {
	return &signOffRepo{db: db, log: baseLog.With("repo", "SignOffRepo")}
}

func (r *signOffRepo) CreateBatch(dbc dbctx.Context, rows []*domain.ProjectSignOff) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).Omit("File").Create(&rows).Error
}

func (r *signOffRepo) GetByProjectID(dbc dbctx.Context, projectID uuid.UUID) ([]*domain.ProjectSignOff, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*domain.ProjectSignOff
	if err := transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *signOffRepo) DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Delete(&domain.ProjectSignOff{}).Error
}

func (r *signOffRepo) CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.ProjectSignOff{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
