package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

type MaterialRepo interface {
	CreateBatch(dbc dbctx.Context, items []*domain.MaterialLineItem) error
	DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error
	CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error)
}

type materialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	return &materialRepo{db: db, log: baseLog.With("repo", "MaterialRepo")}
}

func (r *materialRepo) CreateBatch(dbc dbctx.Context, items []*domain.MaterialLineItem) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(items) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).Create(&items).Error
}

func (r *materialRepo) DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Delete(&domain.MaterialLineItem{}).Error
}

func (r *materialRepo) CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.MaterialLineItem{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
