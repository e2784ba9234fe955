package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

type DesignRepo interface {
	CreateBatch(dbc dbctx.Context, assets []*domain.DesignAsset) error
	DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error
	CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error)
}

type designRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDesignRepo(db *gorm.DB, baseLog *logger.Logger) DesignRepo {
	return &designRepo{db: db, log: baseLog.With("repo", "DesignRepo")}
}

func (r *designRepo) CreateBatch(dbc dbctx.Context, assets []*domain.DesignAsset) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(assets) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).Create(&assets).Error
}

func (r *designRepo) DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Delete(&domain.DesignAsset{}).Error
}

func (r *designRepo) CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.DesignAsset{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
