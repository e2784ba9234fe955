package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

// MediaRepo keeps the worksite and closure partitions behind distinct
// methods on purpose: no caller ever passes the partition flag, so a replace
// of one side cannot reach the other.
type MediaRepo interface {
	CreateBatch(dbc dbctx.Context, assets []*domain.MediaAsset) error
	DeleteWorksiteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error
	DeleteClosureByProjectID(dbc dbctx.Context, projectID uuid.UUID) error
	CountWorksiteByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error)
}

type mediaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMediaRepo(db *gorm.DB, baseLog *logger.Logger) MediaRepo {
	return &mediaRepo{db: db, log: baseLog.With("repo", "MediaRepo")}
}

func (r *mediaRepo) CreateBatch(dbc dbctx.Context, assets []*domain.MediaAsset) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(assets) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).Create(&assets).Error
}

func (r *mediaRepo) DeleteWorksiteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("project_id = ? AND closure = ?", projectID, false).
		Delete(&domain.MediaAsset{}).Error
}

func (r *mediaRepo) DeleteClosureByProjectID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("project_id = ? AND closure = ?", projectID, true).
		Delete(&domain.MediaAsset{}).Error
}

func (r *mediaRepo) CountWorksiteByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.MediaAsset{}).
		Where("project_id = ? AND closure = ?", projectID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
