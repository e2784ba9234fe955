package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

type FileObjectRepo interface {
	Create(dbc dbctx.Context, file *domain.FileObject) (*domain.FileObject, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.FileObject, error)
	DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
}

type fileObjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFileObjectRepo(db *gorm.DB, baseLog *logger.Logger) FileObjectRepo {
	return &fileObjectRepo{db: db, log: baseLog.With("repo", "FileObjectRepo")}
}

func (r *fileObjectRepo) Create(dbc dbctx.Context, file *domain.FileObject) (*domain.FileObject, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(file).Error; err != nil {
		return nil, err
	}
	return file, nil
}

func (r *fileObjectRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.FileObject, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.FileObject
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *fileObjectRepo) DeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", ids).
		Delete(&domain.FileObject{}).Error
}
