package repos

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

type ClosureRepo interface {
	// GetByProjectID returns (nil, nil) when the project has no closure yet.
	GetByProjectID(dbc dbctx.Context, projectID uuid.UUID) (*domain.ProjectClosure, error)
	Create(dbc dbctx.Context, closure *domain.ProjectClosure) error
	Update(dbc dbctx.Context, closure *domain.ProjectClosure) error
}

type closureRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClosureRepo(db *gorm.DB, baseLog *logger.Logger) ClosureRepo {
	return &closureRepo{db: db, log: baseLog.With("repo", "ClosureRepo")}
}

func (r *closureRepo) GetByProjectID(dbc dbctx.Context, projectID uuid.UUID) (*domain.ProjectClosure, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.ProjectClosure
	err := transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *closureRepo) Create(dbc dbctx.Context, closure *domain.ProjectClosure) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Omit("CertificateFile", "WarrantyFile", "AfterSalesContact").
		Create(closure).Error
}

func (r *closureRepo) Update(dbc dbctx.Context, closure *domain.ProjectClosure) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Omit("CertificateFile", "WarrantyFile", "AfterSalesContact").
		Save(closure).Error
}
