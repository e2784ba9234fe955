package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

type MilestoneRepo interface {
	CreateBatch(dbc dbctx.Context, milestones []*domain.Milestone) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Milestone, error)
	Update(dbc dbctx.Context, milestone *domain.Milestone) error
	DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error
	CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error)
}

type milestoneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMilestoneRepo(db *gorm.DB, baseLog *logger.Logger) MilestoneRepo {
	return &milestoneRepo{db: db, log: baseLog.With("repo", "MilestoneRepo")}
}

func (r *milestoneRepo) CreateBatch(dbc dbctx.Context, milestones []*domain.Milestone) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(milestones) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).Create(&milestones).Error
}

func (r *milestoneRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Milestone, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.Milestone
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *milestoneRepo) Update(dbc dbctx.Context, milestone *domain.Milestone) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).Save(milestone).Error
}

func (r *milestoneRepo) DeleteByProjectID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("project_id = ?", projectID).
		Delete(&domain.Milestone{}).Error
}

func (r *milestoneRepo) CountByProjectID(dbc dbctx.Context, projectID uuid.UUID) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&domain.Milestone{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
