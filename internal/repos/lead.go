package repos

import (
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

type LeadRepo interface {
	Create(dbc dbctx.Context, lead *domain.Lead) (*domain.Lead, error)
	List(dbc dbctx.Context, source string, offset, limit int) ([]*domain.Lead, int64, error)
}

type leadRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLeadRepo(db *gorm.DB, baseLog *logger.Logger) LeadRepo {
	return &leadRepo{db: db, log: baseLog.With("repo", "LeadRepo")}
}

func (r *leadRepo) Create(dbc dbctx.Context, lead *domain.Lead) (*domain.Lead, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(lead).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *leadRepo) List(dbc dbctx.Context, source string, offset, limit int) ([]*domain.Lead, int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(dbc.Ctx).Model(&domain.Lead{})
	if source != "" {
		query = query.Where("source = ?", source)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*domain.Lead
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
