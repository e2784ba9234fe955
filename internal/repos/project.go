package repos

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

// ProjectListParams is the predicate over non-deleted projects. Codes, not
// labels, at this layer: the service translates before it gets here.
type ProjectListParams struct {
	StatusCode    *int16
	Type          string
	AddressQuery  string
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	ETAFrom       *time.Time
	ETATo         *time.Time
	Offset        int
	Limit         int
}

type ProjectRepo interface {
	Create(dbc dbctx.Context, project *domain.Project) (*domain.Project, error)
	// GetAggregateByCode loads the full non-deleted aggregate: all contact and
	// file references plus every owned collection in display order.
	GetAggregateByCode(dbc dbctx.Context, code string) (*domain.Project, error)
	GetByCode(dbc dbctx.Context, code string) (*domain.Project, error)
	// CodeExists includes soft-deleted rows: external codes stay globally
	// unique even after deletion.
	CodeExists(dbc dbctx.Context, code string) (bool, error)
	UpdateFields(dbc dbctx.Context, projectID uuid.UUID, fields map[string]interface{}) error
	SoftDeleteByID(dbc dbctx.Context, projectID uuid.UUID) error
	List(dbc dbctx.Context, params ProjectListParams) ([]*domain.Project, int64, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) Create(dbc dbctx.Context, project *domain.Project) (*domain.Project, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	// Associations are created through their own repos inside the same
	// transaction; the root row is inserted bare.
	if err := transaction.WithContext(dbc.Ctx).
		Omit(clauseAssociations...).
		Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

var clauseAssociations = []string{
	"Salesperson", "Designer", "Contractor", "QuotationFile",
	"Milestones", "Materials", "Designs", "Media",
	"Invoices", "Permits", "SignOffs", "Closure",
}

func withAggregatePreloads(tx *gorm.DB) *gorm.DB {
	ordered := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, created_at ASC") }
	return tx.
		Preload("Salesperson").
		Preload("Designer").
		Preload("Contractor").
		Preload("QuotationFile").
		Preload("Milestones", ordered).
		Preload("Materials", ordered).
		Preload("Designs", ordered).
		Preload("Media", ordered).
		Preload("Invoices", ordered).
		Preload("Invoices.File").
		Preload("Permits", ordered).
		Preload("Permits.File").
		Preload("SignOffs", ordered).
		Preload("SignOffs.File").
		Preload("Closure").
		Preload("Closure.CertificateFile").
		Preload("Closure.WarrantyFile").
		Preload("Closure.AfterSalesContact")
}

func (r *projectRepo) GetAggregateByCode(dbc dbctx.Context, code string) (*domain.Project, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.Project
	if err := withAggregatePreloads(transaction.WithContext(dbc.Ctx)).
		Where("code = ?", code).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *projectRepo) GetByCode(dbc dbctx.Context, code string) (*domain.Project, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.Project
	if err := transaction.WithContext(dbc.Ctx).
		Where("code = ?", code).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *projectRepo) CodeExists(dbc dbctx.Context, code string) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Unscoped().
		Model(&domain.Project{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *projectRepo) UpdateFields(dbc dbctx.Context, projectID uuid.UUID, fields map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&domain.Project{}).
		Where("id = ?", projectID).
		Updates(fields).Error
}

func (r *projectRepo) SoftDeleteByID(dbc dbctx.Context, projectID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id = ?", projectID).
		Delete(&domain.Project{}).Error
}

func (r *projectRepo) List(dbc dbctx.Context, params ProjectListParams) ([]*domain.Project, int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	filtered := func(tx *gorm.DB) *gorm.DB {
		query := tx.Model(&domain.Project{})
		if params.StatusCode != nil {
			query = query.Where("status_code = ?", *params.StatusCode)
		}
		if params.Type != "" {
			query = query.Where("type = ?", params.Type)
		}
		if q := strings.TrimSpace(params.AddressQuery); q != "" {
			query = query.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
		if params.StartDateFrom != nil {
			query = query.Where("start_date >= ?", *params.StartDateFrom)
		}
		if params.StartDateTo != nil {
			query = query.Where("start_date <= ?", *params.StartDateTo)
		}
		if params.ETAFrom != nil {
			query = query.Where("eta >= ?", *params.ETAFrom)
		}
		if params.ETATo != nil {
			query = query.Where("eta <= ?", *params.ETATo)
		}
		return query
	}

	var total int64
	if err := filtered(transaction.WithContext(dbc.Ctx)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*domain.Project
	if err := withAggregatePreloads(filtered(transaction.WithContext(dbc.Ctx))).
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
