package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

type ContactRepo interface {
	Create(dbc dbctx.Context, contact *domain.Contact) (*domain.Contact, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Contact, error)
	Update(dbc dbctx.Context, contact *domain.Contact) error
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	return &contactRepo{db: db, log: baseLog.With("repo", "ContactRepo")}
}

func (r *contactRepo) Create(dbc dbctx.Context, contact *domain.Contact) (*domain.Contact, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *contactRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.Contact, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var result domain.Contact
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *contactRepo) Update(dbc dbctx.Context, contact *domain.Contact) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx).Save(contact).Error
}
