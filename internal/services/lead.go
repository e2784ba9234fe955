package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
	"github.com/atelierhaus/atelier-backend/internal/repos"
)

type LeadInput struct {
	Name    string                 `json:"name"`
	Phone   string                 `json:"phone"`
	Email   string                 `json:"email"`
	Message string                 `json:"message"`
	Source  string                 `json:"source"`
	Meta    map[string]interface{} `json:"meta"`
}

type LeadPage struct {
	Items      []*domain.Lead `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}

type LeadService interface {
	Capture(ctx context.Context, input *LeadInput) (*domain.Lead, error)
	List(ctx context.Context, source string, page, pageSize int) (*LeadPage, error)
}

type leadService struct {
	db       *gorm.DB
	log      *logger.Logger
	leadRepo repos.LeadRepo
}

func NewLeadService(db *gorm.DB, log *logger.Logger, leadRepo repos.LeadRepo) LeadService {
	return &leadService{db: db, log: log.With("service", "LeadService"), leadRepo: leadRepo}
}

func (s *leadService) Capture(ctx context.Context, input *LeadInput) (*domain.Lead, error) {
	fe := fieldErrors{}
	if input == nil {
		fe.add("body", "is required")
		return nil, fe.err()
	}
	if strings.TrimSpace(input.Name) == "" {
		fe.add("name", "is required")
	}
	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		fe.add("phone", "is not a valid phone number")
	}
	if input.Email != "" && !strings.Contains(input.Email, "@") {
		fe.add("email", "is not a valid email address")
	}
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	lead := &domain.Lead{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Message: input.Message,
		Source:  strings.TrimSpace(input.Source),
	}
	if len(input.Meta) > 0 {
		raw, err := json.Marshal(input.Meta)
		if err != nil {
			return nil, fmt.Errorf("encode lead meta: %w", err)
		}
		lead.Meta = datatypes.JSON(raw)
	}

	created, err := s.leadRepo.Create(dbctx.Context{Ctx: ctx}, lead)
	if err != nil {
		s.log.Warn("Lead capture failed", "error", err)
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return created, nil
}

func (s *leadService) List(ctx context.Context, source string, page, pageSize int) (*LeadPage, error) {
	fe := fieldErrors{}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		fe.add("page", "must be 1 or greater")
	}
	if pageSize < 1 || pageSize > maxPageSize {
		fe.add("page_size", fmt.Sprintf("must be between 1 and %d", maxPageSize))
	}
	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	leads, total, err := s.leadRepo.List(dbctx.Context{Ctx: ctx}, source, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &LeadPage{
		Items:      leads,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
