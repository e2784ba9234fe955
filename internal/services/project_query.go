package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/repos"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (s *projectService) Get(ctx context.Context, code string) (*ProjectView, error) {
	dbc := dbctx.Context{Ctx: ctx}
	p, err := s.projectRepo.GetAggregateByCode(dbc, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound("project")
	}
	if err != nil {
		return nil, fmt.Errorf("load project aggregate: %w", err)
	}
	return serializeProject(p)
}

func (s *projectService) List(ctx context.Context, filters ProjectListFilters, page, pageSize int) (*ProjectPage, error) {
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

	params := repos.ProjectListParams{
		Type:         strings.TrimSpace(filters.Type),
		AddressQuery: strings.TrimSpace(filters.Query),
	}
	if filters.Status != "" {
		statusCode, ok := domain.ProjectStatusCode(filters.Status)
		if !ok {
			fe.add("status", "must be one of: "+strings.Join(domain.ProjectStatusLabels, ", "))
		}
		params.StatusCode = &statusCode
	}
	params.StartDateFrom = fe.checkFilterDate("start_date_from", filters.StartDateFrom)
	params.StartDateTo = fe.checkFilterDate("start_date_to", filters.StartDateTo)
	params.ETAFrom = fe.checkFilterDate("eta_from", filters.ETAFrom)
	params.ETATo = fe.checkFilterDate("eta_to", filters.ETATo)

	if vErr := fe.err(); vErr != nil {
		return nil, vErr
	}

	params.Offset = (page - 1) * pageSize
	params.Limit = pageSize

	dbc := dbctx.Context{Ctx: ctx}
	projects, total, err := s.projectRepo.List(dbc, params)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	items := make([]*ProjectView, 0, len(projects))
	for _, p := range projects {
		view, err := serializeProject(p)
		if err != nil {
			return nil, err
		}
		items = append(items, view)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return &ProjectPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (fe fieldErrors) checkFilterDate(field, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		fe.add(field, "must be a YYYY-MM-DD date")
		return nil
	}
	return &t
}
