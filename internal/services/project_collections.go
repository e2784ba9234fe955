package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
)

// Collection replacement is wholesale: a nil input leaves the stored rows
// alone, a non-nil input (empty included) deletes every owned row of that
// kind and bulk-inserts the new set in the given order. There is no
// per-item diffing; partial edits go through the milestone sub-resource.

func buildMilestones(projectID uuid.UUID, inputs []MilestoneInput, startPos int) ([]*domain.Milestone, error) {
	rows := make([]*domain.Milestone, 0, len(inputs))
	for i, in := range inputs {
		statusCode := domain.PaymentPending
		if in.Status != nil {
			code, ok := domain.PaymentStatusCode(*in.Status)
			if !ok {
				return nil, fmt.Errorf("unknown payment status %q", *in.Status)
			}
			statusCode = code
		}
		row := &domain.Milestone{
			ID:         uuid.New(),
			ProjectID:  projectID,
			Label:      in.Label,
			Amount:     in.Amount,
			StatusCode: statusCode,
			Position:   startPos + i,
		}
		if in.Approved != nil {
			row.Approved = *in.Approved
		}
		if in.DueDate != nil {
			d, err := parseDate(*in.DueDate)
			if err != nil {
				return nil, fmt.Errorf("milestone due date: %w", err)
			}
			row.DueDate = d
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func buildMaterials(projectID uuid.UUID, inputs []MaterialInput, startPos int) ([]*domain.MaterialLineItem, error) {
	rows := make([]*domain.MaterialLineItem, 0, len(inputs))
	for i, in := range inputs {
		row := &domain.MaterialLineItem{
			ID:        uuid.New(),
			ProjectID: projectID,
			Type:      in.Type,
			Position:  startPos + i,
		}
		if in.Brand != nil {
			row.Brand = *in.Brand
		}
		if in.Quantity != nil {
			row.Quantity = *in.Quantity
		}
		if in.Status != nil {
			code, ok := domain.MaterialStatusCode(*in.Status)
			if !ok {
				return nil, fmt.Errorf("unknown material status %q", *in.Status)
			}
			row.StatusCode = &code
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func buildDesigns(projectID uuid.UUID, inputs []DesignInput, startPos int) []*domain.DesignAsset {
	rows := make([]*domain.DesignAsset, 0, len(inputs))
	for i, in := range inputs {
		row := &domain.DesignAsset{
			ID:        uuid.New(),
			ProjectID: projectID,
			URL:       in.URL,
			Position:  startPos + i,
		}
		if in.Title != nil {
			row.Title = *in.Title
		}
		rows = append(rows, row)
	}
	return rows
}

func buildWorksiteMedia(projectID uuid.UUID, inputs []MediaInput, startPos int) ([]*domain.MediaAsset, error) {
	return buildMediaRows(projectID, inputs, startPos, false)
}

func buildClosureMedia(projectID uuid.UUID, inputs []MediaInput) ([]*domain.MediaAsset, error) {
	return buildMediaRows(projectID, inputs, 0, true)
}

func buildMediaRows(projectID uuid.UUID, inputs []MediaInput, startPos int, closure bool) ([]*domain.MediaAsset, error) {
	rows := make([]*domain.MediaAsset, 0, len(inputs))
	for i, in := range inputs {
		kind, ok := domain.MediaKindCode(in.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown media kind %q", in.Kind)
		}
		row := &domain.MediaAsset{
			ID:        uuid.New(),
			ProjectID: projectID,
			KindCode:  kind,
			URL:       in.URL,
			Closure:   closure,
			Position:  startPos + i,
		}
		if in.Caption != nil {
			row.Caption = *in.Caption
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *projectService) replaceMilestones(dbc dbctx.Context, projectID uuid.UUID, in *[]MilestoneInput) error {
	if in == nil {
		return nil
	}
	if err := s.milestoneRepo.DeleteByProjectID(dbc, projectID); err != nil {
		return fmt.Errorf("delete milestones: %w", err)
	}
	rows, err := buildMilestones(projectID, *in, 0)
	if err != nil {
		return err
	}
	return s.milestoneRepo.CreateBatch(dbc, rows)
}

func (s *projectService) replaceMaterials(dbc dbctx.Context, projectID uuid.UUID, in *[]MaterialInput) error {
	if in == nil {
		return nil
	}
	if err := s.materialRepo.DeleteByProjectID(dbc, projectID); err != nil {
		return fmt.Errorf("delete materials: %w", err)
	}
	rows, err := buildMaterials(projectID, *in, 0)
	if err != nil {
		return err
	}
	return s.materialRepo.CreateBatch(dbc, rows)
}

func (s *projectService) replaceDesigns(dbc dbctx.Context, projectID uuid.UUID, in *[]DesignInput) error {
	if in == nil {
		return nil
	}
	if err := s.designRepo.DeleteByProjectID(dbc, projectID); err != nil {
		return fmt.Errorf("delete designs: %w", err)
	}
	return s.designRepo.CreateBatch(dbc, buildDesigns(projectID, *in, 0))
}

// replaceWorksiteMedia only ever touches closure=false rows; the closure
// partition has its own replace inside upsertClosure.
func (s *projectService) replaceWorksiteMedia(dbc dbctx.Context, projectID uuid.UUID, in *[]MediaInput) error {
	if in == nil {
		return nil
	}
	if err := s.mediaRepo.DeleteWorksiteByProjectID(dbc, projectID); err != nil {
		return fmt.Errorf("delete worksite media: %w", err)
	}
	rows, err := buildWorksiteMedia(projectID, *in, 0)
	if err != nil {
		return err
	}
	return s.mediaRepo.CreateBatch(dbc, rows)
}

// Attachment rows own their FileObjects, so replacing the rows also deletes
// the file rows they point at.

func (s *projectService) replaceInvoices(dbc dbctx.Context, projectID uuid.UUID, in *[]FileInput) error {
	if in == nil {
		return nil
	}
	existing, err := s.invoiceRepo.GetByProjectID(dbc, projectID)
	if err != nil {
		return fmt.Errorf("load invoices: %w", err)
	}
	fileIDs := make([]uuid.UUID, 0, len(existing))
	for _, row := range existing {
		fileIDs = append(fileIDs, row.FileID)
	}
	if err := s.invoiceRepo.DeleteByProjectID(dbc, projectID); err != nil {
		return fmt.Errorf("delete invoices: %w", err)
	}
	if err := s.fileRepo.DeleteByIDs(dbc, fileIDs); err != nil {
		return fmt.Errorf("delete invoice files: %w", err)
	}
	rows := make([]*domain.ProjectInvoice, 0, len(*in))
	for i, f := range *in {
		fileID, err := s.resolveFile(dbc, &f)
		if err != nil {
			return err
		}
		rows = append(rows, &domain.ProjectInvoice{
			ID:        uuid.New(),
			ProjectID: projectID,
			FileID:    *fileID,
			Position:  i,
		})
	}
	return s.invoiceRepo.CreateBatch(dbc, rows)
}

func (s *projectService) replacePermits(dbc dbctx.Context, projectID uuid.UUID, in *[]FileInput) error {
	if in == nil {
		return nil
	}
	existing, err := s.permitRepo.GetByProjectID(dbc, projectID)
	if err != nil {
		return fmt.Errorf("load permits: %w", err)
	}
	fileIDs := make([]uuid.UUID, 0, len(existing))
	for _, row := range existing {
		fileIDs = append(fileIDs, row.FileID)
	}
	if err := s.permitRepo.DeleteByProjectID(dbc, projectID); err != nil {
		return fmt.Errorf("delete permits: %w", err)
	}
	if err := s.fileRepo.DeleteByIDs(dbc, fileIDs); err != nil {
		return fmt.Errorf("delete permit files: %w", err)
	}
	rows := make([]*domain.ProjectPermit, 0, len(*in))
	for i, f := range *in {
		fileID, err := s.resolveFile(dbc, &f)
		if err != nil {
			return err
		}
		rows = append(rows, &domain.ProjectPermit{
			ID:        uuid.New(),
			ProjectID: projectID,
			FileID:    *fileID,
			Position:  i,
		})
	}
	return s.permitRepo.CreateBatch(dbc, rows)
}

func (s *projectService) replaceSignOffs(dbc dbctx.Context, projectID uuid.UUID, in *[]FileInput) error {
	if in == nil {
		return nil
	}
	existing, err := s.signOffRepo.GetByProjectID(dbc, projectID)
	if err != nil {
		return fmt.Errorf("load sign-offs: %w", err)
	}
	fileIDs := make([]uuid.UUID, 0, len(existing))
	for _, row := range existing {
		fileIDs = append(fileIDs, row.FileID)
	}
	if err := s.signOffRepo.DeleteByProjectID(dbc, projectID); err != nil {
		return fmt.Errorf("delete sign-offs: %w", err)
	}
	if err := s.fileRepo.DeleteByIDs(dbc, fileIDs); err != nil {
		return fmt.Errorf("delete sign-off files: %w", err)
	}
	rows := make([]*domain.ProjectSignOff, 0, len(*in))
	for i, f := range *in {
		fileID, err := s.resolveFile(dbc, &f)
		if err != nil {
			return err
		}
		rows = append(rows, &domain.ProjectSignOff{
			ID:        uuid.New(),
			ProjectID: projectID,
			FileID:    *fileID,
			Position:  i,
		})
	}
	return s.signOffRepo.CreateBatch(dbc, rows)
}
