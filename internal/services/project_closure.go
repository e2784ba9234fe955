package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
)

// upsertClosure manages the 1:1 closure record inside the caller's
// transaction. The closure row is written before any closure media so the
// media always references an existing record, and the media replace only
// ever touches the closure partition.
func (s *projectService) upsertClosure(dbc dbctx.Context, projectID uuid.UUID, in *ClosureInput) error {
	if in == nil {
		return nil
	}

	existing, err := s.closureRepo.GetByProjectID(dbc, projectID)
	if err != nil {
		return fmt.Errorf("load closure: %w", err)
	}

	var afterSalesID *uuid.UUID
	if existing != nil {
		afterSalesID = existing.AfterSalesContactID
	}
	afterSalesID, err = s.resolveContact(dbc, afterSalesID, in.AfterSales)
	if err != nil {
		return err
	}

	certID, err := s.resolveFile(dbc, in.Certificate)
	if err != nil {
		return err
	}
	warrantyID, err := s.resolveFile(dbc, in.Warranty)
	if err != nil {
		return err
	}

	if existing == nil {
		closure := &domain.ProjectClosure{
			ID:                  uuid.New(),
			ProjectID:           projectID,
			CertificateFileID:   certID,
			WarrantyFileID:      warrantyID,
			AfterSalesContactID: afterSalesID,
		}
		if in.HandoverDate != nil {
			d, err := parseDate(*in.HandoverDate)
			if err != nil {
				return fmt.Errorf("handover date: %w", err)
			}
			closure.HandoverDate = d
		}
		if in.FollowUpDate != nil {
			d, err := parseDate(*in.FollowUpDate)
			if err != nil {
				return fmt.Errorf("follow-up date: %w", err)
			}
			closure.FollowUpDate = d
		}
		if err := s.closureRepo.Create(dbc, closure); err != nil {
			return fmt.Errorf("create closure: %w", err)
		}
	} else {
		// Present fields overwrite, omitted fields keep prior values. A new
		// certificate or warranty retires the previously referenced file row.
		var retired []uuid.UUID
		if certID != nil {
			if existing.CertificateFileID != nil {
				retired = append(retired, *existing.CertificateFileID)
			}
			existing.CertificateFileID = certID
		}
		if warrantyID != nil {
			if existing.WarrantyFileID != nil {
				retired = append(retired, *existing.WarrantyFileID)
			}
			existing.WarrantyFileID = warrantyID
		}
		existing.AfterSalesContactID = afterSalesID
		if in.HandoverDate != nil {
			d, err := parseDate(*in.HandoverDate)
			if err != nil {
				return fmt.Errorf("handover date: %w", err)
			}
			existing.HandoverDate = d
		}
		if in.FollowUpDate != nil {
			d, err := parseDate(*in.FollowUpDate)
			if err != nil {
				return fmt.Errorf("follow-up date: %w", err)
			}
			existing.FollowUpDate = d
		}
		if err := s.closureRepo.Update(dbc, existing); err != nil {
			return fmt.Errorf("update closure: %w", err)
		}
		if err := s.fileRepo.DeleteByIDs(dbc, retired); err != nil {
			return fmt.Errorf("retire closure files: %w", err)
		}
	}

	if in.FinalMedia != nil {
		if err := s.mediaRepo.DeleteClosureByProjectID(dbc, projectID); err != nil {
			return fmt.Errorf("delete closure media: %w", err)
		}
		rows, err := buildClosureMedia(projectID, *in.FinalMedia)
		if err != nil {
			return err
		}
		if err := s.mediaRepo.CreateBatch(dbc, rows); err != nil {
			return fmt.Errorf("create closure media: %w", err)
		}
	}
	return nil
}
