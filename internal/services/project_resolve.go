package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
)

// resolveContact implements the shared-entity rule for contact slots: no
// proposed value is a no-op, a proposed value updates the already-linked row
// in place, and a proposed value with no link creates a new row. Resolution
// is only ever by the existing link id, never by name or email.
func (s *projectService) resolveContact(dbc dbctx.Context, existingID *uuid.UUID, proposed *ContactInput) (*uuid.UUID, error) {
	if proposed == nil {
		return existingID, nil
	}

	if existingID != nil {
		contact, err := s.contactRepo.GetByID(dbc, *existingID)
		if err != nil {
			return nil, fmt.Errorf("load linked contact: %w", err)
		}
		contact.Name = proposed.Name
		if proposed.Phone != nil {
			contact.Phone = *proposed.Phone
		}
		if proposed.Email != nil {
			contact.Email = *proposed.Email
		}
		if err := s.contactRepo.Update(dbc, contact); err != nil {
			return nil, fmt.Errorf("update linked contact: %w", err)
		}
		return existingID, nil
	}

	contact := &domain.Contact{ID: uuid.New(), Name: proposed.Name}
	if proposed.Phone != nil {
		contact.Phone = *proposed.Phone
	}
	if proposed.Email != nil {
		contact.Email = *proposed.Email
	}
	if _, err := s.contactRepo.Create(dbc, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	id := contact.ID
	return &id, nil
}

// resolveFile always creates a fresh FileObject row when a value is
// proposed; retiring the previously linked row is the caller's job where
// replacement rather than accumulation is intended.
func (s *projectService) resolveFile(dbc dbctx.Context, proposed *FileInput) (*uuid.UUID, error) {
	if proposed == nil {
		return nil, nil
	}
	file := &domain.FileObject{ID: uuid.New(), Name: proposed.Name, URL: proposed.URL}
	if _, err := s.fileRepo.Create(dbc, file); err != nil {
		return nil, fmt.Errorf("create file object: %w", err)
	}
	id := file.ID
	return &id, nil
}
