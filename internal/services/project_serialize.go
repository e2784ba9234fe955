package services

import (
	"fmt"

	"github.com/atelierhaus/atelier-backend/internal/domain"
)

// serializeProject is the single projection used by get, list, create and
// update. A stored code with no label is a data-integrity failure and
// aborts the serialization rather than guessing a value.
func serializeProject(p *domain.Project) (*ProjectView, error) {
	status, err := domain.ProjectStatusLabel(p.StatusCode)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", p.Code, err)
	}

	view := &ProjectView{
		ID:           p.ID.String(),
		Code:         p.Code,
		Address:      p.Address,
		Type:         p.Type,
		Status:       status,
		StartDate:    formatDate(p.StartDate),
		ETA:          formatDate(p.ETA),
		SitePhotoURL: p.SitePhotoURL,
		Discount:     p.Discount,
		ExtraCharge:  p.ExtraCharge,
		Salesperson:  serializeContact(p.Salesperson),
		Designer:     serializeContact(p.Designer),
		Contractor:   serializeContact(p.Contractor),
		Milestones:   []MilestoneView{},
		Materials:    []MaterialView{},
		Designs:      []DesignView{},
		Media:        []MediaView{},
		Invoices:     []FileView{},
		Permits:      []FileView{},
		SignOffs:     []FileView{},
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.QuotationFile != nil {
		view.QuotationFile = serializeFile(p.QuotationFile)
	}

	for i := range p.Milestones {
		m := &p.Milestones[i]
		label, err := domain.PaymentStatusLabel(m.StatusCode)
		if err != nil {
			return nil, fmt.Errorf("project %s milestone %s: %w", p.Code, m.ID, err)
		}
		view.Milestones = append(view.Milestones, MilestoneView{
			ID:       m.ID.String(),
			Label:    m.Label,
			Amount:   m.Amount,
			Status:   label,
			Approved: m.Approved,
			DueDate:  formatDate(m.DueDate),
		})
	}

	for i := range p.Materials {
		m := &p.Materials[i]
		mv := MaterialView{
			ID:       m.ID.String(),
			Type:     m.Type,
			Brand:    m.Brand,
			Quantity: m.Quantity,
		}
		if m.StatusCode != nil {
			label, err := domain.MaterialStatusLabel(*m.StatusCode)
			if err != nil {
				return nil, fmt.Errorf("project %s material %s: %w", p.Code, m.ID, err)
			}
			mv.Status = &label
		}
		view.Materials = append(view.Materials, mv)
	}

	for i := range p.Designs {
		d := &p.Designs[i]
		view.Designs = append(view.Designs, DesignView{
			ID:    d.ID.String(),
			URL:   d.URL,
			Title: d.Title,
		})
	}

	var closureMedia []MediaView
	for i := range p.Media {
		m := &p.Media[i]
		kind, err := domain.MediaKindLabel(m.KindCode)
		if err != nil {
			return nil, fmt.Errorf("project %s media %s: %w", p.Code, m.ID, err)
		}
		mv := MediaView{
			ID:      m.ID.String(),
			Kind:    kind,
			URL:     m.URL,
			Caption: m.Caption,
		}
		if m.Closure {
			closureMedia = append(closureMedia, mv)
		} else {
			view.Media = append(view.Media, mv)
		}
	}

	for i := range p.Invoices {
		if f := p.Invoices[i].File; f != nil {
			view.Invoices = append(view.Invoices, *serializeFile(f))
		}
	}
	for i := range p.Permits {
		if f := p.Permits[i].File; f != nil {
			view.Permits = append(view.Permits, *serializeFile(f))
		}
	}
	for i := range p.SignOffs {
		if f := p.SignOffs[i].File; f != nil {
			view.SignOffs = append(view.SignOffs, *serializeFile(f))
		}
	}

	if p.Closure != nil {
		cv := &ClosureView{
			FinalMedia:   []MediaView{},
			HandoverDate: formatDate(p.Closure.HandoverDate),
			FollowUpDate: formatDate(p.Closure.FollowUpDate),
			AfterSales:   serializeContact(p.Closure.AfterSalesContact),
		}
		if len(closureMedia) > 0 {
			cv.FinalMedia = closureMedia
		}
		if p.Closure.CertificateFile != nil {
			cv.Certificate = serializeFile(p.Closure.CertificateFile)
		}
		if p.Closure.WarrantyFile != nil {
			cv.Warranty = serializeFile(p.Closure.WarrantyFile)
		}
		view.Closure = cv
	}

	return view, nil
}

func serializeContact(c *domain.Contact) *ContactView {
	if c == nil {
		return nil
	}
	return &ContactView{
		ID:    c.ID.String(),
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
	}
}

func serializeFile(f *domain.FileObject) *FileView {
	if f == nil {
		return nil
	}
	return &FileView{
		ID:   f.ID.String(),
		Name: f.Name,
		URL:  f.URL,
	}
}
