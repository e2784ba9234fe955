package services

import (
	"context"
	"testing"

	"github.com/atelierhaus/atelier-backend/internal/repos"
	"github.com/atelierhaus/atelier-backend/internal/repos/testutil"
)

func newTestLeadService(t *testing.T) LeadService {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	return NewLeadService(tx, log, repos.NewLeadRepo(tx, log))
}

func TestLeadCapture(t *testing.T) {
	svc := newTestLeadService(t)
	ctx := context.Background()

	lead, err := svc.Capture(ctx, &LeadInput{
		Name:    "  Priya N ",
		Phone:   "+65 8123 4567",
		Email:   "Priya@Example.com",
		Message: "Looking to renovate a 4-room flat",
		Source:  "instagram",
		Meta:    map[string]interface{}{"utm_campaign": "spring"},
	})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if lead.Name != "Priya N" {
		t.Fatalf("name should be trimmed, got %q", lead.Name)
	}
	if lead.Email != "priya@example.com" {
		t.Fatalf("email should normalize lowercase, got %q", lead.Email)
	}
	if len(lead.Meta) == 0 {
		t.Fatalf("meta should be stored")
	}

	_, err = svc.Capture(ctx, &LeadInput{Name: "", Phone: "abc"})
	requireValidationError(t, err, "name")
	requireValidationError(t, err, "phone")
}

func TestLeadListBySource(t *testing.T) {
	svc := newTestLeadService(t)
	ctx := context.Background()

	for _, src := range []string{"instagram", "instagram", "referral"} {
		if _, err := svc.Capture(ctx, &LeadInput{Name: "Lead", Source: src}); err != nil {
			t.Fatalf("capture: %v", err)
		}
	}

	page, err := svc.List(ctx, "instagram", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("expected 2 instagram leads, got %d", page.Total)
	}

	all, err := svc.List(ctx, "", 1, 2)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.Total != 3 || all.TotalPages != 2 {
		t.Fatalf("unexpected totals: %d/%d", all.Total, all.TotalPages)
	}

	_, err = svc.List(ctx, "", -2, 0)
	requireValidationError(t, err, "page")
}
