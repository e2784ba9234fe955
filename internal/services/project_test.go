package services

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/repos"
	"github.com/atelierhaus/atelier-backend/internal/repos/testutil"
)

func strp(s string) *string               { return &s }
func boolp(b bool) *bool                  { return &b }
func floatp(f float64) *float64           { return &f }
func mediap(m []MediaInput) *[]MediaInput { return &m }

func mustUUID(t *testing.T, raw string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(raw)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", raw, err)
	}
	return id
}

func newTestProjectService(t *testing.T) (ProjectService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	svc := NewProjectService(tx, log, "PRJ", ProjectServiceDeps{
		ProjectRepo:   repos.NewProjectRepo(tx, log),
		ContactRepo:   repos.NewContactRepo(tx, log),
		FileRepo:      repos.NewFileObjectRepo(tx, log),
		MilestoneRepo: repos.NewMilestoneRepo(tx, log),
		MaterialRepo:  repos.NewMaterialRepo(tx, log),
		DesignRepo:    repos.NewDesignRepo(tx, log),
		MediaRepo:     repos.NewMediaRepo(tx, log),
		InvoiceRepo:   repos.NewInvoiceRepo(tx, log),
		PermitRepo:    repos.NewPermitRepo(tx, log),
		SignOffRepo:   repos.NewSignOffRepo(tx, log),
		ClosureRepo:   repos.NewClosureRepo(tx, log),
	})
	return svc, tx
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error on %q, got nil", field)
	}
	ae := apierr.From(err)
	if ae.Status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d (%v)", ae.Status, err)
	}
	if _, ok := ae.Fields[field]; !ok {
		t.Fatalf("expected field %q in validation detail, got %v", field, ae.Fields)
	}
}

func fullCreateInput() *ProjectCreateInput {
	return &ProjectCreateInput{
		Code:      strp("ATL-202601"),
		Address:   "88 Orchard Boulevard #12-01",
		Type:      "residential",
		Status:    strp("Quoted"),
		StartDate: strp("2026-03-01"),
		ETA:       strp("2026-08-15"),
		Discount:  floatp(500),
		Salesperson: &ContactInput{
			Name:  "Mei Lin",
			Phone: strp("+65 9123 4567"),
			Email: strp("mei@atelierhaus.example"),
		},
		Designer:      &ContactInput{Name: "Theo Raines"},
		QuotationFile: &FileInput{Name: "quote-v1.pdf", URL: "https://cdn.example.com/quote-v1.pdf"},
		Milestones: &[]MilestoneInput{
			{Label: "Deposit", Amount: 5000, Status: strp("Paid"), Approved: boolp(true)},
			{Label: "Carpentry", Amount: 12000, DueDate: strp("2026-05-01")},
		},
		Materials: &[]MaterialInput{
			{Type: "Quartz countertop", Brand: strp("Caesarstone"), Status: strp("Ordered")},
		},
		Designs: &[]DesignInput{
			{URL: "https://cdn.example.com/render-1.png", Title: strp("Living room")},
		},
		Media: &[]MediaInput{
			{Kind: "image", URL: "https://cdn.example.com/site-1.jpg", Caption: strp("Before hacking")},
		},
		Invoices: &[]FileInput{
			{Name: "inv-001.pdf", URL: "https://cdn.example.com/inv-001.pdf"},
		},
	}
}

func TestProjectCreateAndGetRoundTrip(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Code != "ATL-202601" {
		t.Fatalf("expected supplied code, got %q", created.Code)
	}
	if created.Status != "Quoted" {
		t.Fatalf("expected status Quoted, got %q", created.Status)
	}
	if created.StartDate == nil || *created.StartDate != "2026-03-01" {
		t.Fatalf("start date round trip failed: %v", created.StartDate)
	}
	if created.Salesperson == nil || created.Salesperson.Name != "Mei Lin" {
		t.Fatalf("salesperson missing from view: %+v", created.Salesperson)
	}
	if created.QuotationFile == nil || created.QuotationFile.Name != "quote-v1.pdf" {
		t.Fatalf("quotation file missing from view: %+v", created.QuotationFile)
	}
	if len(created.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(created.Milestones))
	}
	if created.Milestones[0].Label != "Deposit" || created.Milestones[1].Label != "Carpentry" {
		t.Fatalf("milestones out of order: %+v", created.Milestones)
	}
	if len(created.Materials) != 1 || created.Materials[0].Status == nil || *created.Materials[0].Status != "Ordered" {
		t.Fatalf("materials wrong: %+v", created.Materials)
	}
	if len(created.Invoices) != 1 || created.Invoices[0].Name != "inv-001.pdf" {
		t.Fatalf("invoices wrong: %+v", created.Invoices)
	}
	// collections that were never supplied serialize as empty, not null
	if created.Permits == nil || created.SignOffs == nil || created.Designs == nil {
		t.Fatalf("expected non-nil collection slices")
	}

	got, err := svc.Get(ctx, "ATL-202601")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.Code != created.Code {
		t.Fatalf("get returned different project: %q vs %q", got.ID, created.ID)
	}
	if len(got.Milestones) != 2 || len(got.Materials) != 1 || len(got.Media) != 1 {
		t.Fatalf("aggregate not fully reloaded: %+v", got)
	}
}

func TestProjectCreateGeneratesCodeAndDefaults(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &ProjectCreateInput{
		Address: "5 Clementi Ave",
		Type:    "commercial",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !regexp.MustCompile(`^PRJ-[0-9]{6}$`).MatchString(created.Code) {
		t.Fatalf("generated code %q does not match pattern", created.Code)
	}
	if created.Status != "In Progress" {
		t.Fatalf("expected default status In Progress, got %q", created.Status)
	}
	if created.Discount != 0 || created.ExtraCharge != 0 {
		t.Fatalf("expected zero money defaults, got %f/%f", created.Discount, created.ExtraCharge)
	}
}

func TestProjectCreateRejectsDuplicateCode(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &ProjectCreateInput{
		Code: strp("ATL-900001"), Address: "1 First St", Type: "residential",
	}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, &ProjectCreateInput{
		Code: strp("ATL-900001"), Address: "2 Second St", Type: "residential",
	})
	requireValidationError(t, err, "code")
}

func TestProjectCreateValidation(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &ProjectCreateInput{
		Code:      strp("bad-code"),
		Type:      "residential",
		StartDate: strp("01/03/2026"),
		Milestones: &[]MilestoneInput{
			{Label: "", Amount: -5, Status: strp("Bogus")},
		},
	})
	requireValidationError(t, err, "code")
	ae := apierr.From(err)
	for _, field := range []string{"address", "start_date", "milestones[0].label", "milestones[0].amount", "milestones[0].status"} {
		if _, ok := ae.Fields[field]; !ok {
			t.Errorf("expected field %q in validation detail, got %v", field, ae.Fields)
		}
	}
}

func TestMilestoneDefaults(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &ProjectCreateInput{
		Address: "9 Dover Rise",
		Type:    "residential",
		Milestones: &[]MilestoneInput{
			{Label: "Deposit", Amount: 3000},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	m := created.Milestones[0]
	if m.Status != "Pending" {
		t.Fatalf("expected default payment status Pending, got %q", m.Status)
	}
	if m.Approved {
		t.Fatalf("expected approved to default false")
	}
	if m.DueDate != nil {
		t.Fatalf("expected no due date, got %v", *m.DueDate)
	}
}

func TestProjectUpdateOmittedCollectionsUntouched(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.Code, &ProjectUpdateInput{
		Address: strp("88 Orchard Boulevard #14-03"),
		Status:  strp("In Progress"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Address != "88 Orchard Boulevard #14-03" {
		t.Fatalf("address not updated: %q", updated.Address)
	}
	if updated.Status != "In Progress" {
		t.Fatalf("status not updated: %q", updated.Status)
	}
	if len(updated.Milestones) != 2 || len(updated.Materials) != 1 || len(updated.Media) != 1 {
		t.Fatalf("omitted collections were modified: %+v", updated)
	}
	if updated.Salesperson == nil || updated.Salesperson.Name != "Mei Lin" {
		t.Fatalf("omitted contact slot was modified: %+v", updated.Salesperson)
	}
}

func TestProjectUpdateEmptyCollectionClears(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := []MaterialInput{}
	updated, err := svc.Update(ctx, created.Code, &ProjectUpdateInput{
		Materials: &empty,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Materials) != 0 {
		t.Fatalf("expected materials cleared, got %+v", updated.Materials)
	}
	if len(updated.Milestones) != 2 {
		t.Fatalf("milestones should be untouched, got %d", len(updated.Milestones))
	}
}

func TestProjectUpdateReplacesQuotationFile(t *testing.T) {
	svc, tx := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oldFileID := created.QuotationFile.ID

	updated, err := svc.Update(ctx, created.Code, &ProjectUpdateInput{
		QuotationFile: &FileInput{Name: "quote-v2.pdf", URL: "https://cdn.example.com/quote-v2.pdf"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.QuotationFile == nil || updated.QuotationFile.Name != "quote-v2.pdf" {
		t.Fatalf("quotation file not replaced: %+v", updated.QuotationFile)
	}
	if updated.QuotationFile.ID == oldFileID {
		t.Fatalf("expected a fresh file row")
	}

	var count int64
	if err := tx.Model(&domain.FileObject{}).Where("id = ?", oldFileID).Count(&count).Error; err != nil {
		t.Fatalf("count old file: %v", err)
	}
	if count != 0 {
		t.Fatalf("old quotation file row should be retired")
	}
}

func TestContactUpdateInPlace(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oldContactID := created.Salesperson.ID

	updated, err := svc.Update(ctx, created.Code, &ProjectUpdateInput{
		Salesperson: &ContactInput{Name: "Mei Lin Tan", Phone: strp("+65 8000 1234")},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Salesperson.ID != oldContactID {
		t.Fatalf("contact should be updated in place, not replaced")
	}
	if updated.Salesperson.Name != "Mei Lin Tan" || updated.Salesperson.Phone != "+65 8000 1234" {
		t.Fatalf("contact fields not updated: %+v", updated.Salesperson)
	}
}

func TestClosureMediaPartition(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	withClosure, err := svc.UpsertClosure(ctx, created.Code, &ClosureInput{
		FinalMedia: mediap([]MediaInput{
			{Kind: "image", URL: "https://cdn.example.com/final-1.jpg"},
			{Kind: "video", URL: "https://cdn.example.com/final-tour.mp4"},
		}),
		HandoverDate: strp("2026-09-01"),
	})
	if err != nil {
		t.Fatalf("upsert closure: %v", err)
	}
	if withClosure.Closure == nil {
		t.Fatalf("closure missing from view")
	}
	if len(withClosure.Closure.FinalMedia) != 2 {
		t.Fatalf("expected 2 final media, got %d", len(withClosure.Closure.FinalMedia))
	}
	// worksite gallery must survive closure media writes
	if len(withClosure.Media) != 1 || withClosure.Media[0].Caption != "Before hacking" {
		t.Fatalf("worksite media disturbed: %+v", withClosure.Media)
	}

	// replacing final media must not touch the worksite gallery either
	replaced, err := svc.UpsertClosure(ctx, created.Code, &ClosureInput{
		FinalMedia: mediap([]MediaInput{
			{Kind: "image", URL: "https://cdn.example.com/final-2.jpg"},
		}),
	})
	if err != nil {
		t.Fatalf("replace closure media: %v", err)
	}
	if len(replaced.Closure.FinalMedia) != 1 {
		t.Fatalf("expected final media replaced, got %d", len(replaced.Closure.FinalMedia))
	}
	if replaced.Closure.HandoverDate == nil || *replaced.Closure.HandoverDate != "2026-09-01" {
		t.Fatalf("omitted handover date should persist, got %v", replaced.Closure.HandoverDate)
	}
	if len(replaced.Media) != 1 {
		t.Fatalf("worksite media disturbed by replace: %+v", replaced.Media)
	}
}

func TestClosureCertificateReplacementRetiresFile(t *testing.T) {
	svc, tx := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &ProjectCreateInput{
		Address: "3 Holland Hill", Type: "residential",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.UpsertClosure(ctx, created.Code, &ClosureInput{
		Certificate: &FileInput{Name: "cert-v1.pdf", URL: "https://cdn.example.com/cert-v1.pdf"},
	})
	if err != nil {
		t.Fatalf("first closure: %v", err)
	}
	oldCertID := first.Closure.Certificate.ID

	second, err := svc.UpsertClosure(ctx, created.Code, &ClosureInput{
		Certificate: &FileInput{Name: "cert-v2.pdf", URL: "https://cdn.example.com/cert-v2.pdf"},
	})
	if err != nil {
		t.Fatalf("second closure: %v", err)
	}
	if second.Closure.Certificate.Name != "cert-v2.pdf" {
		t.Fatalf("certificate not replaced: %+v", second.Closure.Certificate)
	}

	var count int64
	if err := tx.Model(&domain.FileObject{}).Where("id = ?", oldCertID).Count(&count).Error; err != nil {
		t.Fatalf("count old cert: %v", err)
	}
	if count != 0 {
		t.Fatalf("old certificate file should be retired")
	}
}

func TestProjectDelete(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &ProjectCreateInput{
		Address: "7 Bedok Rise", Type: "residential",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.Code); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(ctx, created.Code); apierr.From(err).Status != http.StatusNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.Code); apierr.From(err).Status != http.StatusNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}

	// the external code stays burned even after soft delete
	_, err = svc.Create(ctx, &ProjectCreateInput{
		Code: &created.Code, Address: "8 Bedok Rise", Type: "residential",
	})
	requireValidationError(t, err, "code")
}

func TestAddMilestoneAppendsPosition(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := svc.AddMilestone(ctx, created.Code, &MilestoneInput{
		Label: "Handover", Amount: 2000,
	})
	if err != nil {
		t.Fatalf("add milestone: %v", err)
	}
	if len(view.Milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(view.Milestones))
	}
	if view.Milestones[2].Label != "Handover" {
		t.Fatalf("new milestone should append last, got %+v", view.Milestones)
	}
}

func TestUpdateMilestone(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	target := created.Milestones[1]

	view, err := svc.UpdateMilestone(ctx, created.Code, mustUUID(t, target.ID), &MilestoneUpdateInput{
		Status:   strp("Partially Paid"),
		Approved: boolp(true),
	})
	if err != nil {
		t.Fatalf("update milestone: %v", err)
	}
	m := view.Milestones[1]
	if m.Status != "Partially Paid" || !m.Approved {
		t.Fatalf("milestone not updated: %+v", m)
	}
	if m.Label != target.Label || m.Amount != target.Amount {
		t.Fatalf("omitted milestone fields changed: %+v", m)
	}
}

func TestUpdateMilestoneOfOtherProject(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(ctx, &ProjectCreateInput{
		Address: "2 Jurong East", Type: "commercial",
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	_, err = svc.UpdateMilestone(ctx, second.Code, mustUUID(t, first.Milestones[0].ID), &MilestoneUpdateInput{
		Approved: boolp(true),
	})
	if apierr.From(err).Status != http.StatusNotFound {
		t.Fatalf("expected not found for cross-project milestone, got %v", err)
	}
}

func TestAppendCollections(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := svc.AppendMaterials(ctx, created.Code, []MaterialInput{
		{Type: "Oak flooring", Status: strp("Pending")},
	})
	if err != nil {
		t.Fatalf("append materials: %v", err)
	}
	if len(view.Materials) != 2 || view.Materials[1].Type != "Oak flooring" {
		t.Fatalf("material append wrong: %+v", view.Materials)
	}

	view, err = svc.AppendMedia(ctx, created.Code, []MediaInput{
		{Kind: "video", URL: "https://cdn.example.com/walkthrough.mp4"},
	})
	if err != nil {
		t.Fatalf("append media: %v", err)
	}
	if len(view.Media) != 2 || view.Media[1].Kind != "video" {
		t.Fatalf("media append wrong: %+v", view.Media)
	}

	_, err = svc.AppendMedia(ctx, created.Code, []MediaInput{
		{Kind: "gif", URL: "https://cdn.example.com/x.gif"},
	})
	requireValidationError(t, err, "media[0].kind")
}

func TestAddAttachment(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := svc.AddAttachment(ctx, created.Code, "permit", &FileInput{
		Name: "hdb-permit.pdf", URL: "https://cdn.example.com/hdb-permit.pdf",
	})
	if err != nil {
		t.Fatalf("add permit: %v", err)
	}
	if len(view.Permits) != 1 || view.Permits[0].Name != "hdb-permit.pdf" {
		t.Fatalf("permit wrong: %+v", view.Permits)
	}
	if len(view.Invoices) != 1 {
		t.Fatalf("invoices should be untouched: %+v", view.Invoices)
	}

	_, err = svc.AddAttachment(ctx, created.Code, "napkin", &FileInput{
		Name: "x.pdf", URL: "https://cdn.example.com/x.pdf",
	})
	requireValidationError(t, err, "type")
}

func TestProjectListPaginationAndFilters(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	for _, in := range []*ProjectCreateInput{
		{Address: "1 Alpha Ave", Type: "residential", Status: strp("Quoted")},
		{Address: "2 Beta Blvd", Type: "commercial"},
		{Address: "3 Gamma Grove", Type: "residential"},
	} {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("seed create: %v", err)
		}
	}

	page, err := svc.List(ctx, ProjectListFilters{}, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 3 || page.TotalPages != 2 || len(page.Items) != 2 {
		t.Fatalf("unexpected page shape: total=%d pages=%d items=%d", page.Total, page.TotalPages, len(page.Items))
	}

	page2, err := svc.List(ctx, ProjectListFilters{}, 2, 2)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page2.Items) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(page2.Items))
	}

	quoted, err := svc.List(ctx, ProjectListFilters{Status: "Quoted"}, 0, 0)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if quoted.Total != 1 || quoted.Items[0].Address != "1 Alpha Ave" {
		t.Fatalf("status filter wrong: %+v", quoted.Items)
	}

	byType, err := svc.List(ctx, ProjectListFilters{Type: "commercial"}, 0, 0)
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if byType.Total != 1 {
		t.Fatalf("type filter wrong: total=%d", byType.Total)
	}

	byAddr, err := svc.List(ctx, ProjectListFilters{Query: "gamma"}, 0, 0)
	if err != nil {
		t.Fatalf("list by address: %v", err)
	}
	if byAddr.Total != 1 || byAddr.Items[0].Address != "3 Gamma Grove" {
		t.Fatalf("address search wrong: %+v", byAddr.Items)
	}
}

func TestProjectListRejectsBadPaging(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, ProjectListFilters{}, -1, 0)
	requireValidationError(t, err, "page")

	_, err = svc.List(ctx, ProjectListFilters{}, 1, 101)
	requireValidationError(t, err, "page_size")

	_, err = svc.List(ctx, ProjectListFilters{Status: "Nonexistent"}, 0, 0)
	requireValidationError(t, err, "status")
}

func TestProjectListEmpty(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	page, err := svc.List(ctx, ProjectListFilters{Type: "industrial"}, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 0 || page.TotalPages != 0 || len(page.Items) != 0 {
		t.Fatalf("expected empty page with zero total pages, got %+v", page)
	}
	if page.Page != 1 || page.PageSize != defaultPageSize {
		t.Fatalf("expected defaults applied, got page=%d size=%d", page.Page, page.PageSize)
	}
}
