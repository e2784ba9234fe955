package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/atelierhaus/atelier-backend/internal/domain"
	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
	"github.com/atelierhaus/atelier-backend/internal/repos/testutil"
)

func TestCodeExistsIncludesSoftDeleted(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProjectRepo(tx, testutil.Logger(t))

	p := testutil.SeedProject(t, ctx, tx)

	exists, err := repo.CodeExists(dbc, p.Code)
	if err != nil {
		t.Fatalf("code exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected live code to exist")
	}

	if err := repo.SoftDeleteByID(dbc, p.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	// the row is invisible to normal reads but its code stays reserved
	if _, err := repo.GetByCode(dbc, p.Code); err == nil {
		t.Fatalf("expected soft-deleted project to be invisible")
	}
	exists, err = repo.CodeExists(dbc, p.Code)
	if err != nil {
		t.Fatalf("code exists after delete: %v", err)
	}
	if !exists {
		t.Fatalf("soft-deleted code must stay reserved")
	}
}

func TestMediaPartitionDeletes(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewMediaRepo(tx, testutil.Logger(t))

	p := testutil.SeedProject(t, ctx, tx)
	rows := []*domain.MediaAsset{
		{ID: uuid.New(), ProjectID: p.ID, KindCode: domain.MediaImage, URL: "a.jpg", Closure: false},
		{ID: uuid.New(), ProjectID: p.ID, KindCode: domain.MediaImage, URL: "b.jpg", Closure: false},
		{ID: uuid.New(), ProjectID: p.ID, KindCode: domain.MediaVideo, URL: "final.mp4", Closure: true},
	}
	if err := repo.CreateBatch(dbc, rows); err != nil {
		t.Fatalf("create media: %v", err)
	}

	if err := repo.DeleteClosureByProjectID(dbc, p.ID); err != nil {
		t.Fatalf("delete closure media: %v", err)
	}
	count, err := repo.CountWorksiteByProjectID(dbc, p.ID)
	if err != nil {
		t.Fatalf("count worksite: %v", err)
	}
	if count != 2 {
		t.Fatalf("closure delete touched the worksite partition: %d", count)
	}

	if err := repo.DeleteWorksiteByProjectID(dbc, p.ID); err != nil {
		t.Fatalf("delete worksite media: %v", err)
	}
	count, err = repo.CountWorksiteByProjectID(dbc, p.ID)
	if err != nil {
		t.Fatalf("count worksite after delete: %v", err)
	}
	if count != 0 {
		t.Fatalf("worksite media should be gone, got %d", count)
	}
}

func TestClosureGetByProjectIDMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewClosureRepo(tx, testutil.Logger(t))

	closure, err := repo.GetByProjectID(dbc, uuid.New())
	if err != nil {
		t.Fatalf("expected nil error for missing closure, got %v", err)
	}
	if closure != nil {
		t.Fatalf("expected nil closure, got %+v", closure)
	}
}
