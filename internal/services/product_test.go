package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/repos"
	"github.com/atelierhaus/atelier-backend/internal/repos/testutil"
)

func newTestProductService(t *testing.T) ProductService {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	return NewProductService(tx, log, repos.NewProductRepo(tx, log))
}

func TestProductCRUD(t *testing.T) {
	svc := newTestProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &ProductCreateInput{
		Name:     "Walnut dining table",
		Category: "furniture",
		Price:    1890,
		Images:   []string{"https://cdn.example.com/table-1.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Walnut dining table" || got.Price != 1890 {
		t.Fatalf("round trip wrong: %+v", got)
	}

	newPrice := 1690.0
	updated, err := svc.Update(ctx, created.ID, &ProductUpdateInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 1690 || updated.Name != "Walnut dining table" {
		t.Fatalf("partial update wrong: %+v", updated)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); apierr.From(err).Status != http.StatusNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestProductValidationAndList(t *testing.T) {
	svc := newTestProductService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &ProductCreateInput{Name: "", Price: -5})
	requireValidationError(t, err, "name")
	requireValidationError(t, err, "price")

	for _, in := range []*ProductCreateInput{
		{Name: "Pendant lamp", Category: "lighting", Price: 120},
		{Name: "Arc floor lamp", Category: "lighting", Price: 340},
		{Name: "Wool rug", Category: "textiles", Price: 560},
	} {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	lighting, err := svc.List(ctx, "lighting", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if lighting.Total != 2 {
		t.Fatalf("expected 2 lighting products, got %d", lighting.Total)
	}
}
