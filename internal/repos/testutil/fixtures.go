package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/domain"
)

var seedSeq int

func nextCode() string {
	seedSeq++
	return fmt.Sprintf("TST-%06d", 100000+seedSeq)
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB) *domain.Project {
	tb.Helper()
	p := &domain.Project{
		ID:         uuid.New(),
		Code:       nextCode(),
		Address:    "12 Harbor Lane",
		Type:       "residential",
		StatusCode: domain.StatusInProgress,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedContact(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Contact {
	tb.Helper()
	c := &domain.Contact{ID: uuid.New(), Name: name, Phone: "+6591234567"}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contact: %v", err)
	}
	return c
}

func SeedFileObject(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.FileObject {
	tb.Helper()
	f := &domain.FileObject{ID: uuid.New(), Name: name, URL: "https://cdn.example.com/" + name}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed file object: %v", err)
	}
	return f
}
