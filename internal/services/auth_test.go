package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/platform/ctxutil"
	"github.com/atelierhaus/atelier-backend/internal/repos"
	"github.com/atelierhaus/atelier-backend/internal/repos/testutil"
)

func newTestAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	svc := NewAuthService(
		tx, log,
		repos.NewUserRepo(tx, log),
		repos.NewUserTokenRepo(tx, log),
		"test-secret",
		time.Hour,
		24*time.Hour,
	)
	return svc, tx
}

func TestRegisterLoginRefresh(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		Email:    "Owner@AtelierHaus.example",
		Password: "correct-horse",
		Name:     "Studio Owner",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "owner@atelierhaus.example" {
		t.Fatalf("email should normalize lowercase, got %q", user.Email)
	}
	if user.Password == "correct-horse" {
		t.Fatalf("password must be stored hashed")
	}

	access, refresh, err := svc.Login(ctx, &LoginInput{
		Email: "owner@atelierhaus.example", Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}

	authedCtx, err := svc.SetContextFromToken(ctx, access)
	if err != nil {
		t.Fatalf("set context from token: %v", err)
	}
	rd := ctxutil.GetRequestData(authedCtx)
	if rd == nil || rd.UserID != user.ID || rd.UserEmail != user.Email {
		t.Fatalf("request data wrong: %+v", rd)
	}

	newAccess, newRefresh, err := svc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" || newRefresh == refresh {
		t.Fatalf("refresh must rotate the token")
	}

	// old refresh token is single-use
	if _, _, err := svc.Refresh(ctx, refresh); apierr.From(err).Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 on reused refresh token, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "not-an-email", Password: "short"})
	requireValidationError(t, err, "email")
	requireValidationError(t, err, "password")

	if _, err := svc.Register(ctx, &RegisterInput{
		Email: "dupe@example.com", Password: "long-enough",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err = svc.Register(ctx, &RegisterInput{
		Email: "dupe@example.com", Password: "long-enough",
	})
	requireValidationError(t, err, "email")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterInput{
		Email: "login@example.com", Password: "long-enough",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(ctx, &LoginInput{
		Email: "login@example.com", Password: "wrong",
	}); apierr.From(err).Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 on wrong password, got %v", err)
	}
	if _, _, err := svc.Login(ctx, &LoginInput{
		Email: "ghost@example.com", Password: "whatever",
	}); apierr.From(err).Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 on unknown email, got %v", err)
	}
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterInput{
		Email: "bye@example.com", Password: "long-enough",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, refresh, err := svc.Login(ctx, &LoginInput{
		Email: "bye@example.com", Password: "long-enough",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, refresh); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, _, err := svc.Refresh(ctx, refresh); apierr.From(err).Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %v", err)
	}
}
