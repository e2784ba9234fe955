package app

import (
	"os"
	"strings"

	"gorm.io/gorm"

	redisclient "github.com/atelierhaus/atelier-backend/internal/clients/redis"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
	"github.com/atelierhaus/atelier-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Project services.ProjectService
	Lead    services.LeadService
	Product services.ProductService
	Upload  services.UploadService

	LeadLimiter redisclient.RateLimiter
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	authService := services.NewAuthService(
		db, log, r.User, r.UserToken,
		cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
	)

	projectService := services.NewProjectService(db, log, cfg.ProjectCodePrefix, services.ProjectServiceDeps{
		ProjectRepo:   r.Project,
		ContactRepo:   r.Contact,
		FileRepo:      r.File,
		MilestoneRepo: r.Milestone,
		MaterialRepo:  r.Material,
		DesignRepo:    r.Design,
		MediaRepo:     r.Media,
		InvoiceRepo:   r.Invoice,
		PermitRepo:    r.Permit,
		SignOffRepo:   r.SignOff,
		ClosureRepo:   r.Closure,
	})

	// limiter is optional: no REDIS_ADDR means unthrottled lead capture
	var limiter redisclient.RateLimiter
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		l, err := redisclient.NewRateLimiter(log, "leadrate", int64(cfg.LeadRateLimit), cfg.LeadRateWindow)
		if err != nil {
			log.Warn("Lead rate limiter init failed, continuing without it", "error", err)
		} else {
			limiter = l
		}
	}

	return Services{
		Auth:        authService,
		Project:     projectService,
		Lead:        services.NewLeadService(db, log, r.Lead),
		Product:     services.NewProductService(db, log, r.Product),
		Upload:      services.NewUploadService(log, cfg.UploadDir, cfg.BaseURL),
		LeadLimiter: limiter,
	}
}
