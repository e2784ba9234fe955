package app

import (
	"github.com/atelierhaus/atelier-backend/internal/handlers"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Project *handlers.ProjectHandler
	Lead    *handlers.LeadHandler
	Product *handlers.ProductHandler
	Upload  *handlers.UploadHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	var limiter handlers.LeadLimiter
	if s.LeadLimiter != nil {
		limiter = s.LeadLimiter
	}
	return Handlers{
		Auth:    handlers.NewAuthHandler(s.Auth),
		Project: handlers.NewProjectHandler(s.Project),
		Lead:    handlers.NewLeadHandler(log, s.Lead, limiter),
		Product: handlers.NewProductHandler(s.Product),
		Upload:  handlers.NewUploadHandler(s.Upload),
	}
}
