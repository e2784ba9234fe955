package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
	"github.com/atelierhaus/atelier-backend/internal/services"
)

// LeadLimiter gates the public capture endpoint. A nil limiter disables
// limiting entirely.
type LeadLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type LeadHandler struct {
	log         *logger.Logger
	leadService services.LeadService
	limiter     LeadLimiter
}

func NewLeadHandler(log *logger.Logger, leadService services.LeadService, limiter LeadLimiter) *LeadHandler {
	return &LeadHandler{
		log:         log.With("handler", "LeadHandler"),
		leadService: leadService,
		limiter:     limiter,
	}
}

func (lh *LeadHandler) Capture(c *gin.Context) {
	if lh.limiter != nil {
		allowed, err := lh.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// limiter outage should not block lead capture
			lh.log.Warn("Rate limiter unavailable", "error", err)
		} else if !allowed {
			c.JSON(http.StatusTooManyRequests, ErrorEnvelope{
				Error: APIError{Message: "too many submissions, try again later", Code: "rate_limited"},
			})
			return
		}
	}

	var req services.LeadInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	lead, err := lh.leadService.Capture(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, lead)
}

func (lh *LeadHandler) List(c *gin.Context) {
	page, pageSize, pErr := pageParams(c)
	if pErr != nil {
		RespondError(c, pErr)
		return
	}
	pageView, err := lh.leadService.List(c.Request.Context(), c.Query("source"), page, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, pageView)
}
