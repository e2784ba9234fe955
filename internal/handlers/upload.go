package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/services"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (uh *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		RespondError(c, apierr.NewValidation(map[string]string{"file": "is required"}))
		return
	}
	result, sErr := uh.uploadService.Save(c.Request.Context(), header)
	if sErr != nil {
		RespondError(c, sErr)
		return
	}
	RespondCreated(c, result)
}
