package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/services"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func invalidBody() *apierr.Error {
	return apierr.New(http.StatusBadRequest, "invalid_body", fmt.Errorf("invalid request body"))
}

// pageParams rejects malformed paging values outright rather than clamping
// them; absent params fall through as 0 and pick up service defaults.
func pageParams(c *gin.Context) (int, int, *apierr.Error) {
	page := 0
	pageSize := 0
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, apierr.NewValidation(map[string]string{"page": "must be an integer"})
		}
		page = n
	}
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, apierr.NewValidation(map[string]string{"page_size": "must be an integer"})
		}
		pageSize = n
	}
	return page, pageSize, nil
}

func (ph *ProjectHandler) Create(c *gin.Context) {
	var req services.ProjectCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, view)
}

func (ph *ProjectHandler) Get(c *gin.Context) {
	view, err := ph.projectService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, view)
}

func (ph *ProjectHandler) List(c *gin.Context) {
	page, pageSize, pErr := pageParams(c)
	if pErr != nil {
		RespondError(c, pErr)
		return
	}
	filters := services.ProjectListFilters{
		Status:        c.Query("status"),
		Type:          c.Query("type"),
		Query:         c.Query("q"),
		StartDateFrom: c.Query("start_date_from"),
		StartDateTo:   c.Query("start_date_to"),
		ETAFrom:       c.Query("eta_from"),
		ETATo:         c.Query("eta_to"),
	}
	pageView, err := ph.projectService.List(c.Request.Context(), filters, page, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, pageView)
}

func (ph *ProjectHandler) Update(c *gin.Context) {
	var req services.ProjectUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.Update(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, view)
}

func (ph *ProjectHandler) Delete(c *gin.Context) {
	if err := ph.projectService.Delete(c.Request.Context(), c.Param("code")); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "project deleted"})
}

func (ph *ProjectHandler) AddMilestone(c *gin.Context) {
	var req services.MilestoneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.AddMilestone(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, view)
}

func (ph *ProjectHandler) UpdateMilestone(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apierr.NewValidation(map[string]string{"id": "must be a UUID"}))
		return
	}
	var req services.MilestoneUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.UpdateMilestone(c.Request.Context(), c.Param("code"), milestoneID, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, view)
}

func (ph *ProjectHandler) AppendMaterials(c *gin.Context) {
	var req []services.MaterialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.AppendMaterials(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, view)
}

func (ph *ProjectHandler) AppendDesigns(c *gin.Context) {
	var req []services.DesignInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.AppendDesigns(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, view)
}

func (ph *ProjectHandler) AppendMedia(c *gin.Context) {
	var req []services.MediaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.AppendMedia(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, view)
}

func (ph *ProjectHandler) AddAttachment(c *gin.Context) {
	var req struct {
		Type string              `json:"type"`
		File *services.FileInput `json:"file"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.AddAttachment(c.Request.Context(), c.Param("code"), req.Type, req.File)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, view)
}

func (ph *ProjectHandler) UpsertClosure(c *gin.Context) {
	var req services.ClosureInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, invalidBody())
		return
	}
	view, err := ph.projectService.UpsertClosure(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, view)
}
