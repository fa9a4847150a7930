package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/portify/portify/internal/application/usecase/project"
	"github.com/portify/portify/pkg/apperror"
)

type ProjectHandler struct {
	useCase *projectUC.ProjectUseCase
}

func NewProjectHandler(uc *projectUC.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{useCase: uc}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	projects, err := h.useCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Projects fetched successfully", "data": projects})
}

func (h *ProjectHandler) UpsertProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req upsertProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}
	id, err := parseRecordID(req.ID)
	if err != nil {
		c.Error(apperror.NewNotFound("project", req.ID))
		return
	}

	p, created, err := h.useCase.Upsert(c.Request.Context(), projectUC.UpsertProjectInput{
		ID:           id,
		OwnerID:      ownerID,
		Name:         req.Project,
		Description:  req.Description,
		Technologies: req.Technologies,
		GithubLink:   req.GithubLink,
		LiveDemo:     req.LiveDemo,
	})
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Project added successfully", "data": p})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully", "data": p})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	rawID := c.Query("projectId")
	if rawID == "" {
		c.Error(apperror.NewInvalidInput("projectId is required", nil))
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NewNotFound("project", rawID))
		return
	}

	deleted, err := h.useCase.Delete(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully", "data": deleted})
}
