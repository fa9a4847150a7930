package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/portify/portify/internal/application/usecase/experience"
	"github.com/portify/portify/pkg/apperror"
)

type ExperienceHandler struct {
	useCase *experienceUC.ExperienceUseCase
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{useCase: uc}
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	entries, err := h.useCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience fetched successfully", "data": entries})
}

func (h *ExperienceHandler) UpsertExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req upsertExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}
	id, err := parseRecordID(req.ID)
	if err != nil {
		c.Error(apperror.NewNotFound("experience", req.ID))
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	e, created, err := h.useCase.Upsert(c.Request.Context(), experienceUC.UpsertExperienceInput{
		ID:          id,
		OwnerID:     ownerID,
		Company:     req.Company,
		Position:    req.Position,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Experience added successfully", "data": e})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience updated successfully", "data": e})
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	rawID := c.Query("experienceId")
	if rawID == "" {
		c.Error(apperror.NewInvalidInput("experienceId is required", nil))
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NewNotFound("experience", rawID))
		return
	}

	deleted, err := h.useCase.Delete(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully", "data": deleted})
}
