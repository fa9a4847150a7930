package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	educationUC "github.com/portify/portify/internal/application/usecase/education"
	"github.com/portify/portify/pkg/apperror"
)

type EducationHandler struct {
	useCase *educationUC.EducationUseCase
}

func NewEducationHandler(uc *educationUC.EducationUseCase) *EducationHandler {
	return &EducationHandler{useCase: uc}
}

func (h *EducationHandler) ListEducation(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "Education fetched successfully", "data": entries})
}

func (h *EducationHandler) UpsertEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req upsertEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}
	id, err := parseRecordID(req.ID)
	if err != nil {
		c.Error(apperror.NewNotFound("education", req.ID))
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

	e, created, err := h.useCase.Upsert(c.Request.Context(), educationUC.UpsertEducationInput{
		ID:           id,
		OwnerID:      ownerID,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    startDate,
		EndDate:      endDate,
		Grade:        req.Grade,
	})
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Education added successfully", "data": e})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education updated successfully", "data": e})
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	rawID := c.Query("educationId")
	if rawID == "" {
		c.Error(apperror.NewInvalidInput("educationId is required", nil))
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NewNotFound("education", rawID))
		return
	}

	deleted, err := h.useCase.Delete(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education deleted successfully", "data": deleted})
}
