package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	skillUC "github.com/portify/portify/internal/application/usecase/skill"
	"github.com/portify/portify/pkg/apperror"
)

type SkillHandler struct {
	useCase *skillUC.SkillUseCase
}

func NewSkillHandler(uc *skillUC.SkillUseCase) *SkillHandler {
	return &SkillHandler{useCase: uc}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	skills, err := h.useCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skills fetched successfully", "data": skills})
}

func (h *SkillHandler) UpsertSkill(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req upsertSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}
	id, err := parseRecordID(req.ID)
	if err != nil {
		c.Error(apperror.NewNotFound("skill", req.ID))
		return
	}

	s, created, err := h.useCase.Upsert(c.Request.Context(), skillUC.UpsertSkillInput{
		ID:      id,
		OwnerID: ownerID,
		Name:    req.Skill,
		Level:   req.Level,
	})
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Skill added successfully", "data": s})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill updated successfully", "data": s})
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	rawID := c.Query("skillId")
	if rawID == "" {
		c.Error(apperror.NewInvalidInput("skillId is required", nil))
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NewNotFound("skill", rawID))
		return
	}

	deleted, err := h.useCase.Delete(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully", "data": deleted})
}
