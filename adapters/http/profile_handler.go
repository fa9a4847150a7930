package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/portify/portify/internal/application/usecase/profile"
	"github.com/portify/portify/pkg/apperror"
)

type ProfileHandler struct {
	useCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: uc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	p, err := h.useCase.Get(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile fetched successfully", "data": p})
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	p, err := h.useCase.Upsert(c.Request.Context(), profileUC.UpsertProfileInput{
		OwnerID:  ownerID,
		FullName: req.FullName,
		Title:    req.Title,
		Location: req.Location,
		Bio:      req.Bio,
		Phone:    req.Phone,
		Email:    req.Email,
		Linkedin: req.Linkedin,
		Github:   req.Github,
		Website:  req.Website,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully", "data": p})
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	rawID := c.Query("profileId")
	if rawID == "" {
		c.Error(apperror.NewInvalidInput("profileId is required", nil))
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NewNotFound("profile", rawID))
		return
	}

	deleted, err := h.useCase.Delete(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully", "data": deleted})
}

// UploadAvatar accepts a multipart "avatar" file and stores it with the
// media uploader, persisting the resulting URL on the profile.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.Error(apperror.NewInvalidInput("avatar file is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read avatar file", err))
		return
	}
	defer file.Close()

	p, err := h.useCase.UploadAvatar(c.Request.Context(), profileUC.UploadAvatarInput{
		OwnerID: ownerID,
		File:    file,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Avatar uploaded successfully", "data": p})
}
