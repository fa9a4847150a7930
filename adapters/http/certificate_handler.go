package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	certificateUC "github.com/portify/portify/internal/application/usecase/certificate"
	"github.com/portify/portify/pkg/apperror"
)

type CertificateHandler struct {
	useCase *certificateUC.CertificateUseCase
}

func NewCertificateHandler(uc *certificateUC.CertificateUseCase) *CertificateHandler {
	return &CertificateHandler{useCase: uc}
}

func (h *CertificateHandler) ListCertificates(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	certificates, err := h.useCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificates fetched successfully", "data": certificates})
}

func (h *CertificateHandler) UpsertCertificate(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req upsertCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}
	id, err := parseRecordID(req.ID)
	if err != nil {
		c.Error(apperror.NewNotFound("certificate", req.ID))
		return
	}
	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	cert, created, err := h.useCase.Upsert(c.Request.Context(), certificateUC.UpsertCertificateInput{
		ID:              id,
		OwnerID:         ownerID,
		Title:           req.Title,
		Issuer:          req.Issuer,
		IssueDate:       issueDate,
		Description:     req.Description,
		CertificateLink: req.CertificateLink,
	})
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Certificate added successfully", "data": cert})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificate updated successfully", "data": cert})
}

func (h *CertificateHandler) DeleteCertificate(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	rawID := c.Query("certificateId")
	if rawID == "" {
		c.Error(apperror.NewInvalidInput("certificateId is required", nil))
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.Error(apperror.NewNotFound("certificate", rawID))
		return
	}

	deleted, err := h.useCase.Delete(c.Request.Context(), id, ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted successfully", "data": deleted})
}
