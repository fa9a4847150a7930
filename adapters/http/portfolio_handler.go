package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/portify/portify/internal/application/usecase/portfolio"
	"github.com/portify/portify/pkg/apperror"
)

// PortfolioHandler serves the public read side. Its responses keep the
// {success, ...} envelope the published portfolio pages consume, so errors
// are rendered inline here instead of going through ErrorMiddleware.
type PortfolioHandler struct {
	useCase *portfolioUC.PortfolioUseCase
}

func NewPortfolioHandler(uc *portfolioUC.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{useCase: uc}
}

func renderPortfolioError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message
		if errors.Is(err, apperror.ErrInternal) {
			message = "internal server error"
		}
		c.JSON(apperror.ToHTTPStatus(appErr), gin.H{"success": false, "message": message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
}

// GetPortfolio resolves ?slug= into the full public composite.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	p, err := h.useCase.Execute(c.Request.Context(), portfolioUC.GetPortfolioInput{
		PublicID: c.Query("slug"),
	})
	if err != nil {
		renderPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

// GetPortfolioByUsername is the POST variant the dashboard preview uses: it
// takes a display name in the body and slugifies it before lookup.
func (h *PortfolioHandler) GetPortfolioByUsername(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username is required"})
		return
	}

	p, err := h.useCase.Execute(c.Request.Context(), portfolioUC.GetPortfolioInput{
		PublicID: req.Username,
	})
	if err != nil {
		renderPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (h *PortfolioHandler) GetViews(c *gin.Context) {
	views, err := h.useCase.Views(c.Request.Context(), c.Param("slug"))
	if err != nil {
		renderPortfolioError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"views": views}})
}
