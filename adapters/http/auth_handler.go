package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authUC "github.com/portify/portify/internal/application/usecase/auth"
	"github.com/portify/portify/pkg/apperror"
)

type AuthHandler struct {
	signupUseCase      *authUC.SignupUseCase
	loginUseCase       *authUC.LoginUseCase
	userDetailsUseCase *authUC.UserDetailsUseCase
	tokenLifespan      time.Duration
}

func NewAuthHandler(
	signupUC *authUC.SignupUseCase,
	loginUC *authUC.LoginUseCase,
	userDetailsUC *authUC.UserDetailsUseCase,
	tokenLifespan time.Duration,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase:      signupUC,
		loginUseCase:       loginUC,
		userDetailsUseCase: userDetailsUC,
		tokenLifespan:      tokenLifespan,
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", false, true)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.signupUseCase.Execute(c.Request.Context(), authUC.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, output.AccessToken, int(h.tokenLifespan.Seconds()))
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "success": true})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("email and password are required", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, output.AccessToken, int(h.tokenLifespan.Seconds()))
	c.JSON(http.StatusOK, gin.H{"message": "User logged in successfully", "success": true})
}

// Logout only expires the cookie. Tokens are not tracked server side, so
// there is nothing else to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}

func (h *AuthHandler) UserDetails(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	u, err := h.userDetailsUseCase.Execute(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User details fetched successfully", "data": u})
}
