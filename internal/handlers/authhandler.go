package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerspark/jobspark-backend/internal/auth"
	"github.com/careerspark/jobspark-backend/internal/dtos"
)

type AuthHandler struct {
	Auth   *auth.Service
	Logger *zap.Logger
}

func NewAuthHandler(authService *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: authService, Logger: logger}
}

// Login is the POST /auth/login endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	session, err := h.Auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Logger.Info("login rejected", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Logout is the POST /auth/logout endpoint. The upstream sign-out is
// best-effort; the client drops its token either way.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.Auth.SignOut(c.Request.Context(), token); err != nil {
		h.Logger.Warn("upstream sign-out failed", zap.Error(err))
	}

	c.Status(http.StatusNoContent)
}

// Me is the GET /auth/me endpoint.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, user)
}
