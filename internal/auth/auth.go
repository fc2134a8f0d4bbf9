package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	supabase "github.com/nedpals/supabase-go"
	"go.uber.org/zap"

	"github.com/careerspark/jobspark-backend/internal/models"
)

// Gin context keys set by RequireUser.
const (
	ContextUserKey  = "auth_user"
	ContextTokenKey = "auth_token"
)

// Service wraps the external auth provider. Sessions are minted and validated
// by Supabase; this service only observes them.
type Service struct {
	client *supabase.Client
	logger *zap.Logger
}

func NewService(client *supabase.Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	details, err := s.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	return &models.Session{
		AccessToken:  details.AccessToken,
		RefreshToken: details.RefreshToken,
		User: models.User{
			ID:    details.User.ID,
			Email: details.User.Email,
		},
	}, nil
}

func (s *Service) SignOut(ctx context.Context, accessToken string) error {
	if err := s.client.Auth.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (s *Service) UserFromToken(ctx context.Context, accessToken string) (*models.User, error) {
	user, err := s.client.Auth.User(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}
	return &models.User{ID: user.ID, Email: user.Email}, nil
}

// RequireUser authenticates the bearer token against the auth provider and
// injects the resolved user into the gin context.
func (s *Service) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			return
		}

		user, err := s.UserFromToken(c.Request.Context(), token)
		if err != nil {
			s.logger.Debug("token validation failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// UserFromContext returns the authenticated user set by RequireUser.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// TokenFromContext returns the raw access token set by RequireUser.
func TokenFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextTokenKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
