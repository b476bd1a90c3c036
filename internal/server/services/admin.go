package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/brandstack/cardlink/internal/common"
	"github.com/brandstack/cardlink/internal/server/auth"
	"github.com/brandstack/cardlink/internal/server/config"
)

// AdminService authenticates the operator and verifies the tokens guarding
// the card-management endpoints. An empty password hash disables login
// entirely.
type AdminService struct {
	passwordHash  []byte
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewAdminService(cfg *config.Config) *AdminService {
	return &AdminService{
		passwordHash:  []byte(cfg.AdminPasswordHash),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// Login verifies the password against the configured bcrypt hash and mints
// an access token.
func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	if len(s.passwordHash) == 0 {
		return "", common.ErrorUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", common.ErrorUnauthorized
	}
	return auth.GenerateToken("admin", s.jwtSecret, s.tokenValidity)
}

// VerifyToken checks an access token minted by Login.
func (s *AdminService) VerifyToken(tokenString string) error {
	if _, err := auth.GetSubjectFromToken(tokenString, s.jwtSecret); err != nil {
		return common.ErrInvalidToken
	}
	return nil
}
