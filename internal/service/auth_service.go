package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/planet-detroit/civic-action-api/internal/models"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
)

// AuthServiceConfig carries the session settings.
type AuthServiceConfig struct {
	Secret             string
	EditorPasswordHash string
	TTL                time.Duration
}

// AuthService verifies the shared editor password and issues session
// cookies. There is one credential for the whole newsroom, so the
// session carries no per-user identity.
type AuthService struct {
	cfg    AuthServiceConfig
	logger *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(cfg AuthServiceConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &AuthService{cfg: cfg, logger: logger}
}

// Login checks the password against the configured bcrypt hash and
// returns a signed session token with its expiry.
func (s *AuthService) Login(password string) (string, time.Time, error) {
	if password == "" {
		return "", time.Time{}, appErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.EditorPasswordHash), []byte(password)); err != nil {
		s.logger.Warn("failed editor login attempt")
		return "", time.Time{}, appErrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.TTL)
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "editor",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session token")
	}
	return token, expiresAt, nil
}

// Verify parses and validates a session token.
func (s *AuthService) Verify(token string) (*models.SessionClaims, error) {
	if token == "" {
		return nil, appErrors.ErrUnauthorized
	}
	claims := &models.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, appErrors.ErrUnauthorized
	}
	return claims, nil
}
