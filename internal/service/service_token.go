package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/utils"
	"github.com/MKhiriev/note-keeper/models"
)

// tokenService is the JWT implementation of [TokenService].
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// algorithm is the only JWS "alg" accepted (HS256, HS384 or HS512).
	algorithm string

	// now is the clock used for issuing and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] signing with cfg.SecretKey and
// cfg.Algorithm.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:   cfg.SecretKey,
		algorithm: cfg.Algorithm,
		now:       time.Now,
		logger:    logger,
	}
}

// Issue implements [TokenService].
func (s *tokenService) Issue(subject string, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(subject, s.now(), ttl, s.algorithm, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate implements [TokenService].
func (s *tokenService) Validate(tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.algorithm, s.now())
	if err != nil {
		return "", classifyTokenError(err)
	}

	return token.Subject, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
