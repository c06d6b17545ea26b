package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnsupportedSigningMethod is returned when the configured algorithm is not
// one of the HMAC family (HS256, HS384, HS512).
var ErrUnsupportedSigningMethod = errors.New("unsupported JWT signing method")

// SigningMethod resolves an algorithm name to an HMAC [jwt.SigningMethod].
func SigningMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSigningMethod, alg)
	}
}

// GenerateJWTToken creates a signed HMAC JWT token for subject.
//
// The token includes the following standard claims:
//   - Subject   (sub): the normalized email of the user
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// Claims are encoded with one-second precision, so ExpiresAt on the returned
// token is truncated accordingly.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("test@test.com", time.Now(), 24*time.Hour, "HS256", "secret")
func GenerateJWTToken(subject string, issuedAt time.Time, tokenDuration time.Duration, alg, signKey string) (models.Token, error) {
	if subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := SigningMethod(alg)
	if err != nil {
		return models.Token{}, err
	}

	expiresAt := jwt.NewNumericDate(issuedAt.Add(tokenDuration))
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: expiresAt,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	tokenString, err := jwt.NewWithClaims(method, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Subject:      subject,
		ExpiresAt:    expiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - Algorithm check: only alg is accepted, "none" and other families are rejected
//   - Signature verification using signKey
//   - Expiration (exp) claim presence and check against now
//
// Errors wrap the jwt sentinels ([jwt.ErrTokenMalformed],
// [jwt.ErrTokenSignatureInvalid], [jwt.ErrTokenExpired], ...), so callers can
// classify them with errors.Is.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "HS256", time.Now())
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, signKey, alg string, now time.Time) (models.Token, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{alg}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", jwt.ErrTokenInvalidClaims)
	}

	return models.Token{
		SignedString: tokenString,
		Subject:      claims.Subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}
