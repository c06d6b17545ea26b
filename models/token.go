package models

import "time"

// TokenTypeBearer is the only token type issued by the service.
const TokenTypeBearer = "bearer"

// Token is a freshly issued access token together with the claims it carries.
//
// Tokens are not persisted: validity is derived from the signature and the
// expiration claim alone.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Subject is the normalized email of the user the token was issued for.
	Subject string `json:"-"`

	// ExpiresAt is the absolute expiration instant embedded in the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// AccessTokenResponse is the body returned by a successful login.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewAccessTokenResponse wraps t into the login response body.
func NewAccessTokenResponse(t Token) AccessTokenResponse {
	return AccessTokenResponse{
		AccessToken: t.SignedString,
		TokenType:   TokenTypeBearer,
	}
}
