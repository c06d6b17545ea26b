package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/utils"
)

// bearerScheme is the only accepted authorization scheme. It is matched
// case-insensitively.
const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it into an
// active user via [service.AuthService.Authenticate] and stores that user in
// the request context with [utils.WithUser] before delegating to the next
// handler.
//
// Every failure (missing or malformed header, invalid or expired token,
// unknown or inactive user) is answered identically: 401 with
// {"detail":"Could not validate credentials"} and "WWW-Authenticate: Bearer".
// The reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request rejected")
			writeUnauthorized(w, detailCouldNotValidate)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, err, "authentication failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] if the header is empty.
//   - [ErrInvalidAuthorizationHeader] if the scheme is not Bearer or the
//     token part is missing entirely.
//   - [ErrEmptyToken] if the token part is blank.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", bearerScheme)
	utils.WriteError(w, detail, http.StatusUnauthorized)
}
