package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/service"
	"github.com/MKhiriev/note-keeper/internal/utils"
	"github.com/MKhiriev/note-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, detailInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	h.metrics.Registrations.Inc()
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

// login exchanges credentials for an access token. It accepts the OAuth2
// password form (username, password) as well as a JSON body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeLoginRequest(r)
	if err != nil {
		log.Debug().Err(err).Msg("malformed login request")
		utils.WriteError(w, detailInvalidData, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if errors.Is(err, service.ErrUnauthorized) {
		h.metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		log.Debug().Msg("login rejected")
		writeUnauthorized(w, detailIncorrectCredentials)
		return
	}
	if err != nil {
		h.metrics.LoginsTotal.WithLabelValues("error").Inc()
		writeServiceError(w, r, err, "login failed")
		return
	}

	h.metrics.LoginsTotal.WithLabelValues("success").Inc()
	utils.WriteJSON(w, models.NewAccessTokenResponse(token), http.StatusOK)
}

func decodeLoginRequest(r *http.Request) (models.LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return models.LoginRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return models.LoginRequest{}, err
	}
	return models.LoginRequest{
		Email:    r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user in authenticated request context")
		writeUnauthorized(w, detailCouldNotValidate)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
