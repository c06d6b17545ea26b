package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/utils"
	"github.com/MKhiriev/note-keeper/models"
)

const apiPrefix = "/api/v1"

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] bound to cfg.ServerURL. A token in cfg is used for
// authenticated calls until SetToken replaces it.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// authorized starts a request carrying the stored bearer token.
func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token), nil
}

func (h *httpServerAdapter) Info(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		SetError(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}

	return status, mapHTTPError(resp)
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post(apiPrefix + "/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. The credentials are sent as the OAuth2
// password form, with the email in the username field.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AccessTokenResponse, error) {
	var token models.AccessTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": req.Email,
			"password": req.Password,
		}).
		SetResult(&token).
		Post(apiPrefix + "/auth/login")
	if err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessTokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("email", req.Email).Msg("logged in")

	return token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	req, err := h.authorized(ctx)
	if err != nil {
		return models.User{}, err
	}
	resp, err := req.SetResult(&user).Get(apiPrefix + "/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context, skip, limit int64) ([]models.Note, error) {
	notes := []models.Note{}

	req, err := h.authorized(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.
		SetQueryParam("skip", strconv.FormatInt(skip, 10)).
		SetQueryParam("limit", strconv.FormatInt(limit, 10)).
		SetResult(&notes).
		Get(apiPrefix + "/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, content string) (models.Note, error) {
	var note models.Note

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Note{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateNoteRequest{Content: content}).
		SetResult(&note).
		Post(apiPrefix + "/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetPathParam("note_id", strconv.FormatInt(noteID, 10)).
		Delete(apiPrefix + "/notes/{note_id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}
