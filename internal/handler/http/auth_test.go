package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/note-keeper/internal/service"
	"github.com/MKhiriev/note-keeper/internal/validators"
	"github.com/MKhiriev/note-keeper/models"
)

var testUser = models.User{
	ID:        1,
	Email:     "alice@example.com",
	FullName:  "Alice",
	IsActive:  true,
	CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

const testUserJSON = `{"id":1,"email":"alice@example.com","full_name":"Alice","is_active":true,"created_at":"2026-01-02T03:04:05Z"}`

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"email":"Alice@Example.com","password":"secret1","full_name":"Alice"}`,
			callsSvc:   true,
			wantStatus: http.StatusOK,
			wantBody:   testUserJSON,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"alice@example.com","password":"secret1"}`,
			serviceErr: service.ErrDuplicateEmail,
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Email already registered"}`,
		},
		{
			name:       "validation failure carries field detail",
			body:       `{"email":"alice@example.com","password":"123"}`,
			serviceErr: errors.Join(service.ErrInvalidDataProvided, &validators.FieldError{Field: "password", Rule: "min", Param: "6"}),
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Field 'password' must be at least 6 characters long"}`,
		},
		{
			name:       "store failure",
			body:       `{"email":"alice@example.com","password":"secret1"}`,
			serviceErr: errors.New("connection refused"),
			callsSvc:   true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal server error"}`,
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Invalid JSON was passed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.callsSvc {
				user := testUser
				if tt.serviceErr != nil {
					user = models.User{}
				}
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(user, tt.serviceErr)
			}

			rec := serve(h, jsonRequest(http.MethodPost, "/api/v1/auth/register", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRegister_PassesDecodedRequest(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().
		RegisterUser(gomock.Any(), models.RegisterRequest{Email: "bob@example.com", Password: "secret1", FullName: "Bob"}).
		Return(models.User{ID: 2, Email: "bob@example.com"}, nil)

	rec := serve(h, jsonRequest(http.MethodPost, "/api/v1/auth/register", `{"email":"bob@example.com","password":"secret1","full_name":"Bob"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.Registrations))
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLogin_Form(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"}).
		Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	rec := serve(h, formRequest(url.Values{"username": {"alice@example.com"}, "password": {"secret1"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"signed.jwt.token","token_type":"bearer"}`, rec.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.LoginsTotal.WithLabelValues("success")))
}

func TestLogin_JSON(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"}).
		Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	rec := serve(h, jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com","password":"secret1"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"signed.jwt.token","token_type":"bearer"}`, rec.Body.String())
}

func TestLogin_Rejected(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrUnauthorized)

	rec := serve(h, formRequest(url.Values{"username": {"alice@example.com"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Incorrect email or password"}`, rec.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.LoginsTotal.WithLabelValues("rejected")))
}

func TestLogin_StoreFailure(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, errors.New("db down"))

	rec := serve(h, formRequest(url.Values{"username": {"alice@example.com"}, "password": {"secret1"}}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.LoginsTotal.WithLabelValues("error")))
}

func TestLogin_MalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, jsonRequest(http.MethodPost, "/api/v1/auth/login", `not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid data provided"}`, rec.Body.String())
}

// authorized adds a valid bearer token to req and makes the auth mock
// resolve it into user.
func authorized(m serviceMocks, req *http.Request, user models.User) *http.Request {
	req.Header.Set("Authorization", "Bearer good-token")
	m.auth.EXPECT().Authenticate(gomock.Any(), "good-token").Return(user, nil)
	return req
}

func TestMe(t *testing.T) {
	h, m := newTestHandler(t)

	rec := serve(h, authorized(m, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil), testUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, testUserJSON, rec.Body.String())
}

func TestMe_WithoutUserInContext(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
