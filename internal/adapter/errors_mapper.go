package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/note-keeper/models"
)

var statusErrorMap = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	kind, ok := statusErrorMap[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Detail:     detailFromBody(resp.Body(), resp.StatusCode()),
		kind:       kind,
	}
}

func detailFromBody(body []byte, statusCode int) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}

	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}
	return http.StatusText(statusCode)
}
