package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/service"
	"github.com/MKhiriev/note-keeper/internal/utils"
	"github.com/MKhiriev/note-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidContent:      http.StatusBadRequest,
	service.ErrDuplicateEmail:      http.StatusBadRequest,
	service.ErrQuotaExceeded:       http.StatusBadRequest,
	service.ErrNoteNotFound:        http.StatusNotFound,
	service.ErrUnauthorized:        http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailer is implemented by validation errors that carry a message meant
// for the client.
type detailer interface {
	Detail() string
}

// detailFromError returns the client-facing description of err. Internal
// failures never leak their cause.
func detailFromError(err error) string {
	var d detailer
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return detailCouldNotValidate
	case errors.Is(err, service.ErrDuplicateEmail):
		return detailEmailRegistered
	case errors.Is(err, service.ErrQuotaExceeded):
		return fmt.Sprintf("Maximum number of notes (%d) reached", models.MaxNotesPerUser)
	case errors.Is(err, service.ErrNoteNotFound):
		return detailNoteNotFound
	case errors.As(err, &d):
		return d.Detail()
	case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrInvalidContent):
		return detailInvalidData
	default:
		return detailInternal
	}
}

// writeServiceError logs err and answers with the mapped status and detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Msg(msg)
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detailFromError(err), status)
}
