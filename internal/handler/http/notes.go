package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/service"
	"github.com/MKhiriev/note-keeper/internal/utils"
	"github.com/MKhiriev/note-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	req := models.ListNotesRequest{UserID: user.ID, Limit: models.DefaultNotesLimit}

	var err error
	query := r.URL.Query()
	if req.Skip, err = queryInt(query.Get("skip"), req.Skip); err != nil {
		utils.WriteError(w, "Query parameter 'skip' must be an integer", http.StatusBadRequest)
		return
	}
	if req.Limit, err = queryInt(query.Get("limit"), req.Limit); err != nil {
		utils.WriteError(w, "Query parameter 'limit' must be an integer", http.StatusBadRequest)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "listing notes failed")
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())
	log := logger.FromRequest(r)

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, detailInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), models.Note{UserID: user.ID, Content: req.Content})
	if errors.Is(err, service.ErrQuotaExceeded) {
		h.metrics.QuotaRejected.Inc()
	}
	if err != nil {
		writeServiceError(w, r, err, "note creation failed")
		return
	}

	h.metrics.NotesCreated.Inc()
	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	noteID, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
	if err != nil {
		// nothing can be stored under a non-numeric id
		utils.WriteError(w, detailNoteNotFound, http.StatusNotFound)
		return
	}

	err = h.services.NoteService.DeleteNote(r.Context(), models.DeleteNoteRequest{UserID: user.ID, NoteID: noteID})
	if err != nil {
		writeServiceError(w, r, err, "note deletion failed")
		return
	}

	h.metrics.NotesDeleted.Inc()
	utils.WriteJSON(w, models.MessageResponse{Message: messageNoteDeleted}, http.StatusOK)
}

// queryInt parses raw as a base-10 integer, returning def for an empty value.
func queryInt(raw string, def int64) (int64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
