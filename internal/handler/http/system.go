package http

import (
	"net/http"

	"github.com/MKhiriev/note-keeper/internal/utils"
	"github.com/MKhiriev/note-keeper/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		utils.WriteJSON(w, models.HealthStatus{Status: models.HealthStatusUnhealthy}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthStatus{Status: models.HealthStatusHealthy}, http.StatusOK)
}
