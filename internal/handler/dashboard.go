package handler

import (
	"net/http"

	"github.com/dmarquezl/aurora-rrhh/internal/service"
)

// DashboardHandler serves the dashboard statistics.
type DashboardHandler struct {
	estadisticas *service.EstadisticasService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(estadisticas *service.EstadisticasService) *DashboardHandler {
	return &DashboardHandler{estadisticas: estadisticas}
}

// HandleEstadisticas returns the dashboard figures.
// GET /api/estadisticas
func (h *DashboardHandler) HandleEstadisticas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.estadisticas.Get())
}
