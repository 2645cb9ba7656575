// internal/handler/dashboard.go
package handler

import (
	"net/http"

	"github.com/dgoss28/clear-match-ai/internal/service"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Overview returns org-wide stats, recent activity and recommended actions.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	output, err := h.service.Overview(r.Context(), p)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, output)
}
