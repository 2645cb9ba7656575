// internal/handler/outreach.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgoss28/clear-match-ai/internal/outreach"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type OutreachHandler struct {
	service *outreach.Service
}

func NewOutreachHandler(outreachService *outreach.Service) *OutreachHandler {
	return &OutreachHandler{service: outreachService}
}

// Send renders a template against a candidate and delivers it.
func (h *OutreachHandler) Send(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var input outreach.SendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.service.Send(r.Context(), p, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "outreach send failed",
			"error", err,
			"template_id", input.TemplateID,
			"candidate_id", input.CandidateID,
			"requestID", chmw.GetReqID(r.Context()))
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, output)
}
