// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/middleware"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// principal pulls the authenticated principal set by the auth middleware.
// The false path only happens on a routing mistake (handler mounted
// outside the protected group).
func principal(w http.ResponseWriter, r *http.Request) (authz.Principal, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return authz.Principal{}, false
	}
	return p, true
}

// handleError maps domain errors to HTTP responses. Scope misses arrive
// here as not-found, never as a distinct authorization error.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCandidateNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRelationshipType),
		errors.Is(err, domain.ErrMissingRecipient):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrTagInUse),
		errors.Is(err, domain.ErrTagAlreadyExists),
		errors.Is(err, domain.ErrTagAlreadyAssigned),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNoOrganization),
		errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
