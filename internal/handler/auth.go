// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	profileService *service.ProfileService
}

func NewAuthHandler(profileService *service.ProfileService) *AuthHandler {
	return &AuthHandler{profileService: profileService}
}

type AuthResponse struct {
	Profile *model.Profile `json:"profile"`
	Token   string         `json:"token"`
}

// SignupHandler creates a new organization and its first admin profile.
func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.profileService.Signup(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "signup failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, AuthResponse{Profile: output.Profile, Token: output.Token})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.profileService.Login(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AuthResponse{Profile: output.Profile, Token: output.Token})
}

// MeHandler returns the caller's profile and organization.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	me, err := h.profileService.Get(r.Context(), p)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, me)
}

// UpdateMeHandler applies settings changes to the caller's profile.
func (h *AuthHandler) UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var input service.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	profile, err := h.profileService.UpdateSettings(r.Context(), p, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}
