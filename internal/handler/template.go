// internal/handler/template.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dgoss28/clear-match-ai/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	service *service.TemplateService
}

func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: templateService}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	templates, err := h.service.List(r.Context(), p)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, templates)
}

func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	template, err := h.service.Get(r.Context(), p, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, template)
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var input service.TemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	template, err := h.service.Create(r.Context(), p, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, template)
}

func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	var input service.TemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	template, err := h.service.Update(r.Context(), p, id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, template)
}

// Duplicate creates a copy of an existing template under a new id.
func (h *TemplateHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	duplicate, err := h.service.Duplicate(r.Context(), p, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, duplicate)
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := h.service.Delete(r.Context(), p, id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Template deleted"})
}
