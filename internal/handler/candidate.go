// internal/handler/candidate.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/dgoss28/clear-match-ai/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	service         *service.CandidateService
	activityService *service.ActivityService
	tagService      *service.TagService
}

func NewCandidateHandler(candidateService *service.CandidateService, activityService *service.ActivityService, tagService *service.TagService) *CandidateHandler {
	return &CandidateHandler{
		service:         candidateService,
		activityService: activityService,
		tagService:      tagService,
	}
}

// filterFromQuery translates list query params into a CandidateFilter.
// Multi-selects arrive as repeated params (?relationship_type=client&...).
func filterFromQuery(r *http.Request) repository.CandidateFilter {
	q := r.URL.Query()

	filter := repository.CandidateFilter{
		Query:              q.Get("q"),
		FunctionalRoles:    q["functional_role"],
		LocationCategories: q["location_category"],
	}

	for _, rt := range q["relationship_type"] {
		filter.RelationshipTypes = append(filter.RelationshipTypes, model.RelationshipType(rt))
	}

	if raw := q.Get("is_active_looking"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.ActiveLooking = &v
		}
	}

	return filter
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	output, err := h.service.Search(r.Context(), p, service.SearchCandidatesInput{
		Filter: filterFromQuery(r),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, output)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := h.service.Get(r.Context(), p, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, candidate)
}

func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var input service.CandidateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	candidate, err := h.service.Create(r.Context(), p, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, candidate)
}

func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var input service.CandidateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	candidate, err := h.service.Update(r.Context(), p, id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, candidate)
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	if err := h.service.Delete(r.Context(), p, id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Candidate deleted"})
}

func (h *CandidateHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	activities, err := h.activityService.ListForCandidate(r.Context(), p, id, limit)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, activities)
}

func (h *CandidateHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var input service.ActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	activity, err := h.activityService.Record(r.Context(), p, id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, activity)
}

func (h *CandidateHandler) AssignTag(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	candidateID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}
	tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	if err := h.tagService.Assign(r.Context(), p, candidateID, tagID); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"message": "Tag assigned"})
}

func (h *CandidateHandler) UnassignTag(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	candidateID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}
	tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid tag ID")
		return
	}

	if err := h.tagService.Unassign(r.Context(), p, candidateID, tagID); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Tag removed"})
}
