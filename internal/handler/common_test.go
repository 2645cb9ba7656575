package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"candidate not found", domain.ErrCandidateNotFound, http.StatusNotFound},
		{"template not found", domain.ErrTemplateNotFound, http.StatusNotFound},
		{"tag not found", domain.ErrTagNotFound, http.StatusNotFound},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"invalid relationship type", domain.ErrInvalidRelationshipType, http.StatusBadRequest},
		{"missing recipient", domain.ErrMissingRecipient, http.StatusBadRequest},
		{"tag in use", domain.ErrTagInUse, http.StatusConflict},
		{"duplicate tag name", domain.ErrTagAlreadyExists, http.StatusConflict},
		{"tag already assigned", domain.ErrTagAlreadyAssigned, http.StatusConflict},
		{"duplicate email", domain.ErrEmailAlreadyExists, http.StatusConflict},
		{"no organization", domain.ErrNoOrganization, http.StatusForbidden},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleError(w, tc.err)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandleErrorWrapped(t *testing.T) {
	// Services wrap sentinels with context; the mapping must still hold.
	w := httptest.NewRecorder()
	handleError(w, errors.Join(errors.New("creating tag"), domain.ErrTagAlreadyExists))
	assert.Equal(t, http.StatusConflict, w.Code)
}
