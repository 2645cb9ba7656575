// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Profile-related errors
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrNoOrganization     = errors.New("profile has no organization")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Candidate-related errors
	ErrCandidateNotFound       = errors.New("candidate not found")
	ErrInvalidRelationshipType = errors.New("invalid relationship type")

	// Tag-related errors
	ErrTagNotFound        = errors.New("tag not found")
	ErrTagAlreadyExists   = errors.New("tag already exists")
	ErrTagInUse           = errors.New("tag is still assigned to candidates")
	ErrTagAlreadyAssigned = errors.New("tag already assigned to candidate")

	// Template-related errors
	ErrTemplateNotFound = errors.New("template not found")

	// Outreach-related errors
	ErrMissingRecipient = errors.New("candidate has no email address")
)
