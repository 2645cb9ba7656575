// Package client is a small Go client for the recruiting CRM HTTP API.
// It is self-contained: wire types are declared here rather than shared
// with the server so the package can be vendored independently.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Config represents the configuration for the CRM client
type Config struct {
	// BaseURL is the base URL of the CRM service
	BaseURL string
	// Token is the bearer token obtained from Login or Signup
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the CRM service client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new CRM client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.config.Token = token
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// Profile represents an authenticated user profile
type Profile struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	OrganizationID *string   `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AuthResponse is returned by Signup and Login
type AuthResponse struct {
	Profile *Profile `json:"profile"`
	Token   string   `json:"token"`
}

// SignupRequest creates a new organization with its first admin profile
type SignupRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name,omitempty"`
	OrganizationName string `json:"organization_name"`
}

// Signup registers a new tenant and stores the returned token on the client
func (c *Client) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Email == "" || req.Password == "" || req.OrganizationName == "" {
		return nil, errors.New("email, password, and organization_name are required")
	}

	var resp AuthResponse
	if err := c.post(ctx, c.config.BaseURL+"/api/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	c.config.Token = resp.Token
	return &resp, nil
}

// LoginRequest authenticates an existing profile
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and stores the returned token on the client
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	var resp AuthResponse
	if err := c.post(ctx, c.config.BaseURL+"/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.config.Token = resp.Token
	return &resp, nil
}

// Organization represents the caller's tenant
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Me is the current-profile endpoint response
type Me struct {
	Profile      *Profile      `json:"profile"`
	Organization *Organization `json:"organization,omitempty"`
}

// Me fetches the caller's profile and organization
func (c *Client) Me(ctx context.Context) (*Me, error) {
	var resp Me
	if err := c.get(ctx, c.config.BaseURL+"/api/me", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Candidate represents a candidate record
type Candidate struct {
	ID               string                 `json:"id"`
	OrganizationID   string                 `json:"organization_id"`
	FirstName        string                 `json:"first_name"`
	LastName         string                 `json:"last_name"`
	Email            string                 `json:"email"`
	Phone            string                 `json:"phone"`
	LinkedinURL      string                 `json:"linkedin_url"`
	CurrentCompany   string                 `json:"current_company"`
	CurrentTitle     string                 `json:"current_title"`
	PastCompanies    []string               `json:"past_companies"`
	PastTitles       []string               `json:"past_titles"`
	RelationshipType string                 `json:"relationship_type"`
	FunctionalRole   string                 `json:"functional_role"`
	LocationCategory string                 `json:"location_category"`
	IsActiveLooking  bool                   `json:"is_active_looking"`
	Compensation     map[string]interface{} `json:"compensation"`
	Visa             map[string]interface{} `json:"visa"`
	Notes            string                 `json:"notes"`
	Tags             []Tag                  `json:"tags,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// CandidateRequest is the payload for creating or updating a candidate
type CandidateRequest struct {
	FirstName        string                 `json:"first_name"`
	LastName         string                 `json:"last_name,omitempty"`
	Email            string                 `json:"email,omitempty"`
	Phone            string                 `json:"phone,omitempty"`
	LinkedinURL      string                 `json:"linkedin_url,omitempty"`
	CurrentCompany   string                 `json:"current_company,omitempty"`
	CurrentTitle     string                 `json:"current_title,omitempty"`
	PastCompanies    []string               `json:"past_companies,omitempty"`
	PastTitles       []string               `json:"past_titles,omitempty"`
	RelationshipType string                 `json:"relationship_type,omitempty"`
	FunctionalRole   string                 `json:"functional_role,omitempty"`
	LocationCategory string                 `json:"location_category,omitempty"`
	IsActiveLooking  bool                   `json:"is_active_looking"`
	Compensation     map[string]interface{} `json:"compensation,omitempty"`
	Visa             map[string]interface{} `json:"visa,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
}

// CandidateSearch mirrors the list endpoint's query parameters. Zero values
// are omitted from the request.
type CandidateSearch struct {
	Query              string
	RelationshipTypes  []string
	FunctionalRoles    []string
	LocationCategories []string
	ActiveLooking      *bool
	Offset             int
	Limit              int
}

func (s *CandidateSearch) encode() string {
	if s == nil {
		return ""
	}
	q := url.Values{}
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	for _, v := range s.RelationshipTypes {
		q.Add("relationship_type", v)
	}
	for _, v := range s.FunctionalRoles {
		q.Add("functional_role", v)
	}
	for _, v := range s.LocationCategories {
		q.Add("location_category", v)
	}
	if s.ActiveLooking != nil {
		q.Set("is_active_looking", strconv.FormatBool(*s.ActiveLooking))
	}
	if s.Offset > 0 {
		q.Set("offset", strconv.Itoa(s.Offset))
	}
	if s.Limit > 0 {
		q.Set("limit", strconv.Itoa(s.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// CandidateList is the list endpoint response
type CandidateList struct {
	Candidates []*Candidate `json:"candidates"`
	Total      int64        `json:"total"`
}

// ListCandidates searches candidates with the given filters
func (c *Client) ListCandidates(ctx context.Context, search *CandidateSearch) (*CandidateList, error) {
	var resp CandidateList
	if err := c.get(ctx, c.config.BaseURL+"/api/candidates"+search.encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCandidate fetches a single candidate by id
func (c *Client) GetCandidate(ctx context.Context, id string) (*Candidate, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	var resp Candidate
	if err := c.get(ctx, c.config.BaseURL+"/api/candidates/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateCandidate creates a new candidate
func (c *Client) CreateCandidate(ctx context.Context, req *CandidateRequest) (*Candidate, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.FirstName == "" {
		return nil, errors.New("first_name is required")
	}
	var resp Candidate
	if err := c.post(ctx, c.config.BaseURL+"/api/candidates", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCandidate replaces a candidate's fields
func (c *Client) UpdateCandidate(ctx context.Context, id string, req *CandidateRequest) (*Candidate, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	var resp Candidate
	if err := c.put(ctx, c.config.BaseURL+"/api/candidates/"+id, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCandidate removes a candidate
func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id is required")
	}
	return c.delete(ctx, c.config.BaseURL+"/api/candidates/"+id)
}

// Activity represents an immutable activity log entry
type Activity struct {
	ID             string                 `json:"id"`
	OrganizationID string                 `json:"organization_id"`
	CandidateID    string                 `json:"candidate_id"`
	ActorID        string                 `json:"actor_id"`
	Type           string                 `json:"type"`
	Metadata       map[string]interface{} `json:"metadata"`
	CreatedAt      time.Time              `json:"created_at"`
}

// ActivityRequest records an activity against a candidate
type ActivityRequest struct {
	Type     string                 `json:"type"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ListActivities fetches the activity log for a candidate, newest first
func (c *Client) ListActivities(ctx context.Context, candidateID string) ([]*Activity, error) {
	if candidateID == "" {
		return nil, errors.New("candidateID is required")
	}
	var resp []*Activity
	if err := c.get(ctx, c.config.BaseURL+"/api/candidates/"+candidateID+"/activities", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RecordActivity appends an activity to a candidate's log
func (c *Client) RecordActivity(ctx context.Context, candidateID string, req *ActivityRequest) (*Activity, error) {
	if candidateID == "" {
		return nil, errors.New("candidateID is required")
	}
	if req == nil || req.Type == "" {
		return nil, errors.New("activity type is required")
	}
	var resp Activity
	if err := c.post(ctx, c.config.BaseURL+"/api/candidates/"+candidateID+"/activities", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Tag represents an organization tag
type Tag struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TagRequest creates a tag
type TagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// ListTags fetches all tags in the caller's organization
func (c *Client) ListTags(ctx context.Context) ([]*Tag, error) {
	var resp []*Tag
	if err := c.get(ctx, c.config.BaseURL+"/api/tags", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateTag creates a new tag
func (c *Client) CreateTag(ctx context.Context, req *TagRequest) (*Tag, error) {
	if req == nil || req.Name == "" {
		return nil, errors.New("name is required")
	}
	var resp Tag
	if err := c.post(ctx, c.config.BaseURL+"/api/tags", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTag removes a tag. Fails with a conflict if the tag is still
// assigned to any candidate.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id is required")
	}
	return c.delete(ctx, c.config.BaseURL+"/api/tags/"+id)
}

// AssignTag attaches a tag to a candidate
func (c *Client) AssignTag(ctx context.Context, candidateID, tagID string) error {
	if candidateID == "" || tagID == "" {
		return errors.New("candidateID and tagID are required")
	}
	var resp map[string]string
	return c.post(ctx, c.config.BaseURL+"/api/candidates/"+candidateID+"/tags/"+tagID, nil, &resp)
}

// UnassignTag detaches a tag from a candidate
func (c *Client) UnassignTag(ctx context.Context, candidateID, tagID string) error {
	if candidateID == "" || tagID == "" {
		return errors.New("candidateID and tagID are required")
	}
	return c.delete(ctx, c.config.BaseURL+"/api/candidates/"+candidateID+"/tags/"+tagID)
}

// Template represents an outreach template
type Template struct {
	ID             string                 `json:"id"`
	OrganizationID string                 `json:"organization_id"`
	Name           string                 `json:"name"`
	Type           string                 `json:"type"`
	Subject        string                 `json:"subject"`
	Content        string                 `json:"content"`
	Variables      map[string]interface{} `json:"variables"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// TemplateRequest creates or updates a template
type TemplateRequest struct {
	Name      string                 `json:"name"`
	Type      string                 `json:"type,omitempty"`
	Subject   string                 `json:"subject,omitempty"`
	Content   string                 `json:"content"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// ListTemplates fetches all templates in the caller's organization
func (c *Client) ListTemplates(ctx context.Context) ([]*Template, error) {
	var resp []*Template
	if err := c.get(ctx, c.config.BaseURL+"/api/templates", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTemplate fetches a single template by id
func (c *Client) GetTemplate(ctx context.Context, id string) (*Template, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	var resp Template
	if err := c.get(ctx, c.config.BaseURL+"/api/templates/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTemplate creates a new template
func (c *Client) CreateTemplate(ctx context.Context, req *TemplateRequest) (*Template, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Name == "" || req.Content == "" {
		return nil, errors.New("name and content are required")
	}
	var resp Template
	if err := c.post(ctx, c.config.BaseURL+"/api/templates", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTemplate replaces a template's fields
func (c *Client) UpdateTemplate(ctx context.Context, id string, req *TemplateRequest) (*Template, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	var resp Template
	if err := c.put(ctx, c.config.BaseURL+"/api/templates/"+id, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DuplicateTemplate copies a template under a new id and suffixed name
func (c *Client) DuplicateTemplate(ctx context.Context, id string) (*Template, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}
	var resp Template
	if err := c.post(ctx, c.config.BaseURL+"/api/templates/"+id+"/duplicate", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTemplate removes a template
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id is required")
	}
	return c.delete(ctx, c.config.BaseURL+"/api/templates/"+id)
}

// Dashboard is the overview endpoint response
type Dashboard struct {
	Stats struct {
		TotalCandidates int64 `json:"total_candidates"`
		ActiveLooking   int64 `json:"active_looking"`
		Clients         int64 `json:"clients"`
	} `json:"stats"`
	RecentActivities   []*Activity `json:"recent_activities"`
	RecommendedActions []struct {
		CandidateID   string `json:"candidate_id"`
		CandidateName string `json:"candidate_name"`
		Reason        string `json:"reason"`
		Priority      string `json:"priority"`
	} `json:"recommended_actions"`
}

// GetDashboard fetches the organization overview
func (c *Client) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var resp Dashboard
	if err := c.get(ctx, c.config.BaseURL+"/api/dashboard", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendOutreachRequest renders a template against a candidate and delivers it
type SendOutreachRequest struct {
	TemplateID  string            `json:"template_id"`
	CandidateID string            `json:"candidate_id"`
	Values      map[string]string `json:"values,omitempty"`
}

// SendOutreachResponse carries the rendered message as sent
type SendOutreachResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendOutreach sends a rendered template to a candidate
func (c *Client) SendOutreach(ctx context.Context, req *SendOutreachRequest) (*SendOutreachResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.TemplateID == "" || req.CandidateID == "" {
		return nil, errors.New("template_id and candidate_id are required")
	}
	var resp SendOutreachResponse
	if err := c.post(ctx, c.config.BaseURL+"/api/outreach/send", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post performs a POST request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, req, resp)
}

// put performs a PUT request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) put(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	return c.do(ctx, http.MethodPut, endpoint, req, resp)
}

// get performs a GET request to the specified endpoint and unmarshals the response into the specified response object
func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, resp)
}

// delete performs a DELETE request to the specified endpoint
func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body *bytes.Buffer
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(reqBody)
	} else {
		body = bytes.NewBuffer(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.config.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil {
			// If we can't decode the error, create a generic one
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}
		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	if resp == nil {
		return nil
	}
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
