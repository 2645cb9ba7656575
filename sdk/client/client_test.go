package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("Expected /api/auth/login path, got %s", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if req.Email != "pat@example.com" || req.Password != "correct-horse-battery" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		resp := AuthResponse{
			Profile: &Profile{ID: "p1", Email: req.Email, Role: "recruiter"},
			Token:   "test-token",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	resp, err := client.Login(context.Background(), &LoginRequest{
		Email:    "pat@example.com",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token != "test-token" {
		t.Errorf("Expected test-token, got %s", resp.Token)
	}
	if client.config.Token != "test-token" {
		t.Error("Expected token to be stored on the client")
	}

	// Wrong credentials surface as an APIError
	_, err = client.Login(context.Background(), &LoginRequest{
		Email:    "pat@example.com",
		Password: "wrong",
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", apiErr.StatusCode)
	}

	// Missing fields fail before any request is sent
	if _, err := client.Login(context.Background(), &LoginRequest{Email: "pat@example.com"}); err == nil {
		t.Error("Expected error for missing password")
	}
	if _, err := client.Login(context.Background(), nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

func TestListCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/api/candidates" {
			t.Errorf("Expected /api/candidates path, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got %q", got)
		}

		q := r.URL.Query()
		if q.Get("q") != "doe" {
			t.Errorf("Expected q=doe, got %q", q.Get("q"))
		}
		if got := q["relationship_type"]; len(got) != 2 || got[0] != "client" || got[1] != "both" {
			t.Errorf("Unexpected relationship_type params: %v", got)
		}
		if q.Get("is_active_looking") != "true" {
			t.Errorf("Expected is_active_looking=true, got %q", q.Get("is_active_looking"))
		}
		if q.Get("limit") != "25" {
			t.Errorf("Expected limit=25, got %q", q.Get("limit"))
		}

		resp := CandidateList{
			Candidates: []*Candidate{{ID: "c1", FirstName: "Jane", LastName: "Doe"}},
			Total:      1,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "test-token"})

	active := true
	resp, err := client.ListCandidates(context.Background(), &CandidateSearch{
		Query:             "doe",
		RelationshipTypes: []string{"client", "both"},
		ActiveLooking:     &active,
		Limit:             25,
	})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if resp.Total != 1 || len(resp.Candidates) != 1 {
		t.Fatalf("Unexpected response: %+v", resp)
	}
	if resp.Candidates[0].FirstName != "Jane" {
		t.Errorf("Expected Jane, got %s", resp.Candidates[0].FirstName)
	}
}

func TestListCandidatesNilSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("Expected no query string, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(CandidateList{})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	if _, err := client.ListCandidates(context.Background(), nil); err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
}

func TestDuplicateTemplate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/templates/t1/duplicate" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		resp := Template{ID: "t2", Name: "Intro (copy)", Content: "Hi {first_name}"}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	resp, err := client.DuplicateTemplate(context.Background(), "t1")
	if err != nil {
		t.Fatalf("DuplicateTemplate failed: %v", err)
	}
	if resp.ID != "t2" || resp.Name != "Intro (copy)" {
		t.Errorf("Unexpected response: %+v", resp)
	}

	if _, err := client.DuplicateTemplate(context.Background(), ""); err == nil {
		t.Error("Expected error for empty id")
	}
}

func TestDeleteTagConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE request, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "tag is still assigned to candidates"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	err := client.DeleteTag(context.Background(), "t1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("Expected 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "tag is still assigned to candidates" {
		t.Errorf("Unexpected message: %s", apiErr.Message)
	}
}

func TestSendOutreach(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/outreach/send" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		var req SendOutreachRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if req.Values["role"] != "Staff Engineer" {
			t.Errorf("Expected custom value to pass through, got %v", req.Values)
		}

		resp := SendOutreachResponse{Subject: "Hi Jane", Body: "About the Staff Engineer role"}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	resp, err := client.SendOutreach(context.Background(), &SendOutreachRequest{
		TemplateID:  "t1",
		CandidateID: "c1",
		Values:      map[string]string{"role": "Staff Engineer"},
	})
	if err != nil {
		t.Fatalf("SendOutreach failed: %v", err)
	}
	if resp.Subject != "Hi Jane" {
		t.Errorf("Unexpected subject: %s", resp.Subject)
	}

	if _, err := client.SendOutreach(context.Background(), &SendOutreachRequest{TemplateID: "t1"}); err == nil {
		t.Error("Expected error for missing candidate_id")
	}
}
