// internal/service/dashboard.go
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/google/uuid"
)

const (
	recentActivityLimit = 10
	actionScanLimit     = 500

	// Thresholds for the recommended-action rules.
	followUpAfter = 7 * 24 * time.Hour
	reengageAfter = 30 * 24 * time.Hour
)

type DashboardService struct {
	candidateRepo repository.CandidateRepositoryIface
	activityRepo  repository.ActivityRepositoryIface
	cacheService  *CacheService
}

func NewDashboardService(candidateRepo repository.CandidateRepositoryIface, activityRepo repository.ActivityRepositoryIface, cacheService *CacheService) *DashboardService {
	return &DashboardService{
		candidateRepo: candidateRepo,
		activityRepo:  activityRepo,
		cacheService:  cacheService,
	}
}

type DashboardStats struct {
	TotalCandidates int64 `json:"total_candidates"`
	ActiveLooking   int64 `json:"active_looking"`
	Clients         int64 `json:"clients"`
}

type ActionPriority string

const (
	PriorityHigh   ActionPriority = "high"
	PriorityMedium ActionPriority = "medium"
	PriorityLow    ActionPriority = "low"
)

type RecommendedAction struct {
	CandidateID   uuid.UUID      `json:"candidate_id"`
	CandidateName string         `json:"candidate_name"`
	Reason        string         `json:"reason"`
	Priority      ActionPriority `json:"priority"`
}

type DashboardOutput struct {
	Stats              DashboardStats      `json:"stats"`
	RecentActivities   []*model.Activity   `json:"recent_activities"`
	RecommendedActions []RecommendedAction `json:"recommended_actions"`
}

// Overview assembles the dashboard. Each aggregation is an independent
// statement; a failure in one fails the whole response without leaving
// partial state anywhere. Stats are cached briefly per organization.
func (s *DashboardService) Overview(ctx context.Context, p authz.Principal) (*DashboardOutput, error) {
	stats, err := s.stats(ctx, p)
	if err != nil {
		return nil, err
	}

	recent, err := s.activityRepo.RecentByOrganization(ctx, p, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching recent activities: %w", err)
	}

	candidates, _, err := s.candidateRepo.Search(ctx, p, repository.CandidateFilter{}, 0, actionScanLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching candidates for actions: %w", err)
	}

	lastActivity, err := s.activityRepo.LastActivityByCandidate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetching last activities: %w", err)
	}

	return &DashboardOutput{
		Stats:              *stats,
		RecentActivities:   recent,
		RecommendedActions: RecommendActions(candidates, lastActivity, time.Now().UTC()),
	}, nil
}

func (s *DashboardService) stats(ctx context.Context, p authz.Principal) (*DashboardStats, error) {
	if p.OrganizationID == nil {
		return &DashboardStats{}, nil
	}

	cacheKey := "dashboard:stats:" + p.OrganizationID.String()
	if s.cacheService != nil {
		var cached DashboardStats
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	total, err := s.candidateRepo.CountByOrganization(ctx, p, repository.CandidateFilter{})
	if err != nil {
		return nil, fmt.Errorf("counting candidates: %w", err)
	}

	active := true
	looking, err := s.candidateRepo.CountByOrganization(ctx, p, repository.CandidateFilter{ActiveLooking: &active})
	if err != nil {
		return nil, fmt.Errorf("counting active-looking candidates: %w", err)
	}

	clients, err := s.candidateRepo.CountByOrganization(ctx, p, repository.CandidateFilter{
		RelationshipTypes: []model.RelationshipType{model.RelationshipClient, model.RelationshipBoth},
	})
	if err != nil {
		return nil, fmt.Errorf("counting clients: %w", err)
	}

	stats := &DashboardStats{TotalCandidates: total, ActiveLooking: looking, Clients: clients}
	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, stats)
	}
	return stats, nil
}

// RecommendActions applies the follow-up rule set to the organization's
// candidates. The first matching rule wins per candidate:
//
//  1. actively looking and quiet for over a week -> high
//  2. no activity ever recorded -> medium
//  3. quiet for over thirty days -> low
//
// Pure over its inputs, so the rules are testable without a database.
func RecommendActions(candidates []*model.Candidate, lastActivity map[uuid.UUID]time.Time, asOf time.Time) []RecommendedAction {
	var actions []RecommendedAction

	for _, c := range candidates {
		name := c.FirstName
		if c.LastName != "" {
			name += " " + c.LastName
		}

		last, contacted := lastActivity[c.ID]

		switch {
		case c.IsActiveLooking && (!contacted || asOf.Sub(last) > followUpAfter):
			actions = append(actions, RecommendedAction{
				CandidateID:   c.ID,
				CandidateName: name,
				Reason:        "actively looking with no contact in over a week",
				Priority:      PriorityHigh,
			})
		case !contacted:
			actions = append(actions, RecommendedAction{
				CandidateID:   c.ID,
				CandidateName: name,
				Reason:        "no activity recorded yet",
				Priority:      PriorityMedium,
			})
		case asOf.Sub(last) > reengageAfter:
			actions = append(actions, RecommendedAction{
				CandidateID:   c.ID,
				CandidateName: name,
				Reason:        "no activity in over thirty days",
				Priority:      PriorityLow,
			})
		}
	}

	rank := map[ActionPriority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
	sort.SliceStable(actions, func(i, j int) bool {
		return rank[actions[i].Priority] < rank[actions[j].Priority]
	})
	return actions
}
