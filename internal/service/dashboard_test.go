package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgoss28/clear-match-ai/internal/mocks"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/dgoss28/clear-match-ai/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRecommendActions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	activeQuiet := &model.Candidate{ID: uuid.New(), FirstName: "Ada", LastName: "Active", IsActiveLooking: true}
	activeRecent := &model.Candidate{ID: uuid.New(), FirstName: "Ben", IsActiveLooking: true}
	neverContacted := &model.Candidate{ID: uuid.New(), FirstName: "Cal"}
	longQuiet := &model.Candidate{ID: uuid.New(), FirstName: "Dee"}
	recentlyTouched := &model.Candidate{ID: uuid.New(), FirstName: "Eve"}

	lastActivity := map[uuid.UUID]time.Time{
		activeQuiet.ID:     now.Add(-8 * 24 * time.Hour),
		activeRecent.ID:    now.Add(-2 * 24 * time.Hour),
		longQuiet.ID:       now.Add(-45 * 24 * time.Hour),
		recentlyTouched.ID: now.Add(-3 * 24 * time.Hour),
	}

	actions := service.RecommendActions(
		[]*model.Candidate{recentlyTouched, longQuiet, neverContacted, activeRecent, activeQuiet},
		lastActivity, now,
	)

	assert.Len(t, actions, 3)

	// Sorted high, medium, low regardless of input order.
	assert.Equal(t, activeQuiet.ID, actions[0].CandidateID)
	assert.Equal(t, service.PriorityHigh, actions[0].Priority)
	assert.Equal(t, "Ada Active", actions[0].CandidateName)

	assert.Equal(t, neverContacted.ID, actions[1].CandidateID)
	assert.Equal(t, service.PriorityMedium, actions[1].Priority)

	assert.Equal(t, longQuiet.ID, actions[2].CandidateID)
	assert.Equal(t, service.PriorityLow, actions[2].Priority)
}

func TestRecommendActionsActiveNeverContacted(t *testing.T) {
	now := time.Now().UTC()
	c := &model.Candidate{ID: uuid.New(), FirstName: "Ada", IsActiveLooking: true}

	// Actively looking with no contact at all outranks the never-contacted rule.
	actions := service.RecommendActions([]*model.Candidate{c}, nil, now)
	assert.Len(t, actions, 1)
	assert.Equal(t, service.PriorityHigh, actions[0].Priority)
}

func TestRecommendActionsEmpty(t *testing.T) {
	actions := service.RecommendActions(nil, nil, time.Now().UTC())
	assert.Empty(t, actions)
}

func TestDashboardOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := testPrincipal()

	candidateRepo := mocks.NewMockCandidateRepositoryIface(ctrl)
	activityRepo := mocks.NewMockActivityRepositoryIface(ctrl)
	svc := service.NewDashboardService(candidateRepo, activityRepo, nil)

	quiet := &model.Candidate{ID: uuid.New(), FirstName: "Ada", IsActiveLooking: true}

	candidateRepo.EXPECT().
		CountByOrganization(gomock.Any(), p, repository.CandidateFilter{}).
		Return(int64(12), nil)
	candidateRepo.EXPECT().
		CountByOrganization(gomock.Any(), p, gomock.Any()).
		Return(int64(4), nil)
	candidateRepo.EXPECT().
		CountByOrganization(gomock.Any(), p, gomock.Any()).
		Return(int64(3), nil)

	activityRepo.EXPECT().
		RecentByOrganization(gomock.Any(), p, 10).
		Return([]*model.Activity{{ID: uuid.New(), Type: model.ActivityNote}}, nil)

	candidateRepo.EXPECT().
		Search(gomock.Any(), p, repository.CandidateFilter{}, 0, 500).
		Return([]*model.Candidate{quiet}, int64(1), nil)

	activityRepo.EXPECT().
		LastActivityByCandidate(gomock.Any(), p).
		Return(map[uuid.UUID]time.Time{}, nil)

	out, err := svc.Overview(context.Background(), p)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), out.Stats.TotalCandidates)
	assert.Equal(t, int64(4), out.Stats.ActiveLooking)
	assert.Equal(t, int64(3), out.Stats.Clients)
	assert.Len(t, out.RecentActivities, 1)
	assert.Len(t, out.RecommendedActions, 1)
	assert.Equal(t, service.PriorityHigh, out.RecommendedActions[0].Priority)
}
