// internal/repository/activity.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepositoryIface interface {
	Insert(ctx context.Context, p authz.Principal, activity *model.Activity) error
	ListByCandidate(ctx context.Context, p authz.Principal, candidateID uuid.UUID, limit int) ([]*model.Activity, error)
	RecentByOrganization(ctx context.Context, p authz.Principal, limit int) ([]*model.Activity, error)
	LastActivityByCandidate(ctx context.Context, p authz.Principal) (map[uuid.UUID]time.Time, error)
}

// ActivityRepository writes and reads the immutable activity log. It talks
// to postgres directly through a pgx pool with raw SQL; the log is
// append-only and its queries are simple enough that the ORM buys nothing.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Insert(ctx context.Context, p authz.Principal, activity *model.Activity) error {
	if !authz.Can(p, authz.ActionInsert, authz.ResourceActivity, activity.OrganizationID) {
		return domain.ErrForbidden
	}

	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	metadataJSON := marshalMetadata(activity.Metadata)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO activities (
			id, organization_id, candidate_id, actor_id, type, metadata, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`,
		activity.ID, activity.OrganizationID, activity.CandidateID,
		activity.ActorID, activity.Type, metadataJSON, activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByCandidate(ctx context.Context, p authz.Principal, candidateID uuid.UUID, limit int) ([]*model.Activity, error) {
	if p.OrganizationID == nil {
		return []*model.Activity{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, organization_id, candidate_id, actor_id, type, metadata, created_at
		FROM activities
		WHERE organization_id = $1 AND candidate_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`, *p.OrganizationID, candidateID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (r *ActivityRepository) RecentByOrganization(ctx context.Context, p authz.Principal, limit int) ([]*model.Activity, error) {
	if p.OrganizationID == nil {
		return []*model.Activity{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, organization_id, candidate_id, actor_id, type, metadata, created_at
		FROM activities
		WHERE organization_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, *p.OrganizationID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// LastActivityByCandidate returns the newest activity timestamp per
// candidate of the principal's organization. Feeds the recommended-action
// rules on the dashboard.
func (r *ActivityRepository) LastActivityByCandidate(ctx context.Context, p authz.Principal) (map[uuid.UUID]time.Time, error) {
	result := make(map[uuid.UUID]time.Time)
	if p.OrganizationID == nil {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT candidate_id, MAX(created_at)
		FROM activities
		WHERE organization_id = $1
		GROUP BY candidate_id
	`, *p.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("querying last activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var candidateID uuid.UUID
		var last time.Time
		if err := rows.Scan(&candidateID, &last); err != nil {
			return nil, fmt.Errorf("scanning last activity: %w", err)
		}
		result[candidateID] = last
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading last activities: %w", err)
	}
	return result, nil
}

// marshalMetadata encodes activity metadata for the jsonb column. An
// unencodable payload is logged and stored as an empty object rather than
// failing the insert; the activity row itself still lands.
func marshalMetadata(metadata model.JSONMap) []byte {
	data, err := json.Marshal(metadata)
	if err != nil {
		slog.Warn("failed to encode activity metadata, storing empty object", "error", err)
		return []byte("{}")
	}
	return data
}

func scanActivities(rows pgx.Rows) ([]*model.Activity, error) {
	var activities []*model.Activity
	for rows.Next() {
		var a model.Activity
		var metadataJSON []byte
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.CandidateID, &a.ActorID, &a.Type, &metadataJSON, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &a.Metadata); err != nil {
				a.Metadata = model.JSONMap{}
			}
		}
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading activities: %w", err)
	}
	return activities, nil
}
