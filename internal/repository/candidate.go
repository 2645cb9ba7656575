// internal/repository/candidate.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateRepositoryIface interface {
	Search(ctx context.Context, p authz.Principal, filter CandidateFilter, offset, limit int) ([]*model.Candidate, int64, error)
	FindByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Candidate, error)
	Create(ctx context.Context, p authz.Principal, candidate *model.Candidate) error
	Update(ctx context.Context, p authz.Principal, candidate *model.Candidate) error
	Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error
	CountByOrganization(ctx context.Context, p authz.Principal, filter CandidateFilter) (int64, error)
}

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Search returns the principal's organization's candidates matching the
// filter, plus the total match count for pagination. The organization scope
// is applied before the filter so filters only narrow within the tenant.
func (r *CandidateRepository) Search(ctx context.Context, p authz.Principal, filter CandidateFilter, offset, limit int) ([]*model.Candidate, int64, error) {
	var candidates []*model.Candidate
	var count int64

	scoped := r.db.WithContext(ctx).Model(&model.Candidate{}).Scopes(authz.Scope(p))
	scoped = filter.apply(scoped)

	if err := scoped.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting candidates: %w", err)
	}

	result := scoped.
		Order("updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&candidates)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("searching candidates: %w", result.Error)
	}

	return candidates, count, nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.WithContext(ctx).
		Scopes(authz.Scope(p)).
		Preload("Tags").
		First(&candidate, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A scope miss looks identical to a missing row on purpose.
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("finding candidate: %w", err)
	}
	return &candidate, nil
}

func (r *CandidateRepository) Create(ctx context.Context, p authz.Principal, candidate *model.Candidate) error {
	if !authz.Can(p, authz.ActionInsert, authz.ResourceCandidate, candidate.OrganizationID) {
		return domain.ErrForbidden
	}
	if err := r.db.WithContext(ctx).Create(candidate).Error; err != nil {
		return fmt.Errorf("creating candidate: %w", err)
	}
	return nil
}

func (r *CandidateRepository) Update(ctx context.Context, p authz.Principal, candidate *model.Candidate) error {
	if !authz.Can(p, authz.ActionUpdate, authz.ResourceCandidate, candidate.OrganizationID) {
		return domain.ErrForbidden
	}

	result := r.db.WithContext(ctx).
		Scopes(authz.Scope(p)).
		Where("id = ?", candidate.ID).
		Save(candidate)
	if result.Error != nil {
		return fmt.Errorf("updating candidate: %w", result.Error)
	}
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	candidate, err := r.FindByID(ctx, p, id)
	if err != nil {
		return err
	}
	if !authz.Can(p, authz.ActionDelete, authz.ResourceCandidate, candidate.OrganizationID) {
		return domain.ErrForbidden
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", id).Delete(&model.CandidateTag{}).Error; err != nil {
			return fmt.Errorf("deleting tag associations: %w", err)
		}
		if err := tx.Scopes(authz.Scope(p)).Delete(&model.Candidate{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting candidate: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// CountByOrganization counts the organization's candidates matching the
// filter. Used by the dashboard aggregation.
func (r *CandidateRepository) CountByOrganization(ctx context.Context, p authz.Principal, filter CandidateFilter) (int64, error) {
	var count int64
	scoped := r.db.WithContext(ctx).Model(&model.Candidate{}).Scopes(authz.Scope(p))
	if err := filter.apply(scoped).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting candidates: %w", err)
	}
	return count, nil
}
