// internal/repository/tag.go
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

type TagRepositoryIface interface {
	FindAll(ctx context.Context, p authz.Principal) ([]*model.Tag, error)
	FindByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Tag, error)
	Create(ctx context.Context, p authz.Principal, tag *model.Tag) error
	Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error
	Assign(ctx context.Context, p authz.Principal, candidateID, tagID uuid.UUID) error
	Unassign(ctx context.Context, p authz.Principal, candidateID, tagID uuid.UUID) error
}

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) FindAll(ctx context.Context, p authz.Principal) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).
		Scopes(authz.Scope(p)).
		Order("name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("finding tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) FindByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).
		Scopes(authz.Scope(p)).
		First(&tag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("finding tag: %w", err)
	}
	return &tag, nil
}

func (r *TagRepository) Create(ctx context.Context, p authz.Principal, tag *model.Tag) error {
	if !authz.Can(p, authz.ActionInsert, authz.ResourceTag, tag.OrganizationID) {
		return domain.ErrForbidden
	}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		// Unique (organization_id, name) index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTagAlreadyExists
		}
		return fmt.Errorf("creating tag: %w", err)
	}
	return nil
}

// Delete removes a tag. A tag still referenced through candidate_tags is
// rejected; callers unassign it first. The schema backs this up with
// ON DELETE RESTRICT.
func (r *TagRepository) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	tag, err := r.FindByID(ctx, p, id)
	if err != nil {
		return err
	}
	if !authz.Can(p, authz.ActionDelete, authz.ResourceTag, tag.OrganizationID) {
		return domain.ErrForbidden
	}

	var refs int64
	if err := r.db.WithContext(ctx).Model(&model.CandidateTag{}).
		Where("tag_id = ?", id).Count(&refs).Error; err != nil {
		return fmt.Errorf("counting tag references: %w", err)
	}
	if refs > 0 {
		return domain.ErrTagInUse
	}

	if err := r.db.WithContext(ctx).Scopes(authz.Scope(p)).Delete(&model.Tag{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}
	return nil
}

// Assign links a tag to a candidate. Both rows must belong to the
// principal's organization; the composite primary key keeps the pair
// unique.
func (r *TagRepository) Assign(ctx context.Context, p authz.Principal, candidateID, tagID uuid.UUID) error {
	if _, err := r.FindByID(ctx, p, tagID); err != nil {
		return err
	}
	if err := r.findScopedCandidate(ctx, p, candidateID); err != nil {
		return err
	}

	assoc := &model.CandidateTag{CandidateID: candidateID, TagID: tagID}
	result := r.db.WithContext(ctx).Create(assoc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrTagAlreadyAssigned
		}
		return fmt.Errorf("assigning tag: %w", result.Error)
	}
	return nil
}

func (r *TagRepository) Unassign(ctx context.Context, p authz.Principal, candidateID, tagID uuid.UUID) error {
	if _, err := r.FindByID(ctx, p, tagID); err != nil {
		return err
	}
	if err := r.findScopedCandidate(ctx, p, candidateID); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("candidate_id = ? AND tag_id = ?", candidateID, tagID).
		Delete(&model.CandidateTag{})
	if result.Error != nil {
		return fmt.Errorf("unassigning tag: %w", result.Error)
	}
	return nil
}

// findScopedCandidate checks the candidate exists inside the principal's
// organization before an association is touched.
func (r *TagRepository) findScopedCandidate(ctx context.Context, p authz.Principal, candidateID uuid.UUID) error {
	var candidate model.Candidate
	err := r.db.WithContext(ctx).
		Scopes(authz.Scope(p)).
		First(&candidate, "id = ?", candidateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCandidateNotFound
		}
		return fmt.Errorf("finding candidate: %w", err)
	}
	return nil
}
