// internal/repository/profile.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepositoryIface covers the identity table. Profiles are global
// (they key the auth principal), so these lookups are not organization
// scoped; everything downstream of a profile is.
type ProfileRepositoryIface interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	result := r.db.WithContext(ctx).Create(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("creating profile: %w", result.Error)
	}
	return nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("finding profile: %w", result.Error)
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	result := r.db.WithContext(ctx).First(&profile, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("finding profile: %w", result.Error)
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}
