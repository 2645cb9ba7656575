// internal/repository/template.go
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

type TemplateRepositoryIface interface {
	FindAll(ctx context.Context, p authz.Principal) ([]*model.Template, error)
	FindByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Template, error)
	Create(ctx context.Context, p authz.Principal, template *model.Template) error
	Update(ctx context.Context, p authz.Principal, template *model.Template) error
	Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error
}

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) FindAll(ctx context.Context, p authz.Principal) ([]*model.Template, error) {
	var templates []*model.Template
	err := r.db.WithContext(ctx).
		Scopes(authz.Scope(p)).
		Order("updated_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("finding templates: %w", err)
	}
	return templates, nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Template, error) {
	var template model.Template
	err := r.db.WithContext(ctx).
		Scopes(authz.Scope(p)).
		First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("finding template: %w", err)
	}
	return &template, nil
}

func (r *TemplateRepository) Create(ctx context.Context, p authz.Principal, template *model.Template) error {
	if !authz.Can(p, authz.ActionInsert, authz.ResourceTemplate, template.OrganizationID) {
		return domain.ErrForbidden
	}
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("creating template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, p authz.Principal, template *model.Template) error {
	if !authz.Can(p, authz.ActionUpdate, authz.ResourceTemplate, template.OrganizationID) {
		return domain.ErrForbidden
	}
	result := r.db.WithContext(ctx).
		Scopes(authz.Scope(p)).
		Where("id = ?", template.ID).
		Save(template)
	if result.Error != nil {
		return fmt.Errorf("updating template: %w", result.Error)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	template, err := r.FindByID(ctx, p, id)
	if err != nil {
		return err
	}
	if !authz.Can(p, authz.ActionDelete, authz.ResourceTemplate, template.OrganizationID) {
		return domain.ErrForbidden
	}
	if err := r.db.WithContext(ctx).Scopes(authz.Scope(p)).Delete(&model.Template{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}
