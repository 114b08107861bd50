// internal/repository/organization.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error)
	List(ctx context.Context, filters workflow.Filters, page Page) ([]*model.Organization, int64, error)
	ManagedApproved(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID, role model.OrganizationRole) error
	FindOrganizationUsers(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationUser, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create stores a pending organization and makes its owner a member.
func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	org.Status = workflow.OrganizationPending
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		owner := &model.OrganizationUser{
			OrganizationID: org.ID,
			UserID:         org.OwnerID,
			Role:           model.OrgRoleOwner,
		}
		if err := tx.Create(owner).Error; err != nil {
			return fmt.Errorf("creating organization owner: %w", err)
		}

		return nil
	})

	if err != nil {
		return translateError("creating organization", err, domain.ErrOrganizationNotFound)
	}

	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		return nil, translateError("finding organization", err, domain.ErrOrganizationNotFound)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.WithContext(ctx).
		Joins("JOIN organization_users ON organizations.id = organization_users.organization_id").
		Where("organization_users.user_id = ?", userID).
		Order("organizations.created_at DESC").
		Find(&orgs).Error; err != nil {
		return nil, translateError("finding user organizations", err, domain.ErrOrganizationNotFound)
	}
	return orgs, nil
}

// List returns the organizations matching filters, newest first, and the
// total number of matches.
func (r *OrganizationRepository) List(ctx context.Context, filters workflow.Filters, page Page) ([]*model.Organization, int64, error) {
	page = page.Normalize()

	q, err := workflow.BuildFilterPredicate(filters).Apply(r.db.WithContext(ctx).Model(&model.Organization{}), model.OrganizationColumns)
	if err != nil {
		return nil, 0, err
	}
	q = q.Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, translateError("counting organizations", err, domain.ErrOrganizationNotFound)
	}

	var orgs []*model.Organization
	if err := q.Order("organizations.created_at DESC").Offset(page.Offset).Limit(page.Limit).Find(&orgs).Error; err != nil {
		return nil, 0, translateError("listing organizations", err, domain.ErrOrganizationNotFound)
	}

	return orgs, count, nil
}

// ManagedApproved returns the approved organizations userID owns or manages.
// Only those confer the organizationManager role.
func (r *OrganizationRepository) ManagedApproved(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.OrganizationUser{}).
		Joins("JOIN organizations ON organizations.id = organization_users.organization_id").
		Where("organization_users.user_id = ?", userID).
		Where("organization_users.role IN ?", []model.OrganizationRole{model.OrgRoleOwner, model.OrgRoleManager}).
		Where("organizations.status = ?", workflow.OrganizationApproved).
		Pluck("organization_users.organization_id", &ids).Error
	if err != nil {
		return nil, translateError("finding managed organizations", err, domain.ErrOrganizationNotFound)
	}
	return ids, nil
}

func (r *OrganizationRepository) AddMember(ctx context.Context, orgID, userID uuid.UUID, role model.OrganizationRole) error {
	member := &model.OrganizationUser{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user is already a member", domain.ErrConflict)
		}
		return translateError("creating organization user", err, domain.ErrOrganizationNotFound)
	}
	return nil
}

// FindOrganizationUsers returns all users belonging to the given organization
func (r *OrganizationRepository) FindOrganizationUsers(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationUser, error) {
	var orgUsers []*model.OrganizationUser
	result := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Order("created_at ASC").Find(&orgUsers)
	if result.Error != nil {
		return nil, translateError("finding organization users", result.Error, domain.ErrOrganizationNotFound)
	}
	return orgUsers, nil
}
