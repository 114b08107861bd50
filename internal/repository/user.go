// internal/repository/user.go
package repository

import (
	"context"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	SetUserType(ctx context.Context, id uuid.UUID, userType model.UserType) error
	FindAllPaginated(ctx context.Context, page Page) ([]*model.User, int64, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.Email = normalizeEmail(user.Email)
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrEmailAlreadyExists
		}
		return translateError("creating user", result.Error, domain.ErrUserNotFound)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user)
	if result.Error != nil {
		return nil, translateError("finding user", result.Error, domain.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		return nil, translateError("finding user", result.Error, domain.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		return translateError("updating user", result.Error, domain.ErrUserNotFound)
	}
	return nil
}

// SetUserType changes the account type without touching other columns.
func (r *UserRepository) SetUserType(ctx context.Context, id uuid.UUID, userType model.UserType) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("user_type", userType)
	if result.Error != nil {
		return translateError("updating user type", result.Error, domain.ErrUserNotFound)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindAllPaginated returns a paginated list of users
func (r *UserRepository) FindAllPaginated(ctx context.Context, page Page) ([]*model.User, int64, error) {
	page = page.Normalize()
	var users []*model.User
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return nil, 0, translateError("counting users", err, domain.ErrUserNotFound)
	}

	result := r.db.WithContext(ctx).Order("created_at DESC").Offset(page.Offset).Limit(page.Limit).Find(&users)
	if result.Error != nil {
		return nil, 0, translateError("listing users", result.Error, domain.ErrUserNotFound)
	}

	return users, count, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
