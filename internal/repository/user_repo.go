package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// UserRepository defines the interface for data access of User entities
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmailAndRole(ctx context.Context, email, role string) (*model.User, error)
	ListByRoles(ctx context.Context, roles ...string) ([]model.User, error)
	UpdateCredentials(ctx context.Context, id string, passwordHash string, firstLogin bool) error
	Delete(ctx context.Context, id, role string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return GetDB(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailAndRole looks up the single account matching an email within a
// role partition, the unit of lookup the legacy per-role tables provided.
func (r *userRepository) GetByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "email = ? AND role = ?", email, role).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListByRoles(ctx context.Context, roles ...string) ([]model.User, error) {
	var users []model.User
	if err := GetDB(ctx, r.db).
		Where("role IN ?", roles).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateCredentials writes the new password hash and the first_login flag in
// a single UPDATE so the forced-change flow cannot half-apply.
func (r *userRepository) UpdateCredentials(ctx context.Context, id string, passwordHash string, firstLogin bool) error {
	return GetDB(ctx, r.db).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password":    passwordHash,
			"first_login": firstLogin,
		}).Error
}

func (r *userRepository) Delete(ctx context.Context, id, role string) error {
	return GetDB(ctx, r.db).Where("id = ? AND role = ?", id, role).Delete(&model.User{}).Error
}
