package service

import (
	"context"
	"encoding/json"
	"errors"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DTOs for Request validation
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// ManagedUserResponse is the projection shown in the admin user table:
// clients and fournisseurs merged, tagged with their role.
type ManagedUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt string    `json:"created_at"`
}

// FournisseurResponse is the minimal projection used by the assignment picker.
type FournisseurResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// UserService defines the interface for the admin user-management surface
type UserService interface {
	ListManagedUsers(ctx context.Context) ([]ManagedUserResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*ManagedUserResponse, error)
	DeleteUser(ctx context.Context, id, role string) error
	ListFournisseurs(ctx context.Context) ([]FournisseurResponse, error)
}

type userService struct {
	users     repository.UserRepository
	audit     repository.AuditRepository
	txManager repository.TransactionManager
}

// NewUserService returns a new instance of UserService
func NewUserService(users repository.UserRepository, audit repository.AuditRepository, txManager repository.TransactionManager) UserService {
	return &userService{users: users, audit: audit, txManager: txManager}
}

func (s *userService) ListManagedUsers(ctx context.Context) ([]ManagedUserResponse, error) {
	users, err := s.users.ListByRoles(ctx, model.RoleClient, model.RoleFournisseur)
	if err != nil {
		return nil, err
	}

	result := make([]ManagedUserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, ManagedUserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return result, nil
}

// CreateUser provisions a client or fournisseur account with the default
// password and first_login set, which forces a change on first sign-in.
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*ManagedUserResponse, error) {
	if !model.ManagedRole(req.Role) {
		return nil, ErrInvalidRole
	}

	if _, err := s.users.GetByEmailAndRole(ctx, req.Email, req.Role); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(model.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := model.User{
		Email:      req.Email,
		Role:       req.Role,
		Password:   string(hashed),
		FirstLogin: true,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.users.Create(txCtx, &user); createErr != nil {
			return createErr
		}

		details, _ := json.Marshal(map[string]interface{}{
			"email": user.Email,
			"role":  user.Role,
		})
		return s.audit.Log(txCtx, &model.AuditLog{
			Action:     model.ActionCreateUser,
			EntityID:   user.ID.String(),
			EntityName: user.Email,
			Details:    string(details),
		})
	})
	if err != nil {
		return nil, err
	}

	return &ManagedUserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id, role string) error {
	if !model.ManagedRole(role) {
		return ErrInvalidRole
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Delete(txCtx, id, role); err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]interface{}{"role": role})
		return s.audit.Log(txCtx, &model.AuditLog{
			Action:   model.ActionDeleteUser,
			EntityID: id,
			Details:  string(details),
		})
	})
}

func (s *userService) ListFournisseurs(ctx context.Context) ([]FournisseurResponse, error) {
	users, err := s.users.ListByRoles(ctx, model.RoleFournisseur)
	if err != nil {
		return nil, err
	}

	result := make([]FournisseurResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FournisseurResponse{ID: u.ID, Email: u.Email})
	}
	return result, nil
}
