package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DTOs for Request validation
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	Role            string `json:"role" binding:"required"`
}

// UserInfo is the projection of a user returned on login. The password hash
// never leaves the service layer.
type UserInfo struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FirstLogin bool      `json:"first_login"`
}

type LoginResult struct {
	User                  UserInfo `json:"user"`
	Token                 string   `json:"token"`
	RequirePasswordChange bool     `json:"requirePasswordChange"`
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

type authService struct {
	users     repository.UserRepository
	audit     repository.AuditRepository
	txManager repository.TransactionManager
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(users repository.UserRepository, audit repository.AuditRepository, txManager repository.TransactionManager) AuthService {
	return &authService{users: users, audit: audit, txManager: txManager}
}

// Password policy: at least 8 characters with one lowercase, one uppercase,
// one digit and one special character.
var (
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidPassword reports whether candidate satisfies the compound policy.
func ValidPassword(candidate string) bool {
	return len(candidate) >= 8 &&
		lowerPattern.MatchString(candidate) &&
		upperPattern.MatchString(candidate) &&
		digitPattern.MatchString(candidate) &&
		specialPattern.MatchString(candidate)
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	user, err := s.users.GetByEmailAndRole(ctx, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
	})

	tokenString, err := token.SignedString(middleware.GetJWTSecret())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	// A user must change their password on first login, or whenever they are
	// still on the provisioned default.
	requireChange := user.FirstLogin ||
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(model.DefaultPassword)) == nil

	return &LoginResult{
		User: UserInfo{
			ID:         user.ID,
			Email:      user.Email,
			Role:       user.Role,
			FirstLogin: user.FirstLogin,
		},
		Token:                 tokenString,
		RequirePasswordChange: requireChange,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if !model.ValidRole(req.Role) {
		return ErrInvalidRole
	}

	if !ValidPassword(req.NewPassword) {
		return ErrWeakPassword
	}

	user, err := s.users.GetByEmailAndRole(ctx, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	// New hash and cleared first_login land together, with the audit entry in
	// the same transaction.
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdateCredentials(txCtx, user.ID.String(), string(hashed), false); err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]interface{}{
			"email": user.Email,
			"role":  user.Role,
		})
		return s.audit.Log(txCtx, &model.AuditLog{
			UserID:     &user.ID,
			Action:     model.ActionChangePassword,
			EntityID:   user.ID.String(),
			EntityName: user.Email,
			Details:    string(details),
		})
	})
}
