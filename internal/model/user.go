package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role enum constants. The legacy system kept admin, client and fournisseur
// accounts in three separate tables; they are unified here behind a single
// role discriminant.
const (
	RoleAdmin       = "admin"
	RoleClient      = "client"
	RoleFournisseur = "fournisseur"
)

// DefaultPassword is the provisioned password for accounts created by an
// admin. Accounts still using it are forced through the password-change flow.
const DefaultPassword = "password"

// User represents any account of the platform. The same email may exist once
// per role, mirroring the original per-role tables.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email_role" json:"email"`
	Role       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_email_role" json:"role"`
	Password   string    `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, never serialized
	FirstLogin bool      `gorm:"not null;default:true" json:"first_login"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns the id application-side so the model works on every
// supported database.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleClient || role == RoleFournisseur
}

// ManagedRole reports whether role can be created/deleted through the user
// management endpoints. Admin accounts are pre-provisioned only.
func ManagedRole(role string) bool {
	return role == RoleClient || role == RoleFournisseur
}
