package service

import (
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the schema migrated.
// MaxOpenConns is pinned to 1 so every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}, &model.Complaint{}, &model.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedUser inserts a user with a bcrypt-hashed password (MinCost keeps tests fast).
func seedUser(t *testing.T, db *gorm.DB, email, role, password string, firstLogin bool) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &model.User{
		Email:      email,
		Role:       role,
		Password:   string(hash),
		FirstLogin: firstLogin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	// The column defaults to true, so GORM drops a zero-value false on insert;
	// write it explicitly so the seeded row matches the requested state.
	if !firstLogin {
		if err := db.Model(user).Update("first_login", false).Error; err != nil {
			t.Fatalf("failed to clear first_login for %s: %v", email, err)
		}
	}
	return user
}

func newAuthService(t *testing.T, db *gorm.DB) AuthService {
	t.Helper()
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
	)
}

func newComplaintService(t *testing.T, db *gorm.DB) ComplaintService {
	t.Helper()
	return NewComplaintService(
		repository.NewComplaintRepository(db),
		repository.NewUserRepository(db),
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
		nil, // no websocket hub in tests
	)
}

func newUserService(t *testing.T, db *gorm.DB) UserService {
	t.Helper()
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
	)
}
