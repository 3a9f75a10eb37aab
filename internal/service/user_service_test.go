package service

import (
	"context"
	"errors"
	"testing"

	"backend/internal/model"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_ProvisionsDefaultPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	created, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email: "new@example.com",
		Role:  model.RoleFournisseur,
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if created.Role != model.RoleFournisseur {
		t.Errorf("Role = %q, want %q", created.Role, model.RoleFournisseur)
	}

	var stored model.User
	if err := db.First(&stored, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if !stored.FirstLogin {
		t.Error("FirstLogin = false on provisioned account, want true")
	}
	if stored.Password == model.DefaultPassword {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(model.DefaultPassword)); err != nil {
		t.Error("stored hash does not match the default password")
	}

	var count int64
	db.Model(&model.AuditLog{}).Where("action = ?", model.ActionCreateUser).Count(&count)
	if count != 1 {
		t.Errorf("audit log count = %d, want 1", count)
	}
}

func TestCreateUser_InvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	// Admin accounts are not provisioned through this surface
	for _, role := range []string{model.RoleAdmin, "manager", ""} {
		_, err := svc.CreateUser(context.Background(), CreateUserRequest{
			Email: "new@example.com",
			Role:  role,
		})
		if !errors.Is(err, ErrInvalidRole) {
			t.Errorf("CreateUser(role=%q) error = %v, want ErrInvalidRole", role, err)
		}
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "taken@example.com", model.RoleClient, "Valid1Pass!", false)
	svc := newUserService(t, db)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email: "taken@example.com",
		Role:  model.RoleClient,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("CreateUser() error = %v, want ErrEmailTaken", err)
	}

	// Same email under the other role is a separate account
	if _, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email: "taken@example.com",
		Role:  model.RoleFournisseur,
	}); err != nil {
		t.Fatalf("CreateUser() with same email, other role error = %v", err)
	}
}

func TestListManagedUsers_ExcludesAdmins(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "admin@example.com", model.RoleAdmin, "Valid1Pass!", false)
	seedUser(t, db, "client@example.com", model.RoleClient, "Valid1Pass!", false)
	seedUser(t, db, "supplier@example.com", model.RoleFournisseur, "Valid1Pass!", false)
	svc := newUserService(t, db)

	users, err := svc.ListManagedUsers(context.Background())
	if err != nil {
		t.Fatalf("ListManagedUsers() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("ListManagedUsers() returned %d users, want 2", len(users))
	}
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			t.Errorf("admin account %s leaked into managed user list", u.Email)
		}
	}
}

func TestListFournisseurs(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "client@example.com", model.RoleClient, "Valid1Pass!", false)
	seedUser(t, db, "supplier@example.com", model.RoleFournisseur, "Valid1Pass!", false)
	svc := newUserService(t, db)

	fournisseurs, err := svc.ListFournisseurs(context.Background())
	if err != nil {
		t.Fatalf("ListFournisseurs() error = %v", err)
	}
	if len(fournisseurs) != 1 || fournisseurs[0].Email != "supplier@example.com" {
		t.Errorf("ListFournisseurs() = %+v, want only the fournisseur account", fournisseurs)
	}
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	client := seedUser(t, db, "client@example.com", model.RoleClient, "Valid1Pass!", false)
	svc := newUserService(t, db)

	if err := svc.DeleteUser(context.Background(), client.ID.String(), model.RoleClient); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 0 {
		t.Errorf("user count = %d after delete, want 0", count)
	}

	db.Model(&model.AuditLog{}).Where("action = ?", model.ActionDeleteUser).Count(&count)
	if count != 1 {
		t.Errorf("audit log count = %d, want 1", count)
	}

	if err := svc.DeleteUser(context.Background(), client.ID.String(), model.RoleAdmin); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("DeleteUser(role=admin) error = %v, want ErrInvalidRole", err)
	}
}
