package handler

import (
	"net/http"
	"testing"

	"backend/internal/model"
)

func TestLoginEndpoint_Success(t *testing.T) {
	router, db := newTestRouter(t)
	seedUser(t, db, "client@example.com", model.RoleClient, "Valid1Pass!", false)

	w := doJSON(t, router, http.MethodPost, "/auth-login", map[string]string{
		"email":    "client@example.com",
		"password": "Valid1Pass!",
		"role":     model.RoleClient,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	body := decodeEnvelope(t, w)
	if body["success"] != true {
		t.Error("success = false, want true")
	}
	if token, _ := body["token"].(string); token == "" {
		t.Error("token missing from login response")
	}
	if body["requirePasswordChange"] != false {
		t.Error("requirePasswordChange = true, want false")
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok || user["email"] != "client@example.com" {
		t.Errorf("user projection = %v, want email echoed back", body["user"])
	}
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/auth-login", map[string]string{
		"email": "client@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Missing required fields" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	router, db := newTestRouter(t)
	seedUser(t, db, "client@example.com", model.RoleClient, "Valid1Pass!", false)

	// Unknown account
	w := doJSON(t, router, http.MethodPost, "/auth-login", map[string]string{
		"email":    "nobody@example.com",
		"password": "Valid1Pass!",
		"role":     model.RoleClient,
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: status = %d, want 401", w.Code)
	}

	// Wrong password
	w = doJSON(t, router, http.MethodPost, "/auth-login", map[string]string{
		"email":    "client@example.com",
		"password": "WrongPass1!",
		"role":     model.RoleClient,
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d, want 401", w.Code)
	}

	// Role outside the known set
	w = doJSON(t, router, http.MethodPost, "/auth-login", map[string]string{
		"email":    "client@example.com",
		"password": "Valid1Pass!",
		"role":     "manager",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid role: status = %d, want 400", w.Code)
	}
}

func TestLoginEndpoint_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/auth-login", nil)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Method not allowed" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestChangePasswordEndpoint(t *testing.T) {
	router, db := newTestRouter(t)
	seedUser(t, db, "client@example.com", model.RoleClient, model.DefaultPassword, true)

	w := doJSON(t, router, http.MethodPost, "/change-password", map[string]string{
		"email":           "client@example.com",
		"currentPassword": model.DefaultPassword,
		"newPassword":     "Valid1Pass!",
		"role":            model.RoleClient,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Password updated successfully" {
		t.Errorf("message = %q", body["message"])
	}

	// Weak replacement is rejected with the policy message
	w = doJSON(t, router, http.MethodPost, "/change-password", map[string]string{
		"email":           "client@example.com",
		"currentPassword": "Valid1Pass!",
		"newPassword":     "weak",
		"role":            model.RoleClient,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("weak password: status = %d, want 400", w.Code)
	}

	// Wrong current password
	w = doJSON(t, router, http.MethodPost, "/change-password", map[string]string{
		"email":           "client@example.com",
		"currentPassword": "NotTheCurrent1!",
		"newPassword":     "Another1Pass!",
		"role":            model.RoleClient,
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong current: status = %d, want 401", w.Code)
	}

	// Unknown account
	w = doJSON(t, router, http.MethodPost, "/change-password", map[string]string{
		"email":           "nobody@example.com",
		"currentPassword": "Valid1Pass!",
		"newPassword":     "Another1Pass!",
		"role":            model.RoleClient,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown user: status = %d, want 404", w.Code)
	}
}
