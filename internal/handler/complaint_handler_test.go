package handler

import (
	"net/http"
	"testing"

	"backend/internal/model"

	"github.com/google/uuid"
)

func TestComplaintsEndpoint_ListRequiresRoleAndUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/complaints?role=client", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Missing role or userId" {
		t.Errorf("message = %q", body["message"])
	}

	w = doJSON(t, router, http.MethodGet, "/complaints?userId="+uuid.NewString(), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing role: status = %d, want 400", w.Code)
	}
}

func TestComplaintsEndpoint_CreateAndList(t *testing.T) {
	router, db := newTestRouter(t)
	client := seedUser(t, db, "client@example.com", model.RoleClient, "Valid1Pass!", false)

	w := doJSON(t, router, http.MethodPost, "/complaints", map[string]interface{}{
		"client_id":   client.ID.String(),
		"title":       "broken parts",
		"description": "defective delivery",
		"claimnumber": "CLM-001",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	created, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data missing from create response: %s", w.Body.String())
	}
	if created["status"] != model.StatusPending {
		t.Errorf("status = %v, want %q", created["status"], model.StatusPending)
	}

	w = doJSON(t, router, http.MethodGet, "/complaints?role=client&userId="+client.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	body = decodeEnvelope(t, w)
	list, ok := body["data"].([]interface{})
	if !ok || len(list) != 1 {
		t.Errorf("list = %v, want 1 complaint", body["data"])
	}
}

func TestComplaintsEndpoint_CreateMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/complaints", map[string]interface{}{
		"title": "broken parts",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Missing required fields (title, description, client_id)" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestComplaintsEndpoint_UpdateErrors(t *testing.T) {
	router, db := newTestRouter(t)
	client := seedUser(t, db, "client@example.com", model.RoleClient, "Valid1Pass!", false)

	// Missing id fails binding
	w := doJSON(t, router, http.MethodPut, "/complaints", map[string]interface{}{
		"status": model.StatusAssigned,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing id: status = %d, want 400", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Missing complaint ID" {
		t.Errorf("message = %q", body["message"])
	}

	// Unknown id is a 404
	w = doJSON(t, router, http.MethodPut, "/complaints", map[string]interface{}{
		"id":     uuid.NewString(),
		"status": model.StatusAssigned,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}

	// Illegal lifecycle move is a 400
	create := doJSON(t, router, http.MethodPost, "/complaints", map[string]interface{}{
		"client_id":   client.ID.String(),
		"title":       "broken parts",
		"description": "defective delivery",
	})
	created := decodeEnvelope(t, create)["data"].(map[string]interface{})

	w = doJSON(t, router, http.MethodPut, "/complaints", map[string]interface{}{
		"id":     created["id"],
		"status": model.StatusResolved,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("illegal transition: status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestComplaintsEndpoint_DeleteUnknownIDSucceeds(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/complaints/"+uuid.NewString(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Complaint deleted successfully" {
		t.Errorf("message = %q", body["message"])
	}
}
