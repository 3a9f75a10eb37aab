package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the public endpoints against an in-memory database,
// mirroring the engine setup in cmd/api.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	userRepo := repository.NewUserRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	authService := service.NewAuthService(userRepo, auditRepo, txManager)
	complaintService := service.NewComplaintService(complaintRepo, userRepo, auditRepo, txManager, nil)
	userService := service.NewUserService(userRepo, auditRepo, txManager)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.Error("Method not allowed"))
	})

	api := router.Group("/")
	NewAuthHandler(authService).RegisterRoutes(api)
	NewComplaintHandler(complaintService).RegisterRoutes(api)
	NewUserHandler(userService).RegisterRoutes(api)

	return router, db
}

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

// doJSON performs a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeEnvelope unmarshals the standard success/data/message envelope.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}
