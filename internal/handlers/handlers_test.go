package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/digitalt3/lms-core-api/internal/config"
	"github.com/digitalt3/lms-core-api/internal/events"
	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories/postgres"
	"github.com/digitalt3/lms-core-api/internal/services"
	"github.com/digitalt3/lms-core-api/internal/utils"
	"github.com/digitalt3/lms-core-api/internal/validator"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Content{}, &models.Assessment{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T, authStub, withDB bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AuthStub:       authStub,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSMaxAge:     3600,
	}

	var db *gorm.DB
	if withDB {
		db = newTestDB(t)
	}
	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})

	slogLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogLogger)
	serviceManager := services.NewDefaultServiceManager(repo, slogLogger, validator.New(), events.NewNoopPublisher())

	router := gin.New()
	SetupMiddleware(router, cfg, logger)
	NewHandlerManager(cfg, serviceManager, repo, logger).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestUserCRUDFlow(t *testing.T) {
	router := newTestRouter(t, true, true)

	// Create
	w := doJSON(t, router, http.MethodPost, "/users", gin.H{"name": "Ada", "email": "ada@example.com"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	created := decode[models.UserRead](t, w)
	if created.ID == "" || created.Name != "Ada" || created.Email != "ada@example.com" {
		t.Fatalf("unexpected created record: %+v", created)
	}
	if created.DeletedAt != nil {
		t.Error("deleted_at should be null on create")
	}

	// Get
	w = doJSON(t, router, http.MethodGet, "/users/"+created.ID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	// List
	w = doJSON(t, router, http.MethodGet, "/users", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	list := decode[models.UserListResponse](t, w)
	if list.Total != 1 || len(list.Items) != 1 || list.Skip != 0 || list.Limit != 50 {
		t.Errorf("list = %+v, want one item with default paging", list)
	}

	// Update
	w = doJSON(t, router, http.MethodPut, "/users/"+created.ID, gin.H{"name": "Ada Lovelace"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	updated := decode[models.UserRead](t, w)
	if updated.Name != "Ada Lovelace" || updated.Email != "ada@example.com" {
		t.Errorf("unexpected updated record: %+v", updated)
	}

	// Delete
	w = doJSON(t, router, http.MethodDelete, "/users/"+created.ID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	deleted := decode[models.DeleteResponse](t, w)
	if !deleted.Deleted || deleted.ID != created.ID {
		t.Errorf("delete response = %+v", deleted)
	}

	// Deleted records are gone from every read path.
	w = doJSON(t, router, http.MethodGet, "/users/"+created.ID, nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
}

func TestErrorEnvelope(t *testing.T) {
	router := newTestRouter(t, true, true)

	w := doJSON(t, router, http.MethodGet, "/users/00000000-0000-0000-0000-000000000000", nil,
		map[string]string{"X-Request-Id": "req-123"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	resp := decode[models.ErrorResponse](t, w)
	if resp.Error != CodeHTTPError {
		t.Errorf("error = %q, want %q", resp.Error, CodeHTTPError)
	}
	if resp.Message != "user not found" {
		t.Errorf("message = %q", resp.Message)
	}
	if sc, ok := resp.Details["status_code"].(float64); !ok || int(sc) != http.StatusNotFound {
		t.Errorf("details = %v, want status_code 404", resp.Details)
	}
	if resp.RequestID == nil || *resp.RequestID != "req-123" {
		t.Errorf("request_id = %v, want echo of X-Request-Id", resp.RequestID)
	}
}

func TestErrorEnvelopeCorrelationFallback(t *testing.T) {
	router := newTestRouter(t, true, true)

	w := doJSON(t, router, http.MethodGet, "/users/bad-id", nil,
		map[string]string{"X-Correlation-Id": "corr-9"})
	resp := decode[models.ErrorResponse](t, w)
	if resp.RequestID == nil || *resp.RequestID != "corr-9" {
		t.Errorf("request_id = %v, want X-Correlation-Id fallback", resp.RequestID)
	}

	// No correlation headers at all: request_id is null, never generated.
	w = doJSON(t, router, http.MethodGet, "/users/bad-id", nil, nil)
	resp = decode[models.ErrorResponse](t, w)
	if resp.RequestID != nil {
		t.Errorf("request_id = %v, want null", resp.RequestID)
	}
}

func TestCreateConflict(t *testing.T) {
	router := newTestRouter(t, true, true)

	payload := gin.H{"name": "Ada", "email": "ada@example.com"}
	if w := doJSON(t, router, http.MethodPost, "/users", payload, nil); w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/users", payload, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate create status = %d, want 409", w.Code)
	}
	resp := decode[models.ErrorResponse](t, w)
	if resp.Message != "user with this email already exists" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestListParamRejection(t *testing.T) {
	router := newTestRouter(t, true, true)

	tests := []struct {
		name  string
		query string
	}{
		{name: "negative skip", query: "skip=-1"},
		{name: "zero limit", query: "limit=0"},
		{name: "limit over max", query: "limit=500"},
		{name: "non-numeric skip", query: "skip=abc"},
		{name: "non-numeric limit", query: "limit=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/users?"+tt.query, nil, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestValidationFailureOnCreate(t *testing.T) {
	router := newTestRouter(t, true, true)

	w := doJSON(t, router, http.MethodPost, "/content", gin.H{"title": "Intro", "slug": "Not A Slug"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decode[models.ErrorResponse](t, w)
	if resp.Error != CodeHTTPError {
		t.Errorf("error = %q, want %q", resp.Error, CodeHTTPError)
	}
}

func TestStoreUnavailable(t *testing.T) {
	router := newTestRouter(t, true, false)

	w := doJSON(t, router, http.MethodGet, "/users", nil, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("list without store status = %d, want 503", w.Code)
	}
}

func TestAuthDebugStub(t *testing.T) {
	router := newTestRouter(t, true, true)

	// No headers: deterministic fallback identity.
	w := doJSON(t, router, http.MethodGet, "/auth/debug", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	principal := decode[models.Principal](t, w)
	if principal.Subject != "stub-user" {
		t.Errorf("subject = %q, want stub-user", principal.Subject)
	}
	if principal.Email != nil {
		t.Errorf("email = %v, want null", principal.Email)
	}
	if len(principal.Roles) != 0 {
		t.Errorf("roles = %v, want empty", principal.Roles)
	}

	// Headers drive the principal.
	w = doJSON(t, router, http.MethodGet, "/auth/debug", nil, map[string]string{
		"X-Auth-Subject": "u-42",
		"X-Auth-Email":   "u42@example.com",
		"X-Auth-Roles":   "learner, super_admin",
	})
	principal = decode[models.Principal](t, w)
	if principal.Subject != "u-42" {
		t.Errorf("subject = %q", principal.Subject)
	}
	if principal.Email == nil || *principal.Email != "u42@example.com" {
		t.Errorf("email = %v", principal.Email)
	}
	wantRoles := []models.Role{models.RoleLearner, models.RoleSuperAdmin}
	if fmt.Sprint(principal.Roles) != fmt.Sprint(wantRoles) {
		t.Errorf("roles = %v, want %v", principal.Roles, wantRoles)
	}
}

func TestAuthDebugUnknownRole(t *testing.T) {
	router := newTestRouter(t, true, true)

	w := doJSON(t, router, http.MethodGet, "/auth/debug", nil, map[string]string{
		"X-Auth-Roles": "learner,wizard",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decode[models.ErrorResponse](t, w)
	if resp.Message != "unknown role: wizard" {
		t.Errorf("message = %q, want the offending token named", resp.Message)
	}
}

func TestAuthDebugRealModeNotImplemented(t *testing.T) {
	router := newTestRouter(t, false, true)

	w := doJSON(t, router, http.MethodGet, "/auth/debug", nil, map[string]string{
		"X-Auth-Subject": "ignored",
		"X-Auth-Roles":   "wizard",
	})
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", w.Code)
	}
	resp := decode[models.ErrorResponse](t, w)
	if resp.Error != CodeHTTPError {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestHealthProbes(t *testing.T) {
	router := newTestRouter(t, true, true)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := doJSON(t, router, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, w.Code)
			continue
		}
		resp := decode[models.HealthResponse](t, w)
		if resp.Status != "ok" || resp.Service != config.ServiceName {
			t.Errorf("%s = %+v", path, resp)
		}
	}
}

func TestDatabaseHealth(t *testing.T) {
	router := newTestRouter(t, true, true)

	w := doJSON(t, router, http.MethodGet, "/health/db", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decode[models.DBHealthResponse](t, w)
	if resp.Status != "ok" || resp.Error != nil {
		t.Errorf("healthy store = %+v", resp)
	}
	if resp.DurationMS < 0 {
		t.Errorf("duration_ms = %f", resp.DurationMS)
	}
}

func TestDatabaseHealthFailed(t *testing.T) {
	router := newTestRouter(t, true, false)

	w := doJSON(t, router, http.MethodGet, "/health/db", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, an unavailable store is still a 200 payload", w.Code)
	}
	resp := decode[models.DBHealthResponse](t, w)
	if resp.Status != "failed" || resp.Error == nil {
		t.Errorf("unavailable store = %+v, want failed payload with error", resp)
	}
}

func TestInvalidJSONPayload(t *testing.T) {
	router := newTestRouter(t, true, true)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decode[models.ErrorResponse](t, w)
	if resp.Error != CodeHTTPError {
		t.Errorf("error = %q", resp.Error)
	}
}
