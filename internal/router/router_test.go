package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pogojump/pogojump-api/config"
	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/internal/container"
	"github.com/pogojump/pogojump-api/internal/infrastructure/filestore"
	"github.com/pogojump/pogojump-api/internal/metrics"
)

type envelope struct {
	Status    int             `json:"status"`
	RequestID string          `json:"request_id"`
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	engine *gin.Engine
	path   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "database.json")
	cfg := &config.Config{JWTSecret: "router-secret", JWTTTL: time.Hour, BcryptCost: 4, StoreSerialize: true}
	reg := prometheus.NewRegistry()
	c := container.NewWithRepository(cfg, nil, filestore.NewDocumentRepository(path), metrics.New(reg), application.NoopNotifier{})
	c.Registry = reg
	return &testServer{engine: NewEngine(c), path: path}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"email": email, "password": "pw123456", "name": "User " + email})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res application.AuthResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	return res.Token
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)
	admin := s.register(t, "admin@x.com")

	w, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "admin@x.com", "password": "x", "name": "Again"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already registered", env.Message)
	assert.Equal(t, "conflict", env.Error.Code)

	w, env = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", env.Message)

	w, env = s.do(t, http.MethodPost, "/api/auth/register", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", env.Message)

	w, env = s.do(t, http.MethodGet, "/api/auth/me", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `true`, string(mustField(t, env.Data, "isAdmin")))
	assert.NotContains(t, string(env.Data), "password")
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, env.RequestID, w.Header().Get("X-Request-ID"))
}

func TestGuards(t *testing.T) {
	s := newTestServer(t)
	admin := s.register(t, "admin@x.com")
	shopper := s.register(t, "shopper@x.com")

	w, env := s.do(t, http.MethodPost, "/api/products", "", map[string]any{"name": "X", "price": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", env.Message)

	w, env = s.do(t, http.MethodGet, "/api/orders/my", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", env.Message)

	w, env = s.do(t, http.MethodPost, "/api/products", shopper, map[string]any{"name": "X", "price": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Admin access required", env.Message)

	w, _ = s.do(t, http.MethodGet, "/api/users", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodGet, "/api/users", shopper, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProductsAndReviews(t *testing.T) {
	s := newTestServer(t)
	admin := s.register(t, "admin@x.com")
	shopper := s.register(t, "shopper@x.com")

	w, env := s.do(t, http.MethodPost, "/api/products", admin, `{"name":"Spring Kit","price":"24.50"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p struct {
		ID    int64   `json:"id"`
		Price float64 `json:"price"`
		Image string  `json:"image"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 24.5, p.Price)
	assert.Equal(t, "default", p.Image)

	w, env = s.do(t, http.MethodPost, "/api/products", admin, `{"name":"Bad","price":"cheap"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation", env.Error.Code)

	w, _ = s.do(t, http.MethodGet, "/api/products/not-a-number", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/products/%d/reviews", p.ID), shopper, map[string]any{"rating": 5, "review": "great"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/products/%d/reviews", p.ID), admin, map[string]any{"rating": 4, "review": "good"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = s.do(t, http.MethodGet, fmt.Sprintf("/api/products/%d/with-reviews", p.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `4.5`, string(mustField(t, env.Data, "avgRating")))
	assert.JSONEq(t, `2`, string(mustField(t, env.Data, "reviewCount")))

	w, env = s.do(t, http.MethodPost, fmt.Sprintf("/api/products/%d/reviews", p.ID), shopper, map[string]any{"rating": 6, "review": "too good"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rating must be between 1 and 5", env.Message)

	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/products/%d", p.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = s.do(t, http.MethodGet, fmt.Sprintf("/api/products/%d/reviews", p.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var orphans []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &orphans))
	assert.Len(t, orphans, 2)
}

func TestOrdersAndProfile(t *testing.T) {
	s := newTestServer(t)
	admin := s.register(t, "admin@x.com")
	shopper := s.register(t, "shopper@x.com")

	w, env := s.do(t, http.MethodPost, "/api/orders", shopper, map[string]any{"items": []any{}, "total": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No items in order", env.Message)

	w, env = s.do(t, http.MethodPost, "/api/orders", shopper, map[string]any{"items": []any{map[string]any{"id": 1, "qty": 1}}, "total": "89"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var o struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &o))
	assert.Equal(t, "pending", o.Status)

	w, env = s.do(t, http.MethodPut, fmt.Sprintf("/api/orders/%d", o.ID), admin, map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"shipped"`, string(mustField(t, env.Data, "status")))

	w, _ = s.do(t, http.MethodPut, fmt.Sprintf("/api/orders/%d", o.ID), shopper, map[string]any{"status": "free"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = s.do(t, http.MethodPut, "/api/users/profile", shopper, `{"avatar":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `""`, string(mustField(t, env.Data, "avatar")))

	w, env = s.do(t, http.MethodPut, "/api/users/profile", shopper, `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name must be at least 2 characters", env.Message)

	w, _ = s.do(t, http.MethodDelete, "/api/orders/123", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorageFailureIsGeneric(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o644))

	w, env := s.do(t, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", env.Message)
	assert.Empty(t, env.Error.Details)

	w, _ = s.do(t, http.MethodGet, "/api/healthz", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/api/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func mustField(t *testing.T, raw json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	v, ok := m[key]
	require.True(t, ok, "missing %q in %s", key, raw)
	return v
}

type stubModule struct{ name string }

func (m stubModule) Name() string { return m.name }

func (m stubModule) Register(rg *gin.RouterGroup) {
	rg.GET("/"+m.name, func(c *gin.Context) { c.String(http.StatusOK, m.name) })
}

func TestRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reg := NewRegistry(r, "/api")
	reg.Add(stubModule{name: "a"})
	reg.AddRoot(stubModule{name: "b"})
	reg.RegisterAll()
	assert.Equal(t, []string{"a", "b"}, reg.Names())

	for path, want := range map[string]int{"/api/a": 200, "/b": 200, "/a": 404, "/api/b": 404} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
	}

	dup := NewRegistry(gin.New(), "/api")
	dup.Add(stubModule{name: "a"})
	dup.AddRoot(stubModule{name: "a"})
	assert.Panics(t, dup.RegisterAll)
}
