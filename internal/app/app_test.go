package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/app"
	"go-payroll/internal/auth"
	"go-payroll/internal/config"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/clock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_REGISTRATION_LOG", filepath.Join(dir, "employee_data.txt"))
	t.Setenv("STORAGE_EXPORT_DIR", filepath.Join(dir, "exports"))
	t.Setenv("DOWNLOAD_SIGNING_SECRET", "integration-secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("HASH_ALGORITHM", "sha256")

	cfg, err := config.Parse()
	require.NoError(t, err)
	return cfg
}

type client struct {
	t      *testing.T
	router *gin.Engine
}

func (c client) do(method, path, sessionID string, body any) (*httptest.ResponseRecorder, apiEnvelope) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var env apiEnvelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestBuildApp(t *testing.T) {
	t.Run("unknown hash algorithm is fatal", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.HashAlgorithm = "md5"

		_, err := app.BuildApp(context.Background(), cfg, zap.NewNop())

		assert.Error(t, err)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := app.BuildApp(context.Background(), nil, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestRouter_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)

	a, err := app.BuildApp(context.Background(), cfg, zap.NewNop(),
		app.WithClock(clock.Fixed(time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	router, err := a.Router()
	require.NoError(t, err)
	c := client{t: t, router: router}

	w, _ := c.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := c.do(http.MethodPost, "/api/v1/employees/register", "", map[string]string{
		"emp_id":   "EMP-1001",
		"name":     "Asha",
		"email":    "asha@corp.in",
		"phone":    "9876543210",
		"username": "asha",
		"password": "Secret@123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, env.Ok)

	logged, err := os.ReadFile(cfg.Storage.RegistrationLog)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "EMP-1001")
	assert.NotContains(t, string(logged), "Secret@123")

	w, _ = c.do(http.MethodGet, "/api/v1/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = c.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": auth.DemoManagerUsername,
		"password": auth.DemoManagerPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session auth.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, auth.RoleManager, session.Role)
	sid := session.SessionID

	w, env = c.do(http.MethodGet, "/api/v1/employees", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "EMP-1001")

	w, env = c.do(http.MethodPost, "/api/v1/dashboard", sid, map[string]string{
		"role": string(session.Role),
		"name": "Ravi",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"year_to_date":160000`)

	payslip := map[string]any{
		"emp_id": "EMP-1001", "name": "Asha", "month": "Jan",
		"basic": 20000, "hra": 5000, "da": 3000, "allowances": 2000,
	}
	w, env = c.do(http.MethodPost, "/api/v1/payslips/links", sid, payslip)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var link struct {
		DownloadURL string `json:"download_url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &link))

	w, _ = c.do(http.MethodGet, link.DownloadURL, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Net Pay       : 24600.00")

	exports, err := os.ReadDir(cfg.Storage.ExportDir)
	require.NoError(t, err)
	assert.Len(t, exports, 2)

	w, _ = c.do(http.MethodPost, "/api/v1/auth/logout", sid, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = c.do(http.MethodGet, "/api/v1/employees", sid, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
