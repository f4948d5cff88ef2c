package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequestID(t *testing.T) {
	r := newEngine()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("propagates the incoming id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "REQ-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, "REQ-1", w.Body.String())
		assert.Equal(t, "REQ-1", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestContextLogger(t *testing.T) {
	r := newEngine()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		assert.NotNil(t, contextutil.GetLogger(c.Request.Context(), nil))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitByIP(t *testing.T) {
	r := newEngine()
	r.GET("/", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequireSession(t *testing.T) {
	resolver := func(_ context.Context, sid string) (string, error) {
		if sid == "good" {
			return "emp1", nil
		}
		return "", apperror.New(apperror.CodeSessionExpired, "Session expired", http.StatusUnauthorized)
	}

	r := newEngine()
	r.GET("/", middleware.RequireSession(resolver), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetUsername(c.Request.Context()))
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "rejected session", header: "stale", want: http.StatusUnauthorized},
		{name: "live session", header: "good", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(middleware.SessionHeader, tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "emp1", w.Body.String())
			}
		})
	}
}

func TestIdempotency(t *testing.T) {
	const path = "/register"

	newRouter := func(calls *int, mw gin.HandlerFunc) *gin.Engine {
		r := newEngine()
		r.POST(path, mw, func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})
		return r
	}

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "192.0.2.1:1234"
		req.Header.Set(middleware.IdempotencyHeader, "k1")
		return req
	}

	key := middleware.IdempotencyKey(path, "192.0.2.1", "k1")

	t.Run("first request runs the handler and stores the response", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(db))

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(true)
		mock.Regexp().ExpectSet(key, `.*`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(key + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a repeated key replays the stored response", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(db))

		mock.ExpectGet(key).SetVal(`{"status":201,"body":{"ok":true}}`)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("an in-flight duplicate is rejected", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(db))

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest())

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("store failure is reported as unavailable", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(db))

		mock.ExpectGet(key).SetErr(errors.New("connection refused"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest())

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("disabled without a client", func(t *testing.T) {
		calls := 0
		r := newRouter(&calls, middleware.Idempotency(nil))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newRequest())

		assert.Equal(t, 1, calls)
	})
}
