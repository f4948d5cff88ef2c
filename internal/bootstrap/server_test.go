package bootstrap_test

import (
	"context"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/shared/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auditSpy struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (s *auditSpy) Log(_ context.Context, e audit.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func TestServe(t *testing.T) {
	t.Run("serves until the context ends and audits the shutdown", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		ctx, cancel := context.WithCancel(context.Background())
		spy := &auditSpy{}
		done := make(chan error, 1)
		go func() {
			done <- bootstrap.Serve(ctx, ln, handler, bootstrap.ServerConfig{ShutdownTimeout: time.Second}, spy)
		}()

		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}

		spy.mu.Lock()
		defer spy.mu.Unlock()
		require.Len(t, spy.entries, 1)
		assert.Equal(t, audit.ActionServerShutdown, spy.entries[0].Action)
		assert.Equal(t, context.Canceled.Error(), spy.entries[0].Meta["signal"])
	})

	t.Run("a closed listener is reported", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		require.NoError(t, ln.Close())

		err = bootstrap.Serve(context.Background(), ln, http.NotFoundHandler(), bootstrap.ServerConfig{}, nil)

		assert.Error(t, err)
	})
}
