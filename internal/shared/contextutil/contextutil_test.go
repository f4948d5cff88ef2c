package contextutil_test

import (
	"context"
	"testing"

	"go-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-1")
	ctx = contextutil.WithSession(ctx, "sess-1", "emp1")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "REQ-1", md.RequestID)
	assert.Equal(t, "sess-1", md.SessionID)
	assert.Equal(t, "emp1", md.Username)
}

func TestGetLogger(t *testing.T) {
	t.Run("falls back to nop when nothing is set", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})

	t.Run("prefers the context logger", func(t *testing.T) {
		scoped := zap.NewExample()
		ctx := contextutil.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, contextutil.GetLogger(ctx, zap.NewNop()))
	})
}
