package audit

import (
	"context"
	"time"

	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	ActionServerShutdown   = "SERVER_SHUTDOWN"
	ActionEmployeeRegister = "EMPLOYEE_REGISTERED"
	ActionLoginSucceeded   = "LOGIN_SUCCEEDED"
	ActionLoginLockedOut   = "LOGIN_LOCKED_OUT"
)

type Entry struct {
	Action  string
	Message string
	Meta    map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry Entry)
}

type ZapLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewZapLogger writes audit events through zap under the "audit" name.
func NewZapLogger(logger ...*zap.Logger) *ZapLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &ZapLogger{logger: l.Named("audit"), now: time.Now}
}

func (l *ZapLogger) Log(ctx context.Context, entry Entry) {
	md := contextutil.ExtractMetadata(ctx)
	l.logger.Info("audit event",
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", md.RequestID),
		zap.Any("meta", entry.Meta),
	)
}

type nop struct{}

func (nop) Log(context.Context, Entry) {}

// Nop discards every entry.
func Nop() Logger { return nop{} }

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}
