package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/credential"
	"go-payroll/internal/shared/audit"
	"go-payroll/internal/shared/clock"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 3
	DefaultSessionTTL  = 2 * time.Minute
)

type LoginState string

const (
	StateAwaitingCredentials LoginState = "AWAITING_CREDENTIALS"
	StateAuthenticated       LoginState = "AUTHENTICATED"
	StateLockedOut           LoginState = "LOCKED_OUT"
)

type Credentials struct {
	Username string
	Password string
}

// CredentialSource supplies one username/password pair per attempt.
// attempt starts at 1.
type CredentialSource interface {
	NextCredentials(ctx context.Context, attempt int) (Credentials, error)
}

type CredentialSourceFunc func(ctx context.Context, attempt int) (Credentials, error)

func (f CredentialSourceFunc) NextCredentials(ctx context.Context, attempt int) (Credentials, error) {
	return f(ctx, attempt)
}

// AttemptObserver is told how many attempts remain after each failure.
type AttemptObserver func(attempt, remaining int)

type LoginResult struct {
	State     LoginState
	Session   *Session
	Role      Role
	Attempts  int
	Remaining int
}

type Options struct {
	MaxAttempts int
	SessionTTL  time.Duration
	Clock       clock.Clock
	Audit       audit.Logger
}

type Service interface {
	// Authenticate makes one attempt and opens a session on success.
	Authenticate(ctx context.Context, username, password string) (*Session, error)
	// Attempt is Authenticate against a per-username failure budget kept for
	// the life of the process. The failure that exhausts the budget and every
	// later call return ErrLockedOut. A success resets the count.
	Attempt(ctx context.Context, username, password string) (*Session, error)
	// Login runs the bounded retry loop. A lockout is a result, not an
	// error; the error is only set when src fails.
	Login(ctx context.Context, src CredentialSource, observe AttemptObserver) (LoginResult, error)
	CheckSession(ctx context.Context, id string) (*Session, error)
	Logout(ctx context.Context, id string) error
}

type service struct {
	users       UserStore
	sessions    SessionStore
	hasher      credential.Hasher
	maxAttempts int
	sessionTTL  time.Duration
	clock       clock.Clock
	audit       audit.Logger
	logger      *zap.Logger

	mu       sync.Mutex
	failures map[string]int
}

func NewService(users UserStore, sessions SessionStore, hasher credential.Hasher, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}

	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}

	return &service{
		users:       users,
		sessions:    sessions,
		hasher:      hasher,
		maxAttempts: opts.MaxAttempts,
		sessionTTL:  opts.SessionTTL,
		clock:       clock.OrReal(opts.Clock),
		audit:       audit.OrNop(opts.Audit),
		logger:      l,
		failures:    make(map[string]int),
	}
}

func (s *service) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("authenticate requested", zap.String("username", username))

	user, ok := s.users.FindByUsername(ctx, username)
	if !ok || !user.Authenticate(s.hasher, username, password) {
		log.Warn("authenticate failed", zap.String("username", username))
		return nil, autherrors.ErrInvalidCredentials
	}

	session := Session{
		ID:        uuid.NewString(),
		Username:  user.Username(),
		Role:      user.Role(),
		CreatedAt: s.clock.Now(),
		TTL:       s.sessionTTL,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		log.Error("save session failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionLoginSucceeded,
		Message: "user logged in",
		Meta: map[string]any{
			"username": session.Username,
			"role":     string(session.Role),
		},
	})
	log.Info("authenticate success",
		zap.String("username", session.Username),
		zap.String("role", string(session.Role)),
	)

	return &session, nil
}

func (s *service) Attempt(ctx context.Context, username, password string) (*Session, error) {
	s.mu.Lock()
	locked := s.failures[username] >= s.maxAttempts
	s.mu.Unlock()
	if locked {
		return nil, autherrors.ErrLockedOut
	}

	session, err := s.Authenticate(ctx, username, password)
	if err == nil {
		s.mu.Lock()
		delete(s.failures, username)
		s.mu.Unlock()
		return session, nil
	}
	if !isCredentialFailure(err) {
		return nil, err
	}

	s.mu.Lock()
	s.failures[username]++
	failed := s.failures[username]
	s.mu.Unlock()

	if failed < s.maxAttempts {
		return nil, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionLoginLockedOut,
		Message: "login locked after failed attempts",
		Meta: map[string]any{
			"username": username,
			"attempts": failed,
		},
	})
	s.logger.Warn("login locked out", zap.String("username", username), zap.Int("attempts", failed))

	return nil, autherrors.ErrLockedOut
}

func (s *service) Login(ctx context.Context, src CredentialSource, observe AttemptObserver) (LoginResult, error) {
	result := LoginResult{State: StateAwaitingCredentials, Remaining: s.maxAttempts}

	for result.Attempts < s.maxAttempts {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		creds, err := src.NextCredentials(ctx, result.Attempts+1)
		if err != nil {
			return result, err
		}
		result.Attempts++
		result.Remaining = s.maxAttempts - result.Attempts

		session, err := s.Authenticate(ctx, creds.Username, creds.Password)
		if err == nil {
			result.State = StateAuthenticated
			result.Session = session
			result.Role = session.Role
			return result, nil
		}
		if !isCredentialFailure(err) {
			return result, err
		}

		if observe != nil {
			observe(result.Attempts, result.Remaining)
		}
	}

	result.State = StateLockedOut
	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionLoginLockedOut,
		Message: "login locked after failed attempts",
		Meta:    map[string]any{"attempts": result.Attempts},
	})
	s.logger.Warn("login locked out", zap.Int("attempts", result.Attempts))

	return result, nil
}

func isCredentialFailure(err error) bool {
	return errors.Is(err, autherrors.ErrInvalidCredentials)
}

func (s *service) CheckSession(ctx context.Context, id string) (*Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsExpired(s.clock.Now()) {
		s.logger.Debug("session expired", zap.String("username", session.Username))
		return nil, autherrors.ErrSessionExpired
	}

	return &session, nil
}

func (s *service) Logout(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
