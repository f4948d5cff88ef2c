package app

import (
	"context"
	"errors"
	"path/filepath"

	"go-payroll/internal/auth"
	"go-payroll/internal/config"
	"go-payroll/internal/credential"
	"go-payroll/internal/dashboard"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/audit"
	"go-payroll/internal/shared/clock"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired services shared by the HTTP server and the command
// line.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Audit  audit.Logger
	Clock  clock.Clock
	Hasher credential.Hasher
	Redis  *redis.Client

	EmployeeRepo employee.Repository
	Employees    employee.Service
	Auth         auth.Service
	Calculator   *payroll.Calculator
	Exporter     *payroll.Exporter
	Downloads    *payroll.DownloadService
	Payroll      payroll.Service
	Dashboards   dashboard.Service
}

type Option func(*App)

// WithClock replaces the wall clock used for sessions and download links.
func WithClock(c clock.Clock) Option {
	return func(a *App) { a.Clock = c }
}

// WithRedis uses rdb instead of dialing cfg.Redis.Addr.
func WithRedis(rdb *redis.Client) Option {
	return func(a *App) { a.Redis = rdb }
}

// BuildApp wires every module from cfg. An unknown hash algorithm is
// fatal; a missing Redis address keeps sessions in memory.
func BuildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	if logger == nil {
		logger = zap.L()
	}

	a := &App{Config: cfg, Logger: logger}
	for _, opt := range opts {
		opt(a)
	}
	a.Clock = clock.OrReal(a.Clock)
	a.Audit = audit.NewZapLogger(logger)

	// 1. Setup Infrastructure
	hasher, err := credential.NewHasher(cfg.HashAlgorithm)
	if err != nil {
		logger.Error("hash algorithm unavailable", zap.String("algorithm", cfg.HashAlgorithm), zap.Error(err))
		return nil, err
	}
	a.Hasher = hasher

	if a.Redis == nil && cfg.Redis.Addr != "" {
		rdb, err := ConnectRedisWithRetry(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, 5, logger)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
	}

	// 2. Repositories
	a.EmployeeRepo = employee.NewFileRepository(cfg.Storage.RegistrationLog)

	users := auth.NewMemoryUserStore()
	auth.SeedDemoUsers(ctx, users, hasher)

	var sessions auth.SessionStore
	if a.Redis != nil {
		sessions = auth.NewRedisSessionStore(a.Redis)
		logger.Info("sessions stored in redis")
	} else {
		sessions = auth.NewMemorySessionStore()
		logger.Info("sessions stored in memory")
	}

	// 3. Services
	a.Employees = employee.NewService(a.EmployeeRepo, hasher, a.Audit, logger)
	a.Auth = auth.NewService(users, sessions, hasher, auth.Options{
		MaxAttempts: cfg.Auth.MaxAttempts,
		SessionTTL:  cfg.Auth.SessionTTL,
		Clock:       a.Clock,
		Audit:       a.Audit,
	}, logger)

	a.Calculator = payroll.NewCalculator(logger)
	a.Exporter = payroll.NewExporter(payroll.NewDirWriter(filepath.Clean(cfg.Storage.ExportDir)), a.Clock)
	a.Downloads = payroll.NewDownloadService(a.Exporter, a.Clock, logger)

	signer, err := payroll.NewLinkSigner(cfg.Download.SigningSecret)
	if err != nil {
		logger.Warn("download links disabled: DOWNLOAD_SIGNING_SECRET is empty")
		signer = nil
	}
	a.Payroll = payroll.NewService(a.Calculator, a.Downloads, signer, cfg.Download.TokenTTL, a.Clock, logger)
	a.Dashboards = dashboard.NewService(logger)

	return a, nil
}

func (a *App) Close() error {
	if a.Redis != nil {
		return a.Redis.Close()
	}
	return nil
}
