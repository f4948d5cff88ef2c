package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	HashAlgorithm string `env:"HASH_ALGORITHM" envDefault:"sha256"`
	Auth          struct {
		MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
		SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"2m"`
	} `envPrefix:"AUTH_"`
	Download struct {
		TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"1m"`
		SigningSecret string        `env:"SIGNING_SECRET"`
	} `envPrefix:"DOWNLOAD_"`
	Storage struct {
		RegistrationLog string `env:"REGISTRATION_LOG" envDefault:"employee_data.txt"`
		ExportDir       string `env:"EXPORT_DIR" envDefault:"."`
	} `envPrefix:"STORAGE_"`
	Server struct {
		Port            string        `env:"PORT" envDefault:"3000"`
		ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
		WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
		IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	} `envPrefix:"SERVER_"`
	Redis struct {
		Addr     string `env:"ADDR"`
		Password string `env:"PASSWORD"`
		DB       int    `env:"DB" envDefault:"0"`
	} `envPrefix:"REDIS_"`
	RateLimit struct {
		RPS   float64 `env:"RPS" envDefault:"1"`
		Burst int     `env:"BURST" envDefault:"5"`
	} `envPrefix:"RATE_LIMIT_"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if cfg.Auth.MaxAttempts < 1 {
		return nil, errors.New("AUTH_MAX_ATTEMPTS must be at least 1")
	}

	return cfg, nil
}
