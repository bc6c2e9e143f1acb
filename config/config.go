package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the application.
type Config struct {
	ServerPort int `env:"SERVER_PORT" envDefault:"3000"`

	DBDriver         string        `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseURL      string        `env:"DATABASE_URL,required"`
	DBAutoSchema     bool          `env:"DB_AUTO_SCHEMA" envDefault:"false"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	DBMaxOpenConns   int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// RegistrationMinPlayers rejects smaller rosters. 0 accepts a team
	// without players.
	RegistrationMinPlayers int `env:"REGISTRATION_MIN_PLAYERS" envDefault:"0"`

	R2 R2Config `envPrefix:"R2_"`
}

type R2Config struct {
	AccountID       string `env:"ACCOUNT_ID"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	BucketName      string `env:"BUCKET_NAME"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL"`
	Endpoint        string `env:"ENDPOINT"`
}

// Enabled reports whether snapshot storage is configured at all.
func (c R2Config) Enabled() bool {
	return c.BucketName != "" || c.AccessKeyID != ""
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort))
	}

	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver))
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, errors.New("DATABASE_URL must not be empty"))
	}
	if c.DBConnectTimeout <= 0 {
		errs = append(errs, errors.New("DB_CONNECT_TIMEOUT must be positive"))
	}
	if c.DBMaxOpenConns < 0 {
		errs = append(errs, errors.New("DB_MAX_OPEN_CONNS must not be negative"))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}

	if c.RegistrationMinPlayers < 0 {
		errs = append(errs, errors.New("REGISTRATION_MIN_PLAYERS must not be negative"))
	}

	return errors.Join(errs...)
}
