package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name        string `envconfig:"APP_NAME" default:"Budgeter"`
		Port        int    `envconfig:"PORT" default:"4000"`
		FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:5174"`
		Production  bool   `envconfig:"PRODUCTION" default:"false"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"budgeter"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	}

	Auth struct {
		JWTSecret  string `envconfig:"JWT_SECRET"`
		TOTPIssuer string `envconfig:"TOTP_ISSUER" default:"Budgeter"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.DB.User), url.QueryEscape(c.DB.Password), c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every problem at once rather than stopping at the first.
func (c *Config) Validate() error {
	var problems []string

	if c.App.Port < 1 || c.App.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.App.Port))
	}

	if u, err := url.Parse(c.App.FrontendURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid FRONTEND_URL %q: must be an absolute URL", c.App.FrontendURL))
	}

	if c.Auth.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT %q: must be text or json", c.Log.Format))
	}

	if c.Server.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid SERVER_TIMEOUT %v: must be positive", c.Server.Timeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}
