package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	Port   string
	AppEnv string

	DatabaseURL    string
	DBDriver       string
	FallbackDBPath string
	ProbeTimeout   time.Duration

	JWTSecret     string
	AdminUsername string
	AdminPassword string
	AdminEmail    string

	SiteURL     string
	APIURL      string
	CORSOrigins []string

	MailHost    string
	MailPort    int
	MailUser    string
	MailPass    string
	MailFrom    string
	NotifyEmail string

	RabbitMQURL string

	LogLevel               string
	AnalyticsRetentionDays int
	RateLimitPerMinute     int
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("erro ao ler %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv monta a Config a partir de uma função de lookup (os.Getenv nos
// binários, um map nos testes).
func FromEnv(getenv func(string) string) (*Config, error) {
	c := &Config{
		Port:           stringOr(getenv("PORT"), "8080"),
		AppEnv:         strings.ToLower(stringOr(getenv("APP_ENV"), EnvDevelopment)),
		DatabaseURL:    getenv("DATABASE_URL"),
		DBDriver:       stringOr(getenv("DB_DRIVER"), "pgx"),
		FallbackDBPath: stringOr(getenv("FALLBACK_DB_PATH"), "data/fallback.db"),
		JWTSecret:      getenv("JWT_SECRET"),
		AdminUsername:  getenv("ADMIN_USERNAME"),
		AdminPassword:  getenv("ADMIN_PASSWORD"),
		AdminEmail:     getenv("ADMIN_EMAIL"),
		SiteURL:        strings.TrimRight(stringOr(getenv("SITE_URL"), "http://localhost:3000"), "/"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS")),
		MailHost:       getenv("MAIL_HOST"),
		MailUser:       getenv("MAIL_USER"),
		MailPass:       getenv("MAIL_PASS"),
		MailFrom:       getenv("MAIL_FROM"),
		NotifyEmail:    getenv("NOTIFY_EMAIL"),
		RabbitMQURL:    getenv("RABBITMQ_URL"),
		LogLevel:       stringOr(getenv("LOG_LEVEL"), "info"),
	}

	var err error
	if c.ProbeTimeout, err = durationOr(getenv("PROBE_TIMEOUT"), 3*time.Second); err != nil {
		return nil, fmt.Errorf("PROBE_TIMEOUT: %w", err)
	}
	if c.MailPort, err = intOr(getenv("MAIL_PORT"), 587); err != nil {
		return nil, fmt.Errorf("MAIL_PORT: %w", err)
	}
	if c.AnalyticsRetentionDays, err = intOr(getenv("ANALYTICS_RETENTION_DAYS"), 90); err != nil {
		return nil, fmt.Errorf("ANALYTICS_RETENTION_DAYS: %w", err)
	}
	if c.RateLimitPerMinute, err = intOr(getenv("RATE_LIMIT_PER_MINUTE"), 10); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE: %w", err)
	}

	// Endereço público da API, usado nos links dos emails (unsubscribe).
	c.APIURL = strings.TrimRight(stringOr(getenv("API_URL"), "http://localhost:"+c.Port), "/")

	if c.MailFrom == "" {
		c.MailFrom = c.MailUser
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{c.SiteURL}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c *Config) Validate() error {
	var problems []string

	switch c.DBDriver {
	case "pgx", "postgres":
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER must be pgx or postgres, got %q", c.DBDriver))
	}
	if c.FallbackDBPath == "" {
		problems = append(problems, "FALLBACK_DB_PATH is required")
	}
	if c.ProbeTimeout <= 0 {
		problems = append(problems, "PROBE_TIMEOUT must be positive")
	}
	if c.IsProduction() && c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required in production")
	}
	if c.MailPort <= 0 || c.MailPort > 65535 {
		problems = append(problems, "MAIL_PORT must be a valid port")
	}
	if c.RateLimitPerMinute <= 0 {
		problems = append(problems, "RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.AnalyticsRetentionDays <= 0 {
		problems = append(problems, "ANALYTICS_RETENTION_DAYS must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuração inválida: %s", strings.Join(problems, "; "))
	}
	return nil
}

func stringOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func intOr(v string, def int) (int, error) {
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func durationOr(v string, def time.Duration) (time.Duration, error) {
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return time.ParseDuration(strings.TrimSpace(v))
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
