package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Google GoogleConfig
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider      string `mapstructure:"provider"`
	Region        string `mapstructure:"region"`
	FromAddress   string `mapstructure:"from_address"`
	FromName      string `mapstructure:"from_name"`
	VerifyBaseURL string `mapstructure:"verify_base_url"`
	MailgunDomain string `mapstructure:"mailgun_domain"`
	MailgunAPIKey string `mapstructure:"mailgun_api_key"`
}

// GoogleConfig holds Google sign-in settings. An empty ClientID disables
// the Google login endpoint.
type GoogleConfig struct {
	ClientID string `mapstructure:"client_id"`
}

// Enabled reports whether Google sign-in is configured.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != ""
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret                  string        `mapstructure:"secret"`
	AccessTokenExpiry       time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry      time.Duration `mapstructure:"refresh_expiry"`
	VerificationTokenExpiry time.Duration `mapstructure:"verification_expiry"`
	Issuer                  string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the AUTHAPI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AUTHAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "authapi")
	v.SetDefault("db.password", "authapi_secret")
	v.SetDefault("db.name", "authapi_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.verification_expiry", "24h")
	v.SetDefault("jwt.issuer", "authapi")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@example.com")
	v.SetDefault("email.from_name", "Accounts")
	v.SetDefault("email.verify_base_url", "http://localhost:8000")

	envBindings := map[string][]string{
		"server.port":             {"AUTHAPI_SERVER_PORT"},
		"server.read_timeout":     {"AUTHAPI_SERVER_READ_TIMEOUT"},
		"server.write_timeout":    {"AUTHAPI_SERVER_WRITE_TIMEOUT"},
		"server.environment":      {"AUTHAPI_SERVER_ENVIRONMENT"},
		"db.host":                 {"AUTHAPI_DB_HOST"},
		"db.port":                 {"AUTHAPI_DB_PORT"},
		"db.user":                 {"AUTHAPI_DB_USER"},
		"db.password":             {"AUTHAPI_DB_PASSWORD"},
		"db.name":                 {"AUTHAPI_DB_NAME"},
		"db.sslmode":              {"AUTHAPI_DB_SSLMODE"},
		"db.max_open":             {"AUTHAPI_DB_MAX_OPEN"},
		"db.max_idle":             {"AUTHAPI_DB_MAX_IDLE"},
		"jwt.secret":              {"AUTHAPI_JWT_SECRET"},
		"jwt.access_expiry":       {"AUTHAPI_JWT_ACCESS_EXPIRY"},
		"jwt.refresh_expiry":      {"AUTHAPI_JWT_REFRESH_EXPIRY"},
		"jwt.verification_expiry": {"AUTHAPI_JWT_VERIFICATION_EXPIRY"},
		"jwt.issuer":              {"AUTHAPI_JWT_ISSUER"},
		"google.client_id":        {"AUTHAPI_GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_ID"},
		"log.level":               {"AUTHAPI_LOG_LEVEL"},
		"log.format":              {"AUTHAPI_LOG_FORMAT"},
		"cors.allowed_origins":    {"AUTHAPI_CORS_ALLOWED_ORIGINS"},
		"email.provider":          {"AUTHAPI_EMAIL_PROVIDER"},
		"email.region":            {"AUTHAPI_EMAIL_REGION"},
		"email.from_address":      {"AUTHAPI_EMAIL_FROM_ADDRESS"},
		"email.from_name":         {"AUTHAPI_EMAIL_FROM_NAME"},
		"email.verify_base_url":   {"AUTHAPI_EMAIL_VERIFY_BASE_URL"},
		"email.mailgun_domain":    {"AUTHAPI_EMAIL_MAILGUN_DOMAIN"},
		"email.mailgun_api_key":   {"AUTHAPI_EMAIL_MAILGUN_API_KEY"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if AUTHAPI_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AUTHAPI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:                  v.GetString("jwt.secret"),
		AccessTokenExpiry:       v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry:      v.GetDuration("jwt.refresh_expiry"),
		VerificationTokenExpiry: v.GetDuration("jwt.verification_expiry"),
		Issuer:                  v.GetString("jwt.issuer"),
	}
	cfg.Google = GoogleConfig{
		ClientID: strings.TrimSpace(v.GetString("google.client_id")),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:      v.GetString("email.provider"),
		Region:        v.GetString("email.region"),
		FromAddress:   v.GetString("email.from_address"),
		FromName:      v.GetString("email.from_name"),
		VerifyBaseURL: strings.TrimRight(v.GetString("email.verify_base_url"), "/"),
		MailgunDomain: v.GetString("email.mailgun_domain"),
		MailgunAPIKey: v.GetString("email.mailgun_api_key"),
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	if cfg.Server.IsProduction() && cfg.JWT.Secret == "change-me-in-production" {
		return nil, fmt.Errorf("AUTHAPI_JWT_SECRET must be set in production")
	}

	return cfg, nil
}
