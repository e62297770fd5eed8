package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/funsnaps/contact-api/pkg/email"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Defaults for the contact notification addresses.
const (
	DefaultFromEmail = "Fun Snaps Photo Booth <info@funsnaps.ca>"
	DefaultToEmail   = "info@funsnaps.ca"
)

// Config is everything the service reads from its environment.
type Config struct {
	Env         string `mapstructure:"env"`
	LogLevel    string `mapstructure:"log_level"`
	HTTPAddress string `mapstructure:"http_address"`
	ContactPath string `mapstructure:"contact_path"`

	EmailProvider string `mapstructure:"email_provider"`
	ResendAPIKey  string `mapstructure:"resend_api_key"`
	FromEmail     string `mapstructure:"contact_from_email"`
	ToEmails      []string

	StrictEmailValidation bool `mapstructure:"strict_email_validation"`
	EnableCORS            bool `mapstructure:"enable_cors"`
	CORSAllowedOrigins    []string
	MaxBodyBytes          int64 `mapstructure:"max_body_bytes"`
	MetricsEnabled        bool  `mapstructure:"metrics_enabled"`

	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`
	SMTPTLS      string `mapstructure:"smtp_tls"`
	SMTPSSL      bool   `mapstructure:"smtp_ssl"`

	AWSRegion          string `mapstructure:"aws_region"`
	SESAccessKeyID     string `mapstructure:"ses_access_key_id"`
	SESSecretAccessKey string `mapstructure:"ses_secret_access_key"`
	SESEndpoint        string `mapstructure:"ses_endpoint"`
}

// IsDevelopment reports whether diagnostic detail may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Email returns the provider settings for email.New.
func (c *Config) Email() email.Config {
	return email.Config{
		Provider:     c.EmailProvider,
		ResendAPIKey: c.ResendAPIKey,
		SMTP: email.SMTPConfig{
			Host:      c.SMTPHost,
			Port:      c.SMTPPort,
			Username:  c.SMTPUsername,
			Password:  c.SMTPPassword,
			TLSPolicy: c.SMTPTLS,
			SSL:       c.SMTPSSL,
		},
		SES: email.SESConfig{
			Region:    c.AWSRegion,
			AccessKey: c.SESAccessKeyID,
			SecretKey: c.SESSecretAccessKey,
			Endpoint:  c.SESEndpoint,
		},
	}
}

var keys = []string{
	"env", "log_level", "http_address", "contact_path",
	"email_provider", "resend_api_key", "contact_from_email", "contact_to_email",
	"strict_email_validation", "enable_cors", "cors_allowed_origins",
	"max_body_bytes", "metrics_enabled",
	"smtp_host", "smtp_port", "smtp_username", "smtp_password", "smtp_tls", "smtp_ssl",
	"aws_region", "ses_access_key_id", "ses_secret_access_key", "ses_endpoint",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_address", ":8080")
	v.SetDefault("contact_path", "/api/contact")
	v.SetDefault("email_provider", email.ProviderResend)
	v.SetDefault("contact_from_email", DefaultFromEmail)
	v.SetDefault("contact_to_email", DefaultToEmail)
	v.SetDefault("strict_email_validation", true)
	v.SetDefault("enable_cors", true)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("max_body_bytes", 64<<10)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_tls", "mandatory")
}

// Load reads configuration from the environment. Local .env files are
// loaded first when present: ".env.<ENV>" then ".env". Variables already set
// in the process environment always win.
func Load(logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "production"
	}
	for _, file := range []string{".env." + env, ".env"} {
		if err := godotenv.Load(file); err == nil {
			logger.Info("loaded environment file", zap.String("file", file))
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode: %w", err)
	}
	cfg.ToEmails = splitList(v.GetString("contact_to_email"))
	cfg.CORSAllowedOrigins = splitList(v.GetString("cors_allowed_origins"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ContactPath == "" || !strings.HasPrefix(c.ContactPath, "/") {
		return fmt.Errorf("config: CONTACT_PATH must start with '/', got %q", c.ContactPath)
	}
	if len(c.ToEmails) == 0 {
		return fmt.Errorf("config: CONTACT_TO_EMAIL is empty")
	}
	if strings.TrimSpace(c.FromEmail) == "" {
		return fmt.Errorf("config: CONTACT_FROM_EMAIL is empty")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
