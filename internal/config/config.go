package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendMinIO = "minio"
	BackendS3    = "s3"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `envconfig:"HOST"`
	Port               string `envconfig:"PORT" default:"5432"`
	User               string `envconfig:"USER"`
	Password           string `envconfig:"PASSWORD"`
	Name               string `envconfig:"NAME"`
	SSLMode            string `envconfig:"SSLMODE" default:"disable"`
	MaxOpenConns       int    `envconfig:"MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns       int    `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetimeSec int    `envconfig:"CONN_MAX_LIFETIME_SEC" default:"300"`
}

// StorageConfig holds object storage settings. Endpoint is required for MinIO
// and optional for S3, where an empty value means the AWS regional endpoint.
type StorageConfig struct {
	Backend       string        `envconfig:"BACKEND" default:"minio"`
	Endpoint      string        `envconfig:"ENDPOINT"`
	AccessKey     string        `envconfig:"ACCESS_KEY"`
	SecretKey     string        `envconfig:"SECRET_KEY"`
	Bucket        string        `envconfig:"BUCKET"`
	Region        string        `envconfig:"REGION" default:"us-east-1"`
	UseSSL        bool          `envconfig:"USE_SSL" default:"false"`
	PresignExpiry time.Duration `envconfig:"PRESIGN_EXPIRY" default:"5m"`
}

// DRSConfig holds settings for the Document Record Service client.
type DRSConfig struct {
	BaseURL   string        `envconfig:"BASE_URL"`
	APIKey    string        `envconfig:"API_KEY"`
	AccountID string        `envconfig:"ACCOUNT_ID"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// AuthConfig configures bearer token validation. Exactly one of Secret
// (HS256) or PublicKey (RS256, PEM encoded) is expected.
type AuthConfig struct {
	Secret    string `envconfig:"SECRET"`
	PublicKey string `envconfig:"PUBLIC_KEY"`
	Issuer    string `envconfig:"ISSUER"`
	Audience  string `envconfig:"AUDIENCE"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string         `envconfig:"APP_HOST" default:"localhost:8080"`
	Port     string         `envconfig:"PORT" default:"8080"`
	Timezone string         `envconfig:"APP_TIMEZONE" default:"UTC"`
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
	Database DatabaseConfig `envconfig:"DB"`
	Storage  StorageConfig  `envconfig:"STORAGE"`
	DRS      DRSConfig      `envconfig:"DRS"`
	Auth     AuthConfig     `envconfig:"JWT"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() (*AppConfig, error) {
	c := new(AppConfig)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}
	return c, nil
}

// Location returns the configured timezone, falling back to UTC when the
// name cannot be resolved.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate reports every setting the HTTP server needs but is missing.
func (c *AppConfig) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case BackendMinIO:
		if c.Storage.Endpoint == "" {
			errs = append(errs, errors.New("STORAGE_ENDPOINT is required for the minio backend"))
		}
		if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
			errs = append(errs, errors.New("STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required for the minio backend"))
		}
	case BackendS3:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORAGE_BACKEND %q", c.Storage.Backend))
	}
	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("STORAGE_BUCKET is required"))
	}
	if c.DRS.BaseURL == "" {
		errs = append(errs, errors.New("DRS_BASE_URL is required"))
	}
	if c.Auth.Secret == "" && c.Auth.PublicKey == "" {
		errs = append(errs, errors.New("one of JWT_SECRET or JWT_PUBLIC_KEY is required"))
	}

	return errors.Join(errs...)
}
