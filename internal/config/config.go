package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName      string
	AppEnv       string
	AppURL       string
	Port         string
	SupportEmail string

	// Content (Hashnode headless CMS)
	HashnodeEndpoint string
	HashnodeHost     string
	WebhookSecret    string

	// Snapshot storage ("s3" or "local")
	StorageDriver    string
	SnapshotKey      string
	LocalStoragePath string

	// Storage - S3-compatible (AWS S3, MinIO, Cloudflare R2, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services

	// Email
	EmailFrom        string
	ContactEmail     string
	ResendAPIKey     string
	ResendAudienceID string

	// Observability (optional)
	SentryDSN string

	// HTTP client timeout for remote CMS calls
	FetchTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName:      envString("APP_NAME", "ajitama.dev"),
		AppEnv:       envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:       envRequired("APP_URL"), // Required: base URL for canonical and sitemap links
		Port:         envString("PORT", "8090"),
		SupportEmail: envString("SUPPORT_EMAIL", "fardan.nozami@gmail.com"),

		HashnodeEndpoint: envString("HASHNODE_ENDPOINT", "https://gql.hashnode.com/"),
		HashnodeHost:     envString("HASHNODE_HOST", ""),
		WebhookSecret:    envString("HASHNODE_WEBHOOK_SECRET", ""),

		StorageDriver:    envString("STORAGE_DRIVER", "local"),
		SnapshotKey:      envString("SNAPSHOT_KEY", "posts.json"),
		LocalStoragePath: envString("LOCAL_STORAGE_PATH", "./data"),

		S3Region:    envString("S3_REGION", ""),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers

		EmailFrom:        envString("EMAIL_FROM", "noreply@ajitama.dev"),
		ContactEmail:     envString("CONTACT_EMAIL", "fardan.nozami@gmail.com"),
		ResendAPIKey:     envString("RESEND_API_KEY", ""),
		ResendAudienceID: envString("RESEND_AUDIENCE_ID", ""),

		SentryDSN: envString("SENTRY_DSN", ""),

		FetchTimeout: envDuration("FETCH_TIMEOUT", 15*time.Second),
	}

	if cfg.StorageDriver != "s3" && cfg.StorageDriver != "local" {
		slog.Error("config invalid STORAGE_DRIVER, expected 's3' or 'local'", "value", cfg.StorageDriver)
		os.Exit(1)
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures required services are configured for production
// deployments. Development tolerates an unconfigured CMS; reads then degrade
// to whatever snapshot exists.
func validateProduction(cfg *Config) {
	if cfg.HashnodeHost == "" {
		slog.Error("production deployment requires HASHNODE_HOST",
			"hint", "set APP_ENV=development to serve cached content only")
		os.Exit(1)
	}
	if cfg.WebhookSecret == "" {
		slog.Error("production deployment requires HASHNODE_WEBHOOK_SECRET",
			"hint", "without it the refresh webhook rejects every request")
		os.Exit(1)
	}
	if cfg.StorageDriver == "s3" && (cfg.S3Bucket == "" || cfg.S3Region == "") {
		slog.Error("production S3 storage requires S3_BUCKET and S3_REGION")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
