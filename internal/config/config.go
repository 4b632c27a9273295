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
	AppEnv string
	Port   string

	// Database (driver switch via ENV, default sqlite)
	DBDriver     string
	DBConnection string

	// Sessions
	JWTSecret string
	JWTExpiry time.Duration

	// Uploads
	UploadDir        string
	UploadBaseURL    string
	UploadMaxBytes   int64 // raw upload ceiling
	UploadTargetSize int64 // compressed payload target, 0 disables the quality loop
	CompressImages   bool

	// Remote object storage (S3-compatible). Leaving the bucket unset is
	// the signal to run local-only; it is not an error.
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppEnv: envString("APP_ENV", "development"),
		Port:   envString("PORT", "8090"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/calendar.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		JWTSecret: envString("JWT_SECRET", ""),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		UploadDir:        envString("UPLOAD_DIR", "./data/uploads"),
		UploadBaseURL:    envString("UPLOAD_BASE_URL", "/uploads"),
		UploadMaxBytes:   envInt64("UPLOAD_MAX_BYTES", 25<<20),
		UploadTargetSize: envInt64("UPLOAD_TARGET_BYTES", 5<<20),
		CompressImages:   envBool("UPLOAD_COMPRESSION", true),

		S3Region:    envString("S3_REGION", "ap-southeast-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),

		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			slog.Error("config required env var missing", "key", "JWT_SECRET")
			os.Exit(1)
		}
		slog.Warn("JWT_SECRET not set, using development default")
		cfg.JWTSecret = "development-secret"
	}

	return cfg
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

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("config invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
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

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
