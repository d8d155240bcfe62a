package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("S3_BUCKET", "covers")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "Asia/Bangkok", cfg.Timezone)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "covers", cfg.Storage.Bucket)
	assert.Equal(t, "us-east-1", cfg.Storage.Region)
	assert.Equal(t, "uploads", cfg.Storage.Prefix)
	assert.EqualValues(t, 1_000_000, cfg.Storage.MaxBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("S3_BUCKET", "covers")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.test,https://b.test")
	t.Setenv("UPLOAD_PREFIX", "/classes/")
	t.Setenv("S3_ENDPOINT", "http://minio:9000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.JWTExpiresIn)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "classes", cfg.Storage.Prefix)
	assert.Equal(t, "http://minio:9000", cfg.Storage.Endpoint)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_RequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("S3_BUCKET", "covers")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("S3_BUCKET", "covers")
	t.Setenv("UPLOAD_MAX_BYTES", "0")

	_, err := Load()
	assert.Error(t, err)
}
