package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "WAREHOUSE_URL", "WAREHOUSE_CONNECT_TIMEOUT",
		"SNAPSHOT_ENABLED", "SNAPSHOT_SCHEDULE", "SNAPSHOT_DIR",
		"RATE_LIMIT_PER_SECOND", "RATE_LIMIT_BURST", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8086", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DefaultWarehouseURL, cfg.Warehouse.URL)
	assert.Equal(t, 5*time.Second, cfg.Warehouse.ConnectTimeout)
	assert.False(t, cfg.Snapshot.Enabled)
	assert.Equal(t, "0 0 6 * * *", cfg.Snapshot.Schedule)
	assert.Equal(t, 10, cfg.RateLimit.PerSecond)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("WAREHOUSE_URL", "postgres://dwh.internal:5432/sales")
	t.Setenv("WAREHOUSE_CONNECT_TIMEOUT", "250ms")
	t.Setenv("SNAPSHOT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_PER_SECOND", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "postgres://dwh.internal:5432/sales", cfg.Warehouse.URL)
	assert.Equal(t, 250*time.Millisecond, cfg.Warehouse.ConnectTimeout)
	assert.True(t, cfg.Snapshot.Enabled)
	assert.Equal(t, 50, cfg.RateLimit.PerSecond)
}

func TestLoad_RejectsUnknownEnv(t *testing.T) {
	t.Setenv("ENV", "qa")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("RATE_LIMIT_PER_SECOND", "many")
	t.Setenv("WAREHOUSE_CONNECT_TIMEOUT", "soon")
	t.Setenv("SNAPSHOT_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.RateLimit.PerSecond)
	assert.Equal(t, 5*time.Second, cfg.Warehouse.ConnectTimeout)
	assert.False(t, cfg.Snapshot.Enabled)
}
