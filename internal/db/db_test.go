package db

import (
	"context"
	"os"
	"testing"
	"time"

	"blogger/internal/config"

	"github.com/stretchr/testify/require"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testConfig() *config.Config {
	return &config.Config{
		DbHost:           envOr("DB_HOST", "localhost"),
		DbPort:           envOr("DB_PORT", "5432"),
		DbUser:           envOr("DB_USER", "blogger"),
		DbPass:           envOr("DB_PASSWORD", "blogger"),
		DbName:           envOr("DB_NAME", "blogger_test"),
		DbSSLMode:        "disable",
		DbMaxConns:       4,
		DbConnectTimeout: 2 * time.Second,
	}
}

func TestConnectInvalidDSN(t *testing.T) {
	cfg := testConfig()
	cfg.DbHost = "127.0.0.1"
	cfg.DbPort = "1"
	cfg.DbConnectTimeout = time.Second

	_, err := NewPostgresConnection(context.Background(), cfg)
	require.Error(t, err)
}

func TestMigrateAndVerifyTables(t *testing.T) {
	ctx := context.Background()
	pool, err := NewPostgresConnection(ctx, testConfig())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer pool.Close()

	require.NoError(t, Migrate(ctx, pool, "up"))
	// idempotent
	require.NoError(t, Migrate(ctx, pool, "up"))
	require.NoError(t, VerifyTables(ctx, pool))
}
