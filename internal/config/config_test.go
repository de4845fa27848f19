package config

import (
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no stray .env files
	t.Setenv("API_PORT", "")
	t.Setenv("CURRENT_ENV", "")
	t.Setenv("AUTH_MODE", "")
	t.Setenv("DB_MAX_CONNS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "blogger", cfg.DbName)
	assert.Equal(t, int32(10), cfg.DbMaxConns)
	assert.Equal(t, 50*time.Second, cfg.DbConnectTimeout)
	assert.True(t, cfg.DbAutoMigrate)
	assert.Equal(t, "static", cfg.AuthMode)
	assert.Equal(t, "dummy-token", cfg.AuthToken)
	assert.False(t, cfg.SanitizeHTML)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_PORT", "9000")
	t.Setenv("CURRENT_ENV", "PROD")
	t.Setenv("AUTH_MODE", "JWT")
	t.Setenv("DB_MAX_CONNS", "3")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "prod", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "jwt", cfg.AuthMode)
	assert.Equal(t, int32(3), cfg.DbMaxConns)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
}

func TestLoadConfig_RejectsUnknownAuthMode(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AUTH_MODE", "oauth")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("missing db settings is fatal", func(t *testing.T) {
		_, err := (&Config{AuthMode: "static"}).Validate()
		require.Error(t, err)
	})

	t.Run("jwt without secret is fatal", func(t *testing.T) {
		c := &Config{DbHost: "h", DbUser: "u", DbName: "n", AuthMode: "jwt"}
		_, err := c.Validate()
		require.Error(t, err)
	})

	t.Run("default token only warns", func(t *testing.T) {
		c := &Config{DbHost: "h", DbUser: "u", DbName: "n", AuthMode: "static", AuthToken: "dummy-token", Env: "dev"}
		warnings, err := c.Validate()
		require.NoError(t, err)
		assert.Len(t, warnings, 1)
	})
}

func TestAllowedOrigins(t *testing.T) {
	c := &Config{EC2IP: "10.0.0.1", FrontendPort: "3000", DomainName: "blog.example.com"}
	assert.Equal(t, []string{
		"http://10.0.0.1:3000",
		"http://blog.example.com",
		"https://blog.example.com",
	}, c.AllowedOrigins())
}

func TestDSN(t *testing.T) {
	c := &Config{DbUser: "u", DbPass: "secret", DbHost: "db", DbPort: "5432", DbName: "blogger", DbSSLMode: "disable"}
	assert.Equal(t, "postgres://u:secret@db:5432/blogger?sslmode=disable", c.GetDSN())
	assert.NotContains(t, c.GetDSNSafe(), "secret")
}

func TestDSN_EscapesCredentials(t *testing.T) {
	c := &Config{DbUser: "app user", DbPass: "p@ss:w/rd", DbHost: "db", DbPort: "5432", DbName: "blogger", DbSSLMode: "require"}
	assert.Equal(t, "postgres://app%20user:p%40ss%3Aw%2Frd@db:5432/blogger?sslmode=require", c.GetDSN())

	u, err := url.Parse(c.GetDSN())
	require.NoError(t, err)
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss:w/rd", pass)
	assert.Equal(t, "app user", u.User.Username())
	assert.Equal(t, "postgres://app%20user:xxxxx@db:5432/blogger?sslmode=require", c.GetDSNSafe())
}

// chdir switches the working directory for the duration of the test
// (equivalent of testing.T.Chdir, unavailable before Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
