package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AuthModeStatic = "static"
	AuthModeJWT    = "jwt"
)

type Config struct {
	Port string
	Env  string // dev|prod

	DbHost           string
	DbPort           string
	DbUser           string
	DbPass           string
	DbName           string
	DbSSLMode        string
	DbMaxConns       int32
	DbConnectTimeout time.Duration
	DbAutoMigrate    bool

	AuthMode       string // static|jwt
	AuthToken      string
	JWTSecret      string
	AccessTokenTTL time.Duration

	Log      string
	LogLevel string
	LogDir   string

	SanitizeHTML bool

	EC2IP        string
	FrontendPort string
	DomainName   string
}

// LoadConfig reads .env files, then environment variables with defaults.
// It does not log, so the logger can be built from its result.
func LoadConfig() (*Config, error) {
	return load(viper.New())
}

// LoadConfigFrom is LoadConfig over a caller-owned viper instance (cobra binds flags to it).
func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// .env.current picks the environment, .env.<env> carries its values.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.current")

	v.AutomaticEnv()
	setDefaults(v)

	env := strings.ToLower(strings.TrimSpace(v.GetString("CURRENT_ENV")))
	_ = godotenv.Load(".env." + env)

	cfg := &Config{
		Port: v.GetString("API_PORT"),
		Env:  env,

		DbHost:           v.GetString("DB_HOST"),
		DbPort:           v.GetString("DB_PORT"),
		DbUser:           v.GetString("DB_USER"),
		DbPass:           v.GetString("DB_PASSWORD"),
		DbName:           v.GetString("DB_NAME"),
		DbSSLMode:        v.GetString("DB_SSLMODE"),
		DbMaxConns:       v.GetInt32("DB_MAX_CONNS"),
		DbConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		DbAutoMigrate:    v.GetBool("DB_AUTO_MIGRATE"),

		AuthMode:       strings.ToLower(v.GetString("AUTH_MODE")),
		AuthToken:      v.GetString("AUTH_TOKEN"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		AccessTokenTTL: v.GetDuration("ACCESS_TOKEN_EXPIRY"),

		Log:      v.GetString("LOG"),
		LogLevel: strings.ToLower(v.GetString("LOGLEVEL")),
		LogDir:   v.GetString("LOG_DIR"),

		SanitizeHTML: v.GetBool("SANITIZE_HTML"),

		EC2IP:        v.GetString("EC2_IP"),
		FrontendPort: v.GetString("FRONTEND_PORT"),
		DomainName:   v.GetString("DOMAIN_NAME"),
	}

	if cfg.DbMaxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", cfg.DbMaxConns)
	}
	if cfg.AuthMode != AuthModeStatic && cfg.AuthMode != AuthModeJWT {
		return nil, fmt.Errorf("AUTH_MODE must be static or jwt, got %q", cfg.AuthMode)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_PORT", "5001")
	v.SetDefault("CURRENT_ENV", "dev")

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "blogger")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONNECT_TIMEOUT", "50s")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("AUTH_MODE", AuthModeStatic)
	v.SetDefault("AUTH_TOKEN", "dummy-token")
	v.SetDefault("ACCESS_TOKEN_EXPIRY", "24h")

	v.SetDefault("LOGLEVEL", "info")
	v.SetDefault("LOG_DIR", "logs")

	v.SetDefault("SANITIZE_HTML", false)
}

// Validate returns warnings and a fatal error when the config cannot work.
func (c *Config) Validate() (warnings []string, err error) {
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if c.AuthMode == AuthModeJWT && strings.TrimSpace(c.JWTSecret) == "" {
		return nil, fmt.Errorf("AUTH_MODE=jwt requires JWT_SECRET")
	}
	if c.AuthMode == AuthModeStatic && c.AuthToken == "dummy-token" {
		warnings = append(warnings, "AUTH_TOKEN is the built-in default")
	}

	if !c.IsDev() && c.DomainName == "" && c.EC2IP == "" {
		warnings = append(warnings, "no CORS origins configured (DOMAIN_NAME/EC2_IP)")
	}

	return warnings, nil
}

func (c *Config) IsDev() bool { return c.Env == "dev" }

// AllowedOrigins lists the CORS origins for non-dev environments.
func (c *Config) AllowedOrigins() []string {
	var out []string
	if c.EC2IP != "" {
		out = append(out, fmt.Sprintf("http://%s:%s", c.EC2IP, c.FrontendPort))
	}
	if c.DomainName != "" {
		out = append(out, "http://"+c.DomainName, "https://"+c.DomainName)
	}
	return out
}

// GetDSN is the full DSN, password included. User and password are escaped.
func (c *Config) GetDSN() string {
	u := c.dsn()
	return u.String()
}

// GetDSNSafe is the DSN with the password masked, for logs.
func (c *Config) GetDSNSafe() string {
	u := c.dsn()
	return u.Redacted()
}

func (c *Config) dsn() url.URL {
	return url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DbUser, c.DbPass),
		Host:     c.DbHost + ":" + c.DbPort,
		Path:     "/" + c.DbName,
		RawQuery: url.Values{"sslmode": {c.DbSSLMode}}.Encode(),
	}
}
