package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	TrackingAPIURL string `env:"TRACKING_API_URL, default=https://backend-umdv.onrender.com/api/v1"`

	Admin   AdminConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// AdminConfig is the single operator account. ADMIN_PASSWORD_HASH, a bcrypt
// hash, takes precedence over the plaintext ADMIN_PASSWORD.
type AdminConfig struct {
	Username     string `env:"ADMIN_USERNAME,      default=trackit"`
	Password     string `env:"ADMIN_PASSWORD,      default=track123"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET,        required"`
	TTL          time.Duration `env:"SESSION_TTL,           default=12h"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

// MongoConfig points at the audit database. An empty URI disables auditing.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=tracknest_admin"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// AuditEnabled reports whether a Mongo audit store is configured.
func (c *Config) AuditEnabled() bool {
	return c.Mongo.URI != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l, then checks it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.TrackingAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("TRACKING_API_URL %q is not an absolute http(s) URL", c.TrackingAPIURL)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	if c.Admin.Username == "" {
		return fmt.Errorf("ADMIN_USERNAME is empty")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return fmt.Errorf("one of ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	return nil
}
