package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is the full service configuration.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	JWT        JWTConfig        `json:"jwt"`
	Security   SecurityConfig   `json:"security"`
	Cache      CacheConfig      `json:"cache"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres    PostgreSQLConfig `json:"postgres"`
	AutoMigrate bool             `json:"autoMigrate"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	ConnectTimeout  int           `json:"connectTimeout"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	PublicKey  string        `json:"publicKey"`
	PrivateKey string        `json:"privateKey"`
	TTL        time.Duration `json:"ttl"`
}

// SecurityConfig holds password hashing configuration
type SecurityConfig struct {
	BcryptCost int `json:"bcryptCost"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled         bool          `json:"enabled"`
	Backend         string        `json:"backend"`
	Prefix          string        `json:"prefix"`
	TTL             time.Duration `json:"ttl"`
	CleanupInterval time.Duration `json:"cleanupInterval"`
	Redis           RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string `json:"address"`
	Password     string `json:"password"`
	Database     int    `json:"database"`
	PoolSize     int    `json:"poolSize"`
	MinIdleConns int    `json:"minIdleConns"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all limited endpoints
type RateLimitsConfig struct {
	Login    RateLimitConfig `json:"login"`
	Register RateLimitConfig `json:"register"`
}

// lookupFunc returns the raw value for key and whether it was set.
type lookupFunc func(key string) (string, bool)

// LoadFromEnv loads configuration from the environment.
// Explicit environment variables win over values read from a .env file,
// which win over defaults.
func LoadFromEnv() (*Config, error) {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}

	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return build(func(key string) (string, bool) {
		value := os.Getenv(key)
		return value, value != ""
	})
}

// LoadFromMap loads configuration from an in-memory map.
// Tests use it to exercise configuration without touching process env.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return build(func(key string) (string, bool) {
		value, ok := envMap[key]
		return value, ok
	})
}

func build(lookup lookupFunc) (*Config, error) {
	r := reader{lookup: lookup}

	config := &Config{
		Server: ServerConfig{
			Host:      r.str("HOST", "0.0.0.0"),
			Port:      r.int("SERVER_PORT", 3001),
			WebDomain: r.str("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     r.bool("DEBUG", false),
		},
		Database: DatabaseConfig{
			AutoMigrate: r.bool("DB_AUTO_MIGRATE", true),
			Postgres: PostgreSQLConfig{
				Host:            r.str("POSTGRES_HOST", "localhost"),
				Port:            r.int("POSTGRES_PORT", 5432),
				Username:        r.str("POSTGRES_USERNAME", "postgres"),
				Password:        r.str("POSTGRES_PASSWORD", ""),
				Database:        r.str("POSTGRES_DATABASE", "jobly"),
				SSLMode:         r.str("POSTGRES_SSL_MODE", "disable"),
				ConnectTimeout:  r.int("POSTGRES_CONNECT_TIMEOUT", 10),
				MaxOpenConns:    r.int("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    r.int("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(r.int("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			PublicKey:  r.str("JWT_PUBLIC_KEY", ""),
			PrivateKey: r.str("JWT_PRIVATE_KEY", ""),
			TTL:        r.duration("JWT_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost: r.int("BCRYPT_WORK_FACTOR", 12),
		},
		Cache: CacheConfig{
			Enabled:         r.bool("CACHE_ENABLED", true),
			Backend:         r.str("CACHE_BACKEND", "memory"),
			Prefix:          r.str("CACHE_PREFIX", "jobly:"),
			TTL:             r.duration("CACHE_TTL", 5*time.Minute),
			CleanupInterval: r.duration("CACHE_CLEANUP_INTERVAL", time.Minute),
			Redis: RedisConfig{
				Address:      r.str("REDIS_ADDRESS", "localhost:6379"),
				Password:     r.str("REDIS_PASSWORD", ""),
				Database:     r.int("REDIS_DATABASE", 0),
				PoolSize:     r.int("REDIS_POOL_SIZE", 10),
				MinIdleConns: r.int("REDIS_MIN_IDLE_CONNS", 2),
			},
		},
		RateLimits: RateLimitsConfig{
			Login: RateLimitConfig{
				Enabled:  r.bool("RATE_LIMIT_LOGIN_ENABLED", true),
				Max:      r.int("RATE_LIMIT_LOGIN_MAX", 5),
				Duration: r.duration("RATE_LIMIT_LOGIN_DURATION", 15*time.Minute),
			},
			Register: RateLimitConfig{
				Enabled:  r.bool("RATE_LIMIT_REGISTER_ENABLED", true),
				Max:      r.int("RATE_LIMIT_REGISTER_MAX", 10),
				Duration: r.duration("RATE_LIMIT_REGISTER_DURATION", time.Hour),
			},
		},
	}

	if err := r.err.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("configuration parse failed: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	errs := new(multierror.Error)

	if strings.TrimSpace(c.JWT.PublicKey) == "" {
		errs = multierror.Append(errs, errors.New("JWT_PUBLIC_KEY is required"))
	}
	if strings.TrimSpace(c.JWT.PrivateKey) == "" {
		errs = multierror.Append(errs, errors.New("JWT_PRIVATE_KEY is required"))
	}
	if c.JWT.TTL <= 0 {
		errs = multierror.Append(errs, errors.New("JWT_TTL must be positive"))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = multierror.Append(errs, fmt.Errorf("SERVER_PORT %d is out of range", c.Server.Port))
	}

	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		errs = multierror.Append(errs, fmt.Errorf("BCRYPT_WORK_FACTOR must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	if c.Cache.Enabled {
		switch c.Cache.Backend {
		case "memory":
		case "redis":
			if strings.TrimSpace(c.Cache.Redis.Address) == "" {
				errs = multierror.Append(errs, errors.New("REDIS_ADDRESS is required for the redis cache backend"))
			}
		default:
			errs = multierror.Append(errs, fmt.Errorf("CACHE_BACKEND must be one of: memory, redis (got %q)", c.Cache.Backend))
		}
	}

	for name, rl := range map[string]RateLimitConfig{"LOGIN": c.RateLimits.Login, "REGISTER": c.RateLimits.Register} {
		if rl.Enabled && (rl.Max <= 0 || rl.Duration <= 0) {
			errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_%s_MAX and RATE_LIMIT_%s_DURATION must be positive", name, name))
		}
	}

	return errs.ErrorOrNil()
}

// reader converts looked-up values, collecting malformed ones instead of
// silently falling back to the default.
type reader struct {
	lookup lookupFunc
	err    *multierror.Error
}

func (r *reader) str(key, defaultValue string) string {
	if value, ok := r.lookup(key); ok {
		return value
	}
	return defaultValue
}

func (r *reader) int(key string, defaultValue int) int {
	value, ok := r.lookup(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		r.err = multierror.Append(r.err, fmt.Errorf("%s: %q is not an integer", key, value))
		return defaultValue
	}
	return n
}

func (r *reader) bool(key string, defaultValue bool) bool {
	value, ok := r.lookup(key)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		r.err = multierror.Append(r.err, fmt.Errorf("%s: %q is not a boolean", key, value))
		return defaultValue
	}
	return b
}

func (r *reader) duration(key string, defaultValue time.Duration) time.Duration {
	value, ok := r.lookup(key)
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		r.err = multierror.Append(r.err, fmt.Errorf("%s: %q is not a duration", key, value))
		return defaultValue
	}
	return d
}
