package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Analytics AnalyticsConfig
	CheckIns  CheckInsConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret   string
	SessionTTL  time.Duration
	AdminEmails []string
}

type RedisConfig struct {
	Addr string // empty disables the snapshot cache
}

type AnalyticsConfig struct {
	Collection string
	CacheTTL   time.Duration // 0 disables caching
}

type CheckInsConfig struct {
	FetchConcurrency int
}

type LogConfig struct {
	Level  string
	Format string
}

var (
	ErrMissingDSN    = errors.New("POSTGRES_DSN is not set")
	ErrMissingSecret = errors.New("JWT_SECRET is not set")
)

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	envPaths := []string{}
	if root := findProjectRoot(); root != "" {
		envPaths = append(envPaths, filepath.Join(root, ".env"))
	}
	envPaths = append(envPaths, ".env")

	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("POSTGRES_DSN", ""),
			MaxOpenConns:    getInt("POSTGRES_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getInt("POSTGRES_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("POSTGRES_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			SessionTTL:  getDuration("SESSION_TTL", 24*time.Hour),
			AdminEmails: getList("ADMIN_EMAILS"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Analytics: AnalyticsConfig{
			Collection: getEnv("ANALYTICS_COLLECTION", "all_analytics_logs"),
			CacheTTL:   getDuration("ANALYTICS_CACHE_TTL", 0),
		},
		CheckIns: CheckInsConfig{
			FetchConcurrency: getInt("CHECKIN_FETCH_CONCURRENCY", 8),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return ErrMissingDSN
	}
	if c.Auth.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Auth.SessionTTL)
	}
	if c.CheckIns.FetchConcurrency <= 0 {
		return fmt.Errorf("CHECKIN_FETCH_CONCURRENCY must be positive, got %d", c.CheckIns.FetchConcurrency)
	}
	return nil
}

// CacheEnabled reports whether the analytics snapshot cache should be wired.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != "" && c.Analytics.CacheTTL > 0
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getList(key string) []string {
	v := getEnv(key, "")
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
