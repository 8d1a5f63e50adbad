package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	LogLevel    string `yaml:"log_level"`
	APIBaseURL  string `yaml:"api_base_url"`
	AuthBaseURL string `yaml:"auth_base_url"`

	// DataMode is remote (café API is authoritative) or local
	DataMode       string `yaml:"data_mode"`
	PersistBackend string `yaml:"persist_backend"`
	SQLitePath     string `yaml:"sqlite_path"`
	Redis          Redis  `yaml:"redis"`

	JWTSecret string        `yaml:"jwt_secret"`
	JWTTTL    time.Duration `yaml:"jwt_ttl"`

	RequestTimeout     time.Duration `yaml:"request_timeout"`
	RateLimitRPS       float64       `yaml:"rate_limit_rps"`
	DailyRevenueTarget float64       `yaml:"daily_revenue_target"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Default is the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Port:               "8080",
		GinMode:            "debug",
		LogLevel:           "info",
		APIBaseURL:         "http://localhost:8082/api/v1",
		DataMode:           "remote",
		PersistBackend:     "sqlite",
		SQLitePath:         "cafe_admin.db",
		Redis:              Redis{Addr: "localhost:6379", Prefix: "cafe-admin:"},
		JWTSecret:          "cafe_admin_super_secret_2024",
		JWTTTL:             24 * time.Hour,
		RequestTimeout:     10 * time.Second,
		RateLimitRPS:       20,
		DailyRevenueTarget: 500,
	}
}

// Load reads .env if present, then the YAML file named by CONFIG_FILE,
// then lets environment variables override individual keys.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.AuthBaseURL == "" {
		cfg.AuthBaseURL = cfg.APIBaseURL
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.APIBaseURL = getEnv("API_BASE_URL", c.APIBaseURL)
	c.AuthBaseURL = getEnv("AUTH_BASE_URL", c.AuthBaseURL)
	c.DataMode = getEnv("DATA_MODE", c.DataMode)
	c.PersistBackend = getEnv("PERSIST_BACKEND", c.PersistBackend)
	c.SQLitePath = getEnv("SQLITE_PATH", c.SQLitePath)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.Prefix = getEnv("REDIS_PREFIX", c.Redis.Prefix)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)

	var err error
	if c.Redis.DB, err = getInt("REDIS_DB", c.Redis.DB); err != nil {
		return err
	}
	if c.JWTTTL, err = getDuration("JWT_TTL", c.JWTTTL); err != nil {
		return err
	}
	if c.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", c.RequestTimeout); err != nil {
		return err
	}
	if c.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", c.RateLimitRPS); err != nil {
		return err
	}
	if c.DailyRevenueTarget, err = getFloat("DAILY_REVENUE_TARGET", c.DailyRevenueTarget); err != nil {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.DataMode {
	case "remote", "local":
	default:
		return fmt.Errorf("DATA_MODE must be remote or local, got %q", c.DataMode)
	}
	switch c.PersistBackend {
	case "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("PERSIST_BACKEND must be sqlite, redis or memory, got %q", c.PersistBackend)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

// getDuration accepts Go durations ("15s") or a bare number of seconds
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
