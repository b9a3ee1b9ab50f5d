package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultAPIBase = "http://localhost:8000"

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Cache   CacheConfig
	Session SessionConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Host               string
	Port               int
	CORSAllowedOrigins []string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CacheConfig struct {
	Backend string
	LRUSize int
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type SessionConfig struct {
	File string
}

type LoggerConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from the environment, after merging any .env file found in the
// working directory or its parent.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("API_TIMEOUT", "30s")
	v.SetDefault("CACHE_BACKEND", "memory")
	v.SetDefault("CACHE_LRU_SIZE", 512)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "aivault:cache:")
	v.SetDefault("SESSION_FILE", defaultSessionFile())
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("METRICS_ENABLED", true)

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("API_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:               v.GetString("SERVER_HOST"),
			Port:               v.GetInt("SERVER_PORT"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		API: APIConfig{
			BaseURL: apiBase(v),
			Timeout: timeout,
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(v.GetString("CACHE_BACKEND")),
			LRUSize: v.GetInt("CACHE_LRU_SIZE"),
			Redis: RedisConfig{
				Addr:     v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
				Prefix:   v.GetString("REDIS_PREFIX"),
			},
		},
		Session: SessionConfig{
			File: v.GetString("SESSION_FILE"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	return cfg, nil
}

// apiBase honours the front end's VITE_API_BASE so an existing .env keeps working.
func apiBase(v *viper.Viper) string {
	for _, key := range []string{"API_BASE", "VITE_API_BASE"} {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return defaultAPIBase
}

func loadEnvFile() {
	for _, p := range []string{".env", "../.env"} {
		if _, err := os.Stat(p); err == nil {
			// Already-set variables win over the file.
			_ = godotenv.Load(p)
			return
		}
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".aivault-session.json"
	}
	return filepath.Join(home, ".aivault", "session.json")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
