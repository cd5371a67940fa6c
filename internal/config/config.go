package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Ban       BanConfig
	GitHub    GitHubConfig
	CORS      CORSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// SecurityConfig holds the process-wide secrets. MasterKeyB64 is the
// 32-byte vault key; APIKeyHMACSecretB64 keys the API-key fingerprint.
type SecurityConfig struct {
	MasterKeyB64        string
	APIKeyHMACSecretB64 string
}

// RateLimitConfig holds the two fixed-window rate policies
type RateLimitConfig struct {
	GlobalPerIPPerMin int
	PerKeyPerMin      int
}

// BanConfig holds the failure/ban state machine tunables
type BanConfig struct {
	AfterFails int
	FailWindow time.Duration
	BanTTL     time.Duration
}

// GitHubConfig holds GitHub API settings
type GitHubConfig struct {
	APIBaseURL string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	Origin string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "appforge"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Security: SecurityConfig{
			MasterKeyB64:        getEnv("MASTER_KEY_B64", ""),
			APIKeyHMACSecretB64: getEnv("APIKEY_HMAC_SECRET_B64", ""),
		},
		RateLimit: RateLimitConfig{
			GlobalPerIPPerMin: getEnvAsInt("RATE_GLOBAL_PER_IP_PER_MIN", 120),
			PerKeyPerMin:      getEnvAsInt("RATE_PER_KEY_PER_MIN", 300),
		},
		Ban: BanConfig{
			AfterFails: getEnvAsInt("BAN_AFTER_FAILS", 5),
			FailWindow: getEnvAsDuration("FAIL_WINDOW", 900*time.Second),
			BanTTL:     getEnvAsDuration("BAN_TTL", 3600*time.Second),
		},
		GitHub: GitHubConfig{
			APIBaseURL: getEnv("GITHUB_API_BASE_URL", "https://api.github.com"),
		},
		CORS: CORSConfig{
			Origin: getEnv("CORS_ORIGIN", "*"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
