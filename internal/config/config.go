package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	AdminAPIKey string

	// Game
	TotalEggs             int
	MinReward             int64
	MaxReward             int64
	DefaultDomain         string
	GameDuration          time.Duration
	DeadlineCheckInterval time.Duration
	CORSAllowedOrigins    []string
	TrustedProxies        []string

	// Break ledger
	LedgerEnabled       bool
	LedgerRetentionDays int
	DBUser              string
	DBPassword          string
	DBHost              string
	DBPort              string
	DBName              string
	DBMaxConns          int
	DBMaxConnIdleTime   time.Duration
	DBMaxConnLifetime   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),
		AdminAPIKey: getEnv(EnvAdminAPIKey, ""),

		TotalEggs:             getEnvAsInt(EnvTotalEggs, DefaultTotalEggs),
		MinReward:             int64(getEnvAsInt(EnvMinReward, DefaultMinReward)),
		MaxReward:             int64(getEnvAsInt(EnvMaxReward, DefaultMaxReward)),
		DefaultDomain:         getEnv(EnvDefaultDomain, DefaultDomain),
		GameDuration:          getEnvAsDuration(EnvGameDuration, DefaultGameDuration),
		DeadlineCheckInterval: getEnvAsDuration(EnvDeadlineCheckInterval, DefaultDeadlineCheckInterval),
		CORSAllowedOrigins:    splitList(getEnv(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins)),
		TrustedProxies:        splitList(getEnv(EnvTrustedProxies, "")),

		LedgerEnabled:       getEnvAsBool(EnvLedgerEnabled, false),
		LedgerRetentionDays: getEnvAsInt(EnvLedgerRetentionDays, DefaultLedgerRetentionDays),
		DBUser:              getEnv(EnvDBUser, "postgres"),
		DBPassword:          getEnv(EnvDBPassword, "postgres"),
		DBHost:              getEnv(EnvDBHost, "localhost"),
		DBPort:              getEnv(EnvDBPort, "5432"),
		DBName:              getEnv(EnvDBName, "goldenegg"),
		DBMaxConns:          getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime:   getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime:   getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	if c.AdminAPIKey == "" {
		return fmt.Errorf("%s environment variable must be set for security", EnvAdminAPIKey)
	}
	if c.TotalEggs < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvTotalEggs, c.TotalEggs)
	}
	if c.MinReward < 0 || c.MaxReward < c.MinReward {
		return fmt.Errorf("reward range [%d, %d] is invalid", c.MinReward, c.MaxReward)
	}
	if c.GameDuration <= 0 {
		return fmt.Errorf("%s must be positive", EnvGameDuration)
	}
	if c.DeadlineCheckInterval <= 0 {
		return fmt.Errorf("%s must be positive", EnvDeadlineCheckInterval)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
