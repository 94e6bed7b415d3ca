package config

import "time"

// Environment variable names
const (
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvLogDir                = "LOG_DIR"
	EnvEnvironment           = "ENVIRONMENT"
	EnvVersion               = "VERSION"
	EnvAdminAPIKey           = "ADMIN_API_KEY"
	EnvTotalEggs             = "TOTAL_EGGS"
	EnvMinReward             = "MIN_REWARD"
	EnvMaxReward             = "MAX_REWARD"
	EnvDefaultDomain         = "DEFAULT_DOMAIN"
	EnvGameDuration          = "GAME_DURATION"
	EnvDeadlineCheckInterval = "DEADLINE_CHECK_INTERVAL"
	EnvCORSAllowedOrigins    = "CORS_ALLOWED_ORIGINS"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
	EnvLedgerEnabled         = "LEDGER_ENABLED"
	EnvLedgerRetentionDays   = "LEDGER_RETENTION_DAYS"
	EnvDBUser                = "DB_USER"
	EnvDBPassword            = "DB_PASSWORD"
	EnvDBHost                = "DB_HOST"
	EnvDBPort                = "DB_PORT"
	EnvDBName                = "DB_NAME"
	EnvDBMaxConns            = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime     = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime     = "DB_MAX_CONN_LIFETIME"
)

// Defaults
const (
	DefaultPort                  = 8080
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultLogDir                = "logs"
	DefaultEnvironment           = "dev"
	DefaultVersion               = "dev"
	DefaultTotalEggs             = 9
	DefaultMinReward             = 50
	DefaultMaxReward             = 500
	DefaultDomain                = "dammedaga.fun"
	DefaultGameDuration          = 24 * time.Hour
	DefaultDeadlineCheckInterval = time.Minute
	DefaultCORSAllowedOrigins    = "*"
	DefaultLedgerRetentionDays   = 30
	DefaultDBMaxConns            = 20
	DefaultDBMaxConnIdleTime     = 5 * time.Minute
	DefaultDBMaxConnLifetime     = 30 * time.Minute
)
