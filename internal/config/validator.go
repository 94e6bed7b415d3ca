package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars must be set before the server starts
var RequiredEnvVars = []string{
	EnvAdminAPIKey,
}

// LedgerEnvVars are additionally required when the break ledger is enabled
var LedgerEnvVars = []string{
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	required := RequiredEnvVars
	if getEnvAsBool(EnvLedgerEnabled, false) {
		required = append(append([]string{}, required...), LedgerEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-fatal issues
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv(EnvAdminAPIKey) == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "ADMIN_API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if getEnvAsBool(EnvLedgerEnabled, false) && os.Getenv(EnvDBPassword) == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if origins := os.Getenv(EnvCORSAllowedOrigins); origins == "" || origins == "*" {
		warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows every origin")
	}
	return warnings, nil
}
