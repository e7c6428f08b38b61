package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultJWTExpirationHours = 24

// Config holds every runtime setting of the API server
type Config struct {
	ServerPort         string
	JWTSecret          string
	JWTExpirationHours int64
	PasswordHashing    bool
	AutoMigrate        bool
	SeedFile           string
	LogEnv             string
	LogLevel           string
	GinMode            string
	DB                 *DBConfig
}

// Load reads the configuration from environment variables.
// An empty JWT_SECRET_KEY is accepted; login then fails with a configuration error.
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:         getenv("SERVER_PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: defaultJWTExpirationHours,
		SeedFile:           os.Getenv("SEED_FILE"),
		LogEnv:             getenv("LOG_ENV", "dev"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		GinMode:            os.Getenv("GIN_MODE"),
		DB:                 dbCfg,
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.ParseInt(v, 10, 64)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q", v)
		}
		cfg.JWTExpirationHours = hours
	}

	if cfg.PasswordHashing, err = parseBool("PASSWORD_HASHING", false); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate, err = parseBool("AUTO_MIGRATE", true); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
