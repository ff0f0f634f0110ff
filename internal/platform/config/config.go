package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendJSONFile = "jsonfile"
	BackendPgsql    = "pgsql"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// StorageBackend selects where state blobs live: a JSON snapshot
	// directory for single-user local runs, or PostgreSQL for a server
	// deployment.
	StorageBackend string
	DataDir        string
	DatabaseURL    string

	// RateLimit is a ulule/limiter formatted rate ("120-M"); empty disables
	// rate limiting.
	RateLimit string

	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_BACKEND", BackendJSONFile)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		StorageBackend: viper.GetString("STORAGE_BACKEND"),
		DataDir:        viper.GetString("DATA_DIR"),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
	}

	if origins := viper.GetString("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
			}
		}
	}

	switch cfg.StorageBackend {
	case BackendJSONFile:
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("DATA_DIR must be set for the %s backend", BackendJSONFile)
		}
	case BackendPgsql:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set for the %s backend", BackendPgsql)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}
