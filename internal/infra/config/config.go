// Package config loads runtime settings from the environment with the
// PRIMESHIP_ prefix, e.g. PRIMESHIP_PORT or PRIMESHIP_STORAGE_DRIVER.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type Config struct {
	Port          string
	StorageDriver string
	MySQLDSN      string
	PostgresDSN   string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	LogLevel string
	LogJSON  bool

	// SeedDemo loads the demo catalog into the memory store on boot.
	SeedDemo bool
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PRIMESHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("storage_driver", StorageMemory)
	v.SetDefault("mysql_dsn", "user:pass@tcp(mysql:3306)/primeship?parseTime=true")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("jwt_secret", "dev-secret-change-me")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("bcrypt_cost", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("seed_demo", true)

	cfg := &Config{
		Port:          v.GetString("port"),
		StorageDriver: v.GetString("storage_driver"),
		MySQLDSN:      v.GetString("mysql_dsn"),
		PostgresDSN:   v.GetString("postgres_dsn"),
		JWTSecret:     v.GetString("jwt_secret"),
		TokenTTL:      v.GetDuration("token_ttl"),
		BcryptCost:    v.GetInt("bcrypt_cost"),
		LogLevel:      v.GetString("log_level"),
		LogJSON:       v.GetBool("log_json"),
		SeedDemo:      v.GetBool("seed_demo"),
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageMySQL:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}
