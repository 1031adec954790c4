package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the store settings read from the environment.
type Config struct {
	StoreType       string
	PreserveCreated bool
	LogLevel        logrus.Level
}

// Load reads DOCSTORE_* environment variables, falling back to defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("docstore")
	v.AutomaticEnv()

	v.SetDefault("store_type", "memory")
	v.SetDefault("preserve_created", false)
	v.SetDefault("log_level", "info")

	level, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DOCSTORE_LOG_LEVEL: %w", err)
	}

	return Config{
		StoreType:       v.GetString("store_type"),
		PreserveCreated: v.GetBool("preserve_created"),
		LogLevel:        level,
	}, nil
}
