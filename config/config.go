package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig
	Logger  LoggerConfig
	Search  SearchConfig
	Tasks   TasksConfig
}

type StorageConfig struct {
	Path string // JSON task document, e.g. "tasks.json"
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         string // the TUI owns the terminal, so logs go to a file
}

type SearchConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

type TasksConfig struct {
	Timezone string // IANA timezone for resolving relative deadlines
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config and .
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("tasktracker")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Storage.Path = viper.GetString("storage.path")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.File = viper.GetString("logger.file")

	cfg.Search.CacheSize = viper.GetInt("search.cache_size")
	cfg.Search.CacheTTL = viper.GetDuration("search.cache_ttl")

	cfg.Tasks.Timezone = viper.GetString("tasks.timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("storage.path", "tasks.json")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "prod")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)
	viper.SetDefault("logger.file", "task-tracker.log")
	viper.SetDefault("search.cache_size", 128)
	viper.SetDefault("search.cache_ttl", "30s")
	viper.SetDefault("tasks.timezone", "Local")
}
