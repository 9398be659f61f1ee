package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

type Settings struct {
	Workers    int    `mapstructure:"workers"`
	DBPath     string `mapstructure:"db_path"`
	ServePort  int    `mapstructure:"serve_port"`
	BufferSize int    `mapstructure:"buffer_size"`
	DebounceMs int    `mapstructure:"debounce_ms"`
}

var Default = Settings{
	Workers:    runtime.NumCPU(),
	DBPath:     "history.db",
	ServePort:  9200,
	BufferSize: 100,
	DebounceMs: 500,
}

// Load reads ~/.fileset/config.yaml merged with FILESET_* environment
// variables, falling back to Default for anything unset.
func Load() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home dir: %w", err)
	}

	configDir := filepath.Join(home, ".fileset")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetDefault("workers", Default.Workers)
	viper.SetDefault("db_path", filepath.Join(configDir, Default.DBPath))
	viper.SetDefault("serve_port", Default.ServePort)
	viper.SetDefault("buffer_size", Default.BufferSize)
	viper.SetDefault("debounce_ms", Default.DebounceMs)

	viper.SetEnvPrefix("FILESET")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &s, nil
}
