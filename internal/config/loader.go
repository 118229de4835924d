package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (CODECTX_*)
// 2. Config file (.codectx/config.yml or .codectx/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".codectx")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("CODECTX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("walk.max_depth")
	v.BindEnv("walk.max_file_size")
	v.BindEnv("walk.ignore_patterns")
	v.BindEnv("walk.file_patterns")

	defaults := Default()
	v.SetDefault("walk.max_depth", defaults.Walk.MaxDepth)
	v.SetDefault("walk.max_file_size", defaults.Walk.MaxFileSize)
	v.SetDefault("walk.ignore_patterns", defaults.Walk.IgnorePatterns)
	v.SetDefault("walk.file_patterns", defaults.Walk.FilePatterns)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Walk.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid configuration: walk.max_depth must not be negative")
	}
	if cfg.Walk.MaxFileSize < 0 {
		return nil, fmt.Errorf("invalid configuration: walk.max_file_size must not be negative")
	}

	return cfg, nil
}
