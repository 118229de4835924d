// Package config loads the tool's configuration: defaults, then
// .codectx/config.yml, then CODECTX_* environment variables (env wins).
package config

// Config represents the complete configuration.
type Config struct {
	Walk WalkConfig `yaml:"walk" mapstructure:"walk"`
}

// WalkConfig tunes traversal and analysis.
type WalkConfig struct {
	MaxDepth       int      `yaml:"max_depth" mapstructure:"max_depth"`             // analysis depth bound
	MaxFileSize    int64    `yaml:"max_file_size" mapstructure:"max_file_size"`     // analysis size bound in bytes, 0 disables
	IgnorePatterns []string `yaml:"ignore_patterns" mapstructure:"ignore_patterns"` // extra ignore-file lines
	FilePatterns   []string `yaml:"file_patterns" mapstructure:"file_patterns"`     // default analysis allow-list
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Walk: WalkConfig{
			MaxDepth:       5,
			MaxFileSize:    1 << 20,
			IgnorePatterns: []string{},
			FilePatterns:   []string{},
		},
	}
}
