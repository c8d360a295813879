package commitmsg

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the optional configuration file.
const DefaultConfigFile = ".gitmoji-lint.yml"

// Config represents the configuration for commit message validation.
// All fields are optional; command-line flags take precedence.
type Config struct {
	// Emojis are additional emoji literals accepted next to the built-in
	// GitMoji catalog.
	Emojis  []string `yaml:"emojis,omitempty"`
	Strict  bool     `yaml:"strict,omitempty"`
	Verbose bool     `yaml:"verbose,omitempty"`
}

// LoadConfig loads and validates configuration from the specified directory.
// A missing config file is not an error and yields an empty configuration.
func LoadConfig(repoPath string) (*Config, error) {
	configPath := filepath.Join(repoPath, DefaultConfigFile)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	for i, emoji := range config.Emojis {
		if emoji == "" {
			return fmt.Errorf("emojis[%d]: entry must not be empty", i)
		}
	}

	return nil
}
