package options

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the defaults file looked up in the working directory.
const ConfigFileName = ".naming.yaml"

// Config carries per-project default option tags.
type Config struct {
	Filter []string `yaml:"filter"`
	Output []string `yaml:"output"`
}

// LoadFile loads and parses a YAML defaults file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadDefault loads ConfigFileName from the working directory. A missing file
// is not an error: the built-in defaults apply.
func LoadDefault() (*Config, error) {
	cfg, err := LoadFile(ConfigFileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}

		return nil, err
	}

	return cfg, nil
}

// Parse parses YAML data into a Config and fills unset fields with the
// built-in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse defaults YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Filter) == 0 {
		cfg.Filter = DefaultTags()
	}
	if len(cfg.Output) == 0 {
		cfg.Output = DefaultTags()
	}
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}
