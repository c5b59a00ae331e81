package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds the optional per-project settings read from
// pbidoc.yaml. All fields have working defaults; an absent config file
// is not an error at the CLI level.
type ProjectConfig struct {
	// Output is the documentation filename to write, relative to the
	// working directory unless absolute.
	Output string `yaml:"output,omitempty"`

	// Verbose enables verbose logging by default for this project.
	Verbose bool `yaml:"verbose,omitempty"`
}

const ConfigFileName = "pbidoc.yaml"

// Load reads ConfigFileName from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pbidoc.ErrInvalidConfig, configPath, err)
	}
	if cfg.Output == "" {
		cfg.Output = pbidoc.DefaultOutputFileName
	}
	return &cfg, nil
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Output: pbidoc.DefaultOutputFileName,
	}
}
