package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds the optional per-repository settings read from
// .samt.yaml. Command line flags and environment variables override
// anything set here.
type ProjectConfig struct {
	// Path is the addon directory to sync, relative paths resolve
	// against the directory holding the config file.
	Path string `yaml:"path,omitempty"`

	// Direction is the default sync direction: both, xml-to-po or
	// po-to-xml.
	Direction string `yaml:"direction,omitempty"`

	// Multi treats every immediate subdirectory of Path as an addon.
	Multi bool `yaml:"multi,omitempty"`

	// Verbose enables detailed logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

const ConfigFileName = ".samt.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
