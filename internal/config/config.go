// Package config loads optional user defaults from a TOML file in the
// XDG config directory. Everything in the file can also be given on the
// command line; flags always win.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// appDirName is the directory under $XDG_CONFIG_HOME holding the file.
const appDirName = "zpgen"

// fileName is the defaults file name.
const fileName = "config.toml"

// Config represents the user defaults file.
type Config struct {
	// Defaults holds fallback values for init command options.
	Defaults DefaultsConfig `toml:"defaults"`
	// Output holds display preferences.
	Output OutputConfig `toml:"output"`
}

// DefaultsConfig holds fallback values for init command options.
type DefaultsConfig struct {
	// GithubUser is the GitHub account substituted into the README when
	// --github-user is not given. Falls back to $USER when empty.
	GithubUser string `toml:"github_user"`
	// Description is the plugin description used when --description is
	// not given.
	Description string `toml:"description"`
	// Template is the preset applied when --template is not given.
	// One of minimal, simple, or complete; empty means complete.
	Template string `toml:"template"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// NoColor disables styled terminal output.
	NoColor bool `toml:"no_color"`
	// Quiet suppresses non-error output.
	Quiet bool `toml:"quiet"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{}
}

// DefaultPath returns the standard location of the defaults file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, fileName)
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newConfigError(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, newConfigError(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, newConfigError(ConfigInvalid, path, "invalid TOML syntax", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads the configuration from path, or from DefaultPath
// when path is empty, and returns defaults when no file exists.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg, err := Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func Validate(cfg *Config) error {
	switch cfg.Defaults.Template {
	case "", "minimal", "simple", "complete":
		return nil
	default:
		return newConfigErrorWithField(ConfigValidationFailed, "", "defaults.template",
			"must be one of minimal, simple, or complete")
	}
}
