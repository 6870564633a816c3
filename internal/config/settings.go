package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("invalid settings")

const (
	DefaultEnvironment     = "production"
	DefaultEnvironmentPath = "/etc/puppetlabs/code/environments"
	DefaultBaseModulePath  = "/etc/puppetlabs/code/modules"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Settings holds everything the host needs to resolve module paths.
type Settings struct {
	Environment     string   `mapstructure:"environment" toml:"environment"`
	EnvironmentPath string   `mapstructure:"environment_path" toml:"environment_path"`
	BaseModulePath  []string `mapstructure:"base_module_path" toml:"base_module_path"`
	LogLevel        string   `mapstructure:"log_level" toml:"log_level"`
	LogFormat       string   `mapstructure:"log_format" toml:"log_format"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-" toml:"-"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Settings {
	return &Settings{
		Environment:     DefaultEnvironment,
		EnvironmentPath: DefaultEnvironmentPath,
		BaseModulePath:  []string{DefaultBaseModulePath},
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
	}
}

// Validate checks the settings and normalises case on the enumerated fields.
func (s *Settings) Validate() error {
	if s.Environment == "" {
		return fmt.Errorf("%w: environment is a required setting and cannot be empty", ErrInvalidSettings)
	}

	s.LogLevel = strings.ToLower(s.LogLevel)
	if !slices.Contains(logLevels, s.LogLevel) {
		return fmt.Errorf("%w: invalid log-level %q: must be one of %s", ErrInvalidSettings, s.LogLevel, strings.Join(logLevels, ", "))
	}

	s.LogFormat = strings.ToLower(s.LogFormat)
	if !slices.Contains(logFormats, s.LogFormat) {
		return fmt.Errorf("%w: invalid log-format %q: must be one of %s", ErrInvalidSettings, s.LogFormat, strings.Join(logFormats, ", "))
	}
	return nil
}

// TOML renders the settings as a TOML document.
func (s *Settings) TOML() ([]byte, error) {
	return toml.Marshal(s)
}
