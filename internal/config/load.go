package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/modfuncs/internal/ctxlog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read as a setting.
	EnvPrefix = "MODFUNCS"
	// ConfigFileName is the config file base name searched for in the
	// working directory. Any extension viper understands is accepted.
	ConfigFileName = "modfuncs"
)

// Setting keys, shared by viper, the config file and flag names.
const (
	KeyEnvironment     = "environment"
	KeyEnvironmentPath = "environment_path"
	KeyBaseModulePath  = "base_module_path"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
)

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is read exclusively when set; it must exist.
	ConfigFile string
	// SearchPaths are searched for modfuncs.* when ConfigFile is empty.
	// Defaults to the working directory.
	SearchPaths []string
	// Flags, when set, override every other source for flags that were
	// given on the command line.
	Flags *pflag.FlagSet
}

// RegisterFlags adds the setting flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.StringP(flagName(KeyEnvironment), "e", def.Environment, "Environment to resolve modules in.")
	fs.String(flagName(KeyEnvironmentPath), def.EnvironmentPath, "Directory containing one directory per environment.")
	fs.StringSlice(flagName(KeyBaseModulePath), def.BaseModulePath, "Module directories shared by all environments.")
	fs.String(flagName(KeyLogLevel), def.LogLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.String(flagName(KeyLogFormat), def.LogFormat, "Log output format. Options: 'text' or 'json'.")
}

// Load merges defaults, the config file, environment variables and flags
// into validated Settings.
func Load(ctx context.Context, opts LoadOptions) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)

	v := viper.New()

	def := Default()
	v.SetDefault(KeyEnvironment, def.Environment)
	v.SetDefault(KeyEnvironmentPath, def.EnvironmentPath)
	v.SetDefault(KeyBaseModulePath, def.BaseModulePath)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		searchPaths := opts.SearchPaths
		if len(searchPaths) == 0 {
			searchPaths = []string{"."}
		}
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			logger.Debug("No config file found, using defaults.", "search_paths", searchPaths)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, key := range []string{KeyEnvironment, KeyEnvironmentPath, KeyBaseModulePath, KeyLogLevel, KeyLogFormat} {
			flag := opts.Flags.Lookup(flagName(key))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	settings.ConfigFile = v.ConfigFileUsed()
	settings.BaseModulePath = splitPathList(settings.BaseModulePath)

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Settings loaded.", "config_file", settings.ConfigFile, "environment", settings.Environment)
	return &settings, nil
}

// splitPathList expands entries written as an OS path list
// ("/a:/b" on Unix) and drops empty ones.
func splitPathList(entries []string) []string {
	var out []string
	for _, entry := range entries {
		for _, p := range filepath.SplitList(entry) {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
