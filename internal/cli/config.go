package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir  = "data_dir"
	cfgKeyOutput   = "output"
	cfgKeyLogLevel = "log_level"

	defaultOutput   = outputText
	defaultLogLevel = "warn"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# enumstatus configuration

# Output format for list, lookup, post and log: text, json or yaml.
output: text

# Log level: debug, info, warn or error.
log_level: warn

# Data directory (optional; overridable by --data-dir).
# data_dir:
`

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run. A missing config.yaml is not an error. The
// --output flag, when set, overrides the file.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.BindEnv(cfgKeyOutput, "ENUMSTATUS_OUTPUT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv(cfgKeyLogLevel, "ENUMSTATUS_LOG_LEVEL"); err != nil {
		return nil, err
	}
	if flags != nil {
		if f := flags.Lookup("output"); f != nil {
			if err := v.BindPFlag(cfgKeyOutput, f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates config.yaml if it does not exist.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// parseLogLevel maps a config value to a slog level. Unknown values fall
// back to warn.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
