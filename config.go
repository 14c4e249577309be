package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config describes how NewWithConfig assembles a logger. Start from
// DefaultConfig or LoadConfig rather than a zero value.
type Config struct {
	// Level is the minimum severity for the bundled sinks: "debug",
	// "info", "warning" (or "warn") or "error".
	Level string `mapstructure:"level" validate:"required"`
	// DefaultCategory replaces the built-in General default when set.
	DefaultCategory string `mapstructure:"default_category"`

	// WorkingDir anchors relative file paths. Empty means the process
	// working directory.
	WorkingDir string `mapstructure:"working_dir"`

	ConsoleLogging    bool   `mapstructure:"console_logging"`
	ConsoleNoColor    bool   `mapstructure:"console_no_color"`
	ConsoleTimeFormat string `mapstructure:"console_time_format"`

	FileLogging bool `mapstructure:"file_logging"`
	// LogFileDir is the log directory relative to WorkingDir. Absolute
	// paths are rejected so logs stay inside the application root.
	LogFileDir string `mapstructure:"log_file_dir"`
	// LogFileName overrides the executable-derived file name.
	LogFileName       string `mapstructure:"log_file_name"`
	LogFileMaxSizeMB  int    `mapstructure:"log_file_max_size_mb" validate:"gte=0"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int    `mapstructure:"log_file_max_age_days" validate:"gte=0"`
	LogFileCompress   bool   `mapstructure:"log_file_compress"`

	// ShutdownTimeoutMS bounds how long Close waits for in-flight
	// dispatches. Zero waits indefinitely.
	ShutdownTimeoutMS      int  `mapstructure:"shutdown_timeout_ms" validate:"gte=0"`
	ShutdownTimeoutWarning bool `mapstructure:"shutdown_timeout_warning"`
}

// DefaultConfig returns a console-only configuration at info level.
func DefaultConfig() Config {
	return Config{
		Level:                  SeverityInfo.String(),
		DefaultCategory:        string(CategoryGeneral),
		ConsoleLogging:         true,
		LogFileDir:             "logs",
		LogFileMaxSizeMB:       10,
		LogFileMaxBackups:      3,
		LogFileMaxAgeDays:      7,
		ShutdownTimeoutMS:      1000,
		ShutdownTimeoutWarning: true,
	}
}

// LoadConfig reads the configuration file at path with viper, layering file
// values over DefaultConfig and CARDINAL_LOG_* environment variables over
// both. The format is inferred from the file extension; JSON, YAML and TOML
// all work. The result is validated before being returned.
func LoadConfig(path string) (Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Register every key so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("level", defaults.Level)
	v.SetDefault("default_category", defaults.DefaultCategory)
	v.SetDefault("working_dir", defaults.WorkingDir)
	v.SetDefault("console_logging", defaults.ConsoleLogging)
	v.SetDefault("console_no_color", defaults.ConsoleNoColor)
	v.SetDefault("console_time_format", defaults.ConsoleTimeFormat)
	v.SetDefault("file_logging", defaults.FileLogging)
	v.SetDefault("log_file_dir", defaults.LogFileDir)
	v.SetDefault("log_file_name", defaults.LogFileName)
	v.SetDefault("log_file_max_size_mb", defaults.LogFileMaxSizeMB)
	v.SetDefault("log_file_max_backups", defaults.LogFileMaxBackups)
	v.SetDefault("log_file_max_age_days", defaults.LogFileMaxAgeDays)
	v.SetDefault("log_file_compress", defaults.LogFileCompress)
	v.SetDefault("shutdown_timeout_ms", defaults.ShutdownTimeoutMS)
	v.SetDefault("shutdown_timeout_warning", defaults.ShutdownTimeoutWarning)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read logging config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal logging config")
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// logFilePath resolves the rolling log file location: WorkingDir joined
// with LogFileDir and either LogFileName or the executable name with a
// ".log" extension.
func (c Config) logFilePath() string {
	name := c.LogFileName
	if name == emptyString {
		name = execName() + ".log"
	}
	return filepath.Join(c.WorkingDir, c.LogFileDir, name)
}

// execName returns the current executable's base name without extension,
// falling back to "app" when it cannot be resolved.
func execName() string {
	exe, err := os.Executable()
	if err != nil {
		return fallbackFileName
	}
	name := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	if name == emptyString || name == "." {
		return fallbackFileName
	}
	return name
}
