package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the top-level configuration structure.
type Config struct {
	Workspace   string            `mapstructure:"workspace"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Instruments InstrumentsConfig `mapstructure:"instruments"`

	v *viper.Viper
}

// DatabaseConfig holds settings for the workspace database file.
type DatabaseConfig struct {
	File string `mapstructure:"file"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// InstrumentsConfig holds the location of the instrument definitions file.
type InstrumentsConfig struct {
	File string `mapstructure:"file"`
}

// DatabasePath resolves the database file against the workspace directory.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Database.File) {
		return c.Database.File
	}
	return filepath.Join(c.Workspace, c.Database.File)
}

// InstrumentsPath resolves the instruments file against the workspace directory.
func (c *Config) InstrumentsPath() string {
	if filepath.IsAbs(c.Instruments.File) {
		return c.Instruments.File
	}
	return filepath.Join(c.Workspace, c.Instruments.File)
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("workspace", ".")

	v.SetDefault("database.file", "uxmetrics.db")

	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)   // 10 MB
	v.SetDefault("logging.max_backups", 3) // Keep 3 backups
	v.SetDefault("logging.max_age", 7)     // 7 days
	v.SetDefault("logging.compress", true) // Compress old logs

	v.SetDefault("instruments.file", filepath.Join("config", "instruments.yaml"))
}

// Load initializes the configuration with Viper. The config file is
// optional; defaults and UXM_-prefixed environment variables apply either
// way. Call Watch to pick up file changes while the process runs.
func Load(workspace string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	if workspace != "" {
		v.Set("workspace", workspace)
	}

	v.AddConfigPath(filepath.Join(workspace, "config"))
	v.AddConfigPath(workspace)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("UXM") // e.g. UXM_DATABASE_FILE
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{v: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return cfg, nil
}

// Watch reloads the configuration whenever the file changes on disk.
// Watching starts separately from Load so reload events reach the real
// logger, which is itself built from the loaded configuration.
func (c *Config) Watch(log *zap.Logger) {
	c.v.WatchConfig()
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if err := c.v.Unmarshal(c); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
			return
		}
		log.Info("Configuration file changed, reloaded.", zap.String("file", e.Name))
	})
}
