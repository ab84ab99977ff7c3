// Package config loads CLI settings from a config file, environment
// variables, and defaults, in that precedence order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".cricstats"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for cricstats settings.
const envPrefix = "CRICSTATS"

// Default setting values.
const (
	DefaultDBPath      = "cricstats.db"
	DefaultDatasetPath = "deliveries.csv"
	DefaultChartPath   = "chart.html"
)

// Config holds every tunable setting.
type Config struct {
	// DBPath is where the imported dataset lives.
	DBPath string `mapstructure:"db_path"`
	// DatasetPath is the default CSV read by the import command.
	DatasetPath string `mapstructure:"dataset_path"`
	// ChartPath is where the chart command writes its HTML output.
	ChartPath string `mapstructure:"chart_path"`
}

// Validate rejects settings no command could work with.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	return nil
}

// Load reads configuration from file, env vars, and defaults. If configPath
// is non-empty it is used as the explicit config file path; otherwise the
// config file is searched in CWD and $HOME. A missing config file is not an
// error; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("dataset_path", DefaultDatasetPath)
	v.SetDefault("chart_path", DefaultChartPath)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
