package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haytac/pidgin-slack-theme/internal/logging"
	"github.com/spf13/viper"
)

// HeaderConfig holds the fixed fields written at the top of every theme file.
type HeaderConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Icon        string `mapstructure:"icon"`
	Author      string `mapstructure:"author"`
}

// AppConfig holds the application configuration.
type AppConfig struct {
	InputPath     string         `mapstructure:"input_path"`
	OutputPattern string         `mapstructure:"output_pattern"` // {size} is substituted
	Sizes         []string       `mapstructure:"sizes"`
	Theme         HeaderConfig   `mapstructure:"theme"`
	Log           logging.Config `mapstructure:"log"`
	MetricsFile   string         `mapstructure:"metrics_file"` // Prometheus textfile, empty disables
	DryRun        bool           // Not from config file, set by flag
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches the default locations and tolerates a missing file.
func LoadConfig(configPath string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("input_path", "emoji_pretty.json")
	v.SetDefault("output_pattern", "slack-{size}/theme")
	v.SetDefault("sizes", []string{"medium", "large"})
	v.SetDefault("theme.name", "Slack")
	v.SetDefault("theme.description", "Slack Emojis ported to pidgin")
	v.SetDefault("theme.icon", "1F600.png")
	v.SetDefault("theme.author", "Slack")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
	v.SetDefault("log.time_format", "15:04:05")
	v.SetDefault("metrics_file", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".pidgin-slack-theme")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pidgin-slack-theme")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("SLACK_THEME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the build cannot run without.
func (c *AppConfig) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input_path is not configured")
	}
	if !strings.Contains(c.OutputPattern, "{size}") {
		return fmt.Errorf("output_pattern %q must contain {size}", c.OutputPattern)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes must name at least one variant")
	}
	return nil
}
