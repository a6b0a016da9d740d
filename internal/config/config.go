package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaselineMatchScore is assigned when an event requires no skills
	DefaultBaselineMatchScore = 70

	// DefaultCompletionHours is logged on history entries when the config
	// neither sets completionDefaultHours nor derives hours from duration
	DefaultCompletionHours = 2.0

	// DefaultNotificationLinkBase prefixes the event link on notifications
	DefaultNotificationLinkBase = "/events"
)

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// BaselineMatchScore is the score given for events with no skill
	// requirements. Zero means use the default.
	BaselineMatchScore int `yaml:"baselineMatchScore,omitempty" validate:"min=0,max=100"`

	// CompletionDefaultHours is logged on each history entry created by
	// the completion sweep. Nil means use the default.
	CompletionDefaultHours *float64 `yaml:"completionDefaultHours,omitempty" validate:"omitempty,min=0"`

	// HoursFromEventDuration derives logged hours from the event's
	// start/end span instead of the fixed default
	HoursFromEventDuration bool `yaml:"hoursFromEventDuration,omitempty"`

	NotificationLinkBase string `yaml:"notificationLinkBase,omitempty"`

	// Gmail settings enable the email notification sink when set
	GmailSender string `yaml:"gmailSender,omitempty" validate:"omitempty,email"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from volunteer_hub_config.yaml
// It looks for the config file in the current directory first, then in the
// user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix.
// For example, env="test" looks for "volunteer_hub_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills the optional fields that were left unset
func (c *Config) ApplyDefaults() {
	if c.BaselineMatchScore == 0 {
		c.BaselineMatchScore = DefaultBaselineMatchScore
	}
	if c.CompletionDefaultHours == nil {
		hours := DefaultCompletionHours
		c.CompletionDefaultHours = &hours
	}
	if c.NotificationLinkBase == "" {
		c.NotificationLinkBase = DefaultNotificationLinkBase
	}
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// findConfigFile searches for the config file in current directory and home
// directory, applying the env suffix when provided
func findConfigFile(env string) (string, error) {
	configFileName := "volunteer_hub_config.yaml"
	if env != "" {
		configFileName = "volunteer_hub_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
