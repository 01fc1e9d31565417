// Package config loads murmur's settings. Values resolve in order of
// increasing precedence: built-in defaults, the YAML config file, MURMUR_*
// environment variables, then command-line overrides.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zhubert/murmur/internal/auth"
	"github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
)

const (
	envPrefix         = "MURMUR"
	defaultConfigName = "config.yaml"
)

// AdminConfig is the elevated account handed to the credential verifier.
type AdminConfig struct {
	Email        string `mapstructure:"email" yaml:"email"`
	Password     string `mapstructure:"password" yaml:"password,omitempty"`
	PasswordHash string `mapstructure:"password_hash" yaml:"password_hash,omitempty"`
	UserID       string `mapstructure:"user_id" yaml:"user_id"`
}

// Config holds the application configuration
type Config struct {
	Theme         string      `mapstructure:"theme" yaml:"theme"`
	Variant       string      `mapstructure:"variant" yaml:"variant"`
	Delivery      string      `mapstructure:"delivery" yaml:"delivery"`
	Notifications bool        `mapstructure:"notifications" yaml:"notifications"`
	TimeFormat    string      `mapstructure:"time_format" yaml:"time_format"` // Go time layout for message timestamps
	Seed          string      `mapstructure:"seed" yaml:"seed,omitempty"`     // Fixture file replacing the built-in dataset
	Admin         AdminConfig `mapstructure:"admin" yaml:"admin"`

	mu       sync.RWMutex
	filePath string
}

// Default returns configuration with starter defaults.
func Default() *Config {
	return &Config{
		Theme:         "dark-purple",
		Variant:       string(model.VariantAdmin),
		Delivery:      string(state.DeliveryDiscard),
		Notifications: true,
		TimeFormat:    "15:04",
		Admin: AdminConfig{
			Email:    "himo@admin.com",
			Password: "12345678",
			UserID:   "admin",
		},
	}
}

// DefaultPath returns ~/.murmur/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".murmur", defaultConfigName), nil
}

// Load builds configuration from defaults, the config file at path (or
// DefaultPath when empty) and the environment. A missing file is created
// with the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/.murmur", err)
		}
		path = p
	}
	log := logger.WithComponent("config")

	cfg := Default()
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, cfg)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.ConfigLoadFailed(path, err)
		}
		if writeErr := writeFile(path, cfg); writeErr != nil {
			log.Warn("failed to write default config", "path", path, "error", writeErr)
		} else {
			log.Info("created default config", "path", path)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	cfg.filePath = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug("config loaded", "path", path, "variant", cfg.Variant, "delivery", cfg.Delivery)
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("variant", cfg.Variant)
	v.SetDefault("delivery", cfg.Delivery)
	v.SetDefault("notifications", cfg.Notifications)
	v.SetDefault("time_format", cfg.TimeFormat)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("admin.email", cfg.Admin.Email)
	v.SetDefault("admin.password", cfg.Admin.Password)
	v.SetDefault("admin.password_hash", cfg.Admin.PasswordHash)
	v.SetDefault("admin.user_id", cfg.Admin.UserID)
}

// Validate rejects unknown variants and delivery modes.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := model.ParseVariant(c.Variant); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	if _, err := state.ParseDelivery(c.Delivery); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	if c.TimeFormat == "" {
		return errors.ConfigInvalid("time_format must not be empty")
	}
	if c.Admin.Email != "" && c.Admin.UserID == "" {
		return errors.ConfigInvalid("admin.user_id is required when admin.email is set")
	}
	return nil
}

// ApplyOverrides applies command-line values on top of everything else.
// Empty values leave the current setting alone.
func (c *Config) ApplyOverrides(variant, delivery string) error {
	c.mu.Lock()
	if variant != "" {
		c.Variant = variant
	}
	if delivery != "" {
		c.Delivery = delivery
	}
	c.mu.Unlock()
	return c.Validate()
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", stderrors.New("config has no file path"))
	}
	if err := writeFile(c.filePath, c); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

func writeFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetVariant returns the configured variant. Validate guarantees it parses.
func (c *Config) GetVariant() model.Variant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, err := model.ParseVariant(c.Variant)
	if err != nil {
		return model.VariantAdmin
	}
	return v
}

// GetDelivery returns the configured delivery mode.
func (c *Config) GetDelivery() state.Delivery {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, err := state.ParseDelivery(c.Delivery)
	if err != nil {
		return state.DeliveryDiscard
	}
	return d
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notifications = enabled
}

// GetTimeFormat returns the timestamp layout for messages.
func (c *Config) GetTimeFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.TimeFormat
}

// GetSeedPath returns the fixture override, or "" for the built-in dataset.
func (c *Config) GetSeedPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Seed
}

// AdminCredentials returns the verifier configuration.
func (c *Config) AdminCredentials() auth.AdminCredentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return auth.AdminCredentials{
		Email:        c.Admin.Email,
		Password:     c.Admin.Password,
		PasswordHash: c.Admin.PasswordHash,
		UserID:       c.Admin.UserID,
	}
}
