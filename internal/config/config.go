package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
)

const configFile = ".rwgui/config.json"

// Config holds the settings of the demo host and the widget defaults.
type Config struct {
	MaxVisibleItems     int      `json:"max_visible_items"`
	Padding             int      `json:"padding"`
	Margin              int      `json:"margin"`
	MessageDelaySeconds int      `json:"message_delay_seconds"`
	Database            string   `json:"database,omitempty"`
	Viewers             []string `json:"viewers,omitempty"`
	AssetsDir           string   `json:"assets_dir,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MaxVisibleItems:     gui.DefaultMaxVisible,
		Padding:             gui.DefaultPadding,
		Margin:              gui.Border,
		MessageDelaySeconds: 5,
		Viewers:             []string{"alice", "bob"},
	}
}

// MessageDelay returns the message box lifetime.
func (c *Config) MessageDelay() time.Duration {
	return time.Duration(c.MessageDelaySeconds) * time.Second
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	verr := &ValidationError{}
	if c.MaxVisibleItems < 2 {
		verr.Add(fmt.Errorf("max_visible_items must be at least 2, got %d", c.MaxVisibleItems))
	}
	if c.Padding < 0 {
		verr.Add(fmt.Errorf("padding must not be negative, got %d", c.Padding))
	}
	if c.Margin < 0 {
		verr.Add(fmt.Errorf("margin must not be negative, got %d", c.Margin))
	}
	if c.MessageDelaySeconds < 0 {
		verr.Add(fmt.Errorf("message_delay_seconds must not be negative, got %d", c.MessageDelaySeconds))
	}
	for _, v := range c.Viewers {
		if strings.TrimSpace(v) == "" {
			verr.Add(fmt.Errorf("viewer names must not be blank"))
			break
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// Load reads the config from disk. A missing file yields the defaults.
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	cfg := Default()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}

	return cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

var setters = map[string]func(c *Config, value string) error{
	"max_visible_items":     intSetter(func(c *Config) *int { return &c.MaxVisibleItems }),
	"padding":               intSetter(func(c *Config) *int { return &c.Padding }),
	"margin":                intSetter(func(c *Config) *int { return &c.Margin }),
	"message_delay_seconds": intSetter(func(c *Config) *int { return &c.MessageDelaySeconds }),
	"database": func(c *Config, value string) error {
		c.Database = value
		return nil
	},
	"assets_dir": func(c *Config, value string) error {
		c.AssetsDir = value
		return nil
	},
	"viewers": func(c *Config, value string) error {
		c.Viewers = nil
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				c.Viewers = append(c.Viewers, v)
			}
		}
		return nil
	},
}

func intSetter(field func(c *Config) *int) func(c *Config, value string) error {
	return func(c *Config, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("not a number: %q", value)
		}
		*field(c) = n
		return nil
	}
}

// Keys lists the settable keys in order.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set updates one key from its string form and validates the result.
func Set(baseDir, key, value string) (*Config, error) {
	set, ok := setters[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	cfg, err := Load(baseDir)
	if err != nil {
		return nil, err
	}
	if err := set(cfg, value); err != nil {
		return nil, fmt.Errorf("set %s: %w", key, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := Save(baseDir, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
