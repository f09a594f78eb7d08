// Package config provides configuration management for the fieldcalc CLI
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Davincible/fieldcalc/pkg/galois"
	"sigs.k8s.io/yaml"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	Limits   LimitSettings   `json:"limits"`
	UI       UIConfig        `json:"ui"`
	Export   ExportConfig    `json:"export"`
}

// DefaultSettings holds the field used when flags are not given
type DefaultSettings struct {
	Prime   int    `json:"prime"`   // Default: 2
	Degree  int    `json:"degree"`  // Default: 2
	Modulus string `json:"modulus"` // Default: 1+x+x^2
}

// LimitSettings bounds the work a single initialization may do
type LimitSettings struct {
	MaxOrder int `json:"max_order"` // Largest p^m accepted
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
}

// ExportConfig contains table export settings
type ExportConfig struct {
	DefaultFormat string `json:"default_format"` // json, yaml, csv, html
	Directory     string `json:"directory"`      // Where relative output paths land
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager loads the configuration at path, or at the default
// location when path is empty. A missing file yields DefaultConfig.
func NewConfigManager(path string) (*ConfigManager, error) {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cm := &ConfigManager{configPath: path}
	if err := cm.LoadConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cm.config = DefaultConfig()
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Prime:   2,
			Degree:  2,
			Modulus: "1+x+x^2",
		},
		Limits: LimitSettings{
			MaxOrder: galois.DefaultMaxOrder,
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
		},
		Export: ExportConfig{
			DefaultFormat: "json",
			Directory:     "",
		},
	}
}

// LoadConfig loads the configuration from disk. Both YAML and JSON files are
// accepted; fields missing from the file keep their default values.
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cm.configPath, err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk as YAML
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cm.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the file the manager reads and writes
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

// Validate checks values that cannot be corrected by defaults
func (c *Config) Validate() error {
	if c.Limits.MaxOrder < 2 {
		return fmt.Errorf("limits.max_order must be at least 2, got %d", c.Limits.MaxOrder)
	}
	switch c.Export.DefaultFormat {
	case "json", "yaml", "csv", "html":
	default:
		return fmt.Errorf("unsupported export format '%s'", c.Export.DefaultFormat)
	}
	switch c.UI.Verbosity {
	case "quiet", "normal", "verbose":
	default:
		return fmt.Errorf("unsupported verbosity '%s'", c.UI.Verbosity)
	}
	return nil
}

// FieldOptions returns the galois options implied by the configuration
func (c *Config) FieldOptions() []galois.Option {
	return []galois.Option{galois.WithMaxOrder(c.Limits.MaxOrder)}
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("FIELDCALC_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "fieldcalc", "config.yaml"), nil
	}

	// Default to ~/.config/fieldcalc/config.yaml
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "fieldcalc", "config.yaml"), nil
}
