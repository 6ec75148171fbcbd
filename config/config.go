package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"switcherpanel/log"
	"switcherpanel/panel"
)

const (
	ConfigFileName = "config.json"
	// ConfigDirEnv overrides the config directory.
	ConfigDirEnv = "SWITCHERPANEL_CONFIG_DIR"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".switcherpanel"), nil
}

// Config represents the application configuration. Sizes are terminal rows.
type Config struct {
	// SwitcherHeight is the height of the switcher strip.
	SwitcherHeight int `json:"switcher_height"`
	// CoverHeight is how much of the content stays visible when collapsed.
	CoverHeight int `json:"cover_height"`
	// ParallaxOffset is how far the switcher moves up when expanded.
	ParallaxOffset int `json:"parallax_offset"`
	// MinFlingVelocity is the release speed, in rows per second, that counts as a fling.
	MinFlingVelocity float64 `json:"min_fling_velocity"`
	// ShadowHeight is the number of shadow rows above the content.
	ShadowHeight int `json:"shadow_height"`
	// TouchSlop is how many rows the mouse moves before a press becomes a drag.
	TouchSlop int `json:"touch_slop"`
	// InitialStatus is "expanded" or "collapsed".
	InitialStatus string `json:"initial_status"`
	// TapToExpand expands a collapsed panel when its content is clicked.
	TapToExpand bool `json:"tap_to_expand"`
	// ElasticOverdrag lets a drag from collapsed stretch the switcher.
	ElasticOverdrag bool `json:"elastic_overdrag"`
	// FrameIntervalMs is the animation frame interval.
	FrameIntervalMs int `json:"frame_interval_ms"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SwitcherHeight:   3,
		CoverHeight:      3,
		ParallaxOffset:   1,
		MinFlingVelocity: 20,
		ShadowHeight:     1,
		TouchSlop:        0,
		InitialStatus:    panel.StatusExpanded.String(),
		TapToExpand:      true,
		ElasticOverdrag:  true,
		FrameIntervalMs:  16,
	}
}

// FrameInterval returns the frame interval as a duration.
func (c *Config) FrameInterval() time.Duration {
	if c.FrameIntervalMs <= 0 {
		return panel.DefaultFrameInterval
	}
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// PanelOptions converts the config into engine options.
func (c *Config) PanelOptions() panel.Options {
	status, ok := panel.ParseStatus(c.InitialStatus)
	if !ok {
		log.WarningLog.Printf("unknown initial_status %q, using %s", c.InitialStatus, status)
	}
	return panel.Options{
		CoverHeight:      c.CoverHeight,
		ParallaxOffset:   c.ParallaxOffset,
		MinFlingVelocity: c.MinFlingVelocity,
		ShadowHeight:     c.ShadowHeight,
		TouchSlop:        c.TouchSlop,
		InitialStatus:    status,
		TapToExpand:      c.TapToExpand,
		ElasticOverdrag:  c.ElasticOverdrag,
		FrameInterval:    c.FrameInterval(),
	}
}

// Validate reports settings the panel cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.SwitcherHeight < 1:
		return fmt.Errorf("switcher_height must be at least 1, got %d", c.SwitcherHeight)
	case c.CoverHeight < 0:
		return fmt.Errorf("cover_height must not be negative, got %d", c.CoverHeight)
	case c.ParallaxOffset < 0:
		return fmt.Errorf("parallax_offset must not be negative, got %d", c.ParallaxOffset)
	case c.MinFlingVelocity < 0:
		return fmt.Errorf("min_fling_velocity must not be negative, got %v", c.MinFlingVelocity)
	}
	if _, ok := panel.ParseStatus(c.InitialStatus); !ok {
		return fmt.Errorf("initial_status must be expanded or collapsed, got %q", c.InitialStatus)
	}
	return nil
}

// LoadConfig reads the config file, creating it with defaults when missing.
// Any problem falls back to the defaults.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Fields missing from the file keep their defaults.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		log.ErrorLog.Printf("invalid config at %s: %v", configPath, err)
		return DefaultConfig()
	}

	return config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	lock := NewFileLock(configPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
