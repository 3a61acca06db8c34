package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"holdmenu/geometry"
	"holdmenu/gesture"
	"holdmenu/haptic"
	"holdmenu/holditem"
	"holdmenu/log"
	"os"
	"path/filepath"
	"time"
)

const ConfigFileName = "config.json"

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".holdmenu"), nil
}

// Config represents the application configuration
type Config struct {
	// ActivateOn is the gesture that opens a menu: "hold", "tap" or "double-tap".
	ActivateOn string `json:"activate_on"`
	// LongPressMinDurationMs is the hold threshold in milliseconds.
	LongPressMinDurationMs int `json:"long_press_min_duration_ms"`
	// HapticFeedback is the feedback severity on activation, "None" to disable.
	HapticFeedback string `json:"haptic_feedback"`
	// AnchorEdge lines the preview up with the item's "top" or "bottom" edge.
	AnchorEdge string `json:"anchor_edge"`
	// AnchorPosition pins the menu's transform origin to one corner. Empty
	// derives it from where the item sits on screen.
	AnchorPosition string `json:"anchor_position,omitempty"`
	// DisableMove keeps the preview in place instead of moving it on screen.
	DisableMove bool `json:"disable_move"`
	// CloseOnTap closes the menu when the preview is clicked.
	CloseOnTap bool `json:"close_on_tap"`
	// SafeAreaTop and SafeAreaBottom are rows the menu never covers, on top of
	// the title and help bars.
	SafeAreaTop    int `json:"safe_area_top"`
	SafeAreaBottom int `json:"safe_area_bottom"`
	// FramedPreview wraps the preview with a close control.
	FramedPreview bool `json:"framed_preview"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ActivateOn:             string(gesture.Hold),
		LongPressMinDurationMs: int(gesture.DefaultLongPressMinDuration / time.Millisecond),
		HapticFeedback:         string(haptic.DefaultMode),
		AnchorEdge:             string(geometry.EdgeTop),
		DisableMove:            false,
		CloseOnTap:             false,
		SafeAreaTop:            0,
		SafeAreaBottom:         0,
		FramedPreview:          false,
	}
}

// Validate reports every setting that cannot be honoured.
func (c *Config) Validate() error {
	var errs []error
	if _, err := gesture.ParseTrigger(c.ActivateOn); err != nil {
		errs = append(errs, err)
	}
	if c.LongPressMinDurationMs < 0 {
		errs = append(errs, fmt.Errorf("long_press_min_duration_ms must not be negative, got %d", c.LongPressMinDurationMs))
	}
	if _, err := haptic.ParseMode(c.HapticFeedback); err != nil {
		errs = append(errs, err)
	}
	if _, err := geometry.ParseEdge(c.AnchorEdge); err != nil {
		errs = append(errs, err)
	}
	if _, err := geometry.ParseAnchor(c.AnchorPosition); err != nil {
		errs = append(errs, err)
	}
	if c.SafeAreaTop < 0 || c.SafeAreaBottom < 0 {
		errs = append(errs, fmt.Errorf("safe area rows must not be negative"))
	}
	return errors.Join(errs...)
}

// ItemOptions converts the configuration into the options every held item of
// the demo starts from.
func (c *Config) ItemOptions() (holditem.Options, error) {
	trigger, err := gesture.ParseTrigger(c.ActivateOn)
	if err != nil {
		return holditem.Options{}, err
	}
	mode, err := haptic.ParseMode(c.HapticFeedback)
	if err != nil {
		return holditem.Options{}, err
	}
	edge, err := geometry.ParseEdge(c.AnchorEdge)
	if err != nil {
		return holditem.Options{}, err
	}
	anchor, err := geometry.ParseAnchor(c.AnchorPosition)
	if err != nil {
		return holditem.Options{}, err
	}
	return holditem.Options{
		ActivateOn:           trigger,
		Haptic:               mode,
		AnchorEdge:           edge,
		AnchorOverride:       anchor,
		DisableMove:          c.DisableMove,
		CloseOnTap:           c.CloseOnTap,
		LongPressMinDuration: time.Duration(c.LongPressMinDurationMs) * time.Millisecond,
	}, nil
}

// LoadConfig reads the config file. A missing file is created with the
// defaults; an unreadable or corrupt one falls back to the defaults.
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
		log.WarningLog.Printf("invalid config at %s, using defaults: %v", configPath, err)
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
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig validates and writes config to disk.
func SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}
	return saveConfig(config)
}
