package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"orthoslide/carousel"
	"orthoslide/log"
	"orthoslide/page"
	"orthoslide/schedule"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".orthoslide"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// CarouselConfig configures one carousel on the page.
type CarouselConfig struct {
	// Selector names the page section the carousel mounts on.
	Selector string `json:"selector"`
	// Policy is "wrap" or "clamp".
	Policy carousel.BoundaryPolicy `json:"policy"`
	// AutoAdvanceMs is the self-advance cadence in milliseconds. 0 disables it.
	AutoAdvanceMs int `json:"auto_advance_ms"`
	// Gap is the spacing between slides in pixels.
	Gap int `json:"gap"`
	// Breakpoints sizes the visible window from the viewport width.
	// Ignored when Single is set.
	Breakpoints carousel.Breakpoints `json:"breakpoints"`
	// Single shows exactly one slide at every width.
	Single bool `json:"single"`
}

// Options converts the config to engine options. The caller supplies the
// clock and change callback.
func (c CarouselConfig) Options(clock schedule.Clock, onChange func(carousel.Frame)) carousel.Options {
	opts := carousel.Options{
		Policy:      c.Policy,
		AutoAdvance: time.Duration(c.AutoAdvanceMs) * time.Millisecond,
		Gap:         c.Gap,
		Clock:       clock,
		OnChange:    onChange,
	}
	if c.Single || len(c.Breakpoints.Rows) == 0 && c.Breakpoints.Fallback <= 1 {
		opts.VisibleCount = carousel.Single
	} else {
		opts.VisibleCount = c.Breakpoints.Count
	}
	return opts
}

// Config represents the application configuration
type Config struct {
	// ContentPath is an optional YAML page content file. Empty uses the
	// built-in home page.
	ContentPath string `json:"content_path"`
	// ResizeDebounceMs is the trailing-edge window for viewport resizes.
	ResizeDebounceMs int `json:"resize_debounce_ms"`
	// LoaderDelayMs is how long the page loader stays up after start.
	LoaderDelayMs int `json:"loader_delay_ms"`
	// Focus is the selector focused at start. Empty focuses the first
	// mounted carousel.
	Focus string `json:"focus,omitempty"`
	// CellWidthPx converts terminal columns to viewport pixels.
	CellWidthPx int `json:"cell_width_px"`
	// Carousels lists the carousels to mount, in page order.
	Carousels []CarouselConfig `json:"carousels"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ResizeDebounceMs: 200,
		LoaderDelayMs:    500,
		CellWidthPx:      8,
		Carousels: []CarouselConfig{
			{
				Selector:      page.HeroSelector,
				Policy:        carousel.Wrap,
				AutoAdvanceMs: 5000,
				Single:        true,
			},
			{
				Selector:    page.ClinicSelector,
				Policy:      carousel.Clamp,
				Gap:         10,
				Breakpoints: carousel.DefaultBreakpoints,
			},
			{
				Selector:      page.TestimonialsSelector,
				Policy:        carousel.Wrap,
				AutoAdvanceMs: 5000,
				Gap:           20,
				Breakpoints:   carousel.DefaultBreakpoints,
			},
			{
				Selector:      page.VerticalSelector,
				Policy:        carousel.Wrap,
				AutoAdvanceMs: 4000,
				Single:        true,
			},
		},
	}
}

// ResizeDebounce returns the resize window as a duration.
func (c *Config) ResizeDebounce() time.Duration {
	return time.Duration(c.ResizeDebounceMs) * time.Millisecond
}

// LoaderDelay returns the page loader delay as a duration.
func (c *Config) LoaderDelay() time.Duration {
	return time.Duration(c.LoaderDelayMs) * time.Millisecond
}

// Carousel returns the config for selector.
func (c *Config) Carousel(selector string) (CarouselConfig, bool) {
	for _, cc := range c.Carousels {
		if cc.Selector == selector {
			return cc, true
		}
	}
	return CarouselConfig{}, false
}

// LoadPage returns the page described by ContentPath, or the built-in page
// when no content file is configured.
func (c *Config) LoadPage() (*page.Page, error) {
	if c.ContentPath == "" {
		return page.Default(), nil
	}
	return page.Load(c.ContentPath)
}

// normalize fills zero values a hand-edited file may leave behind.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.ResizeDebounceMs <= 0 {
		c.ResizeDebounceMs = def.ResizeDebounceMs
	}
	if c.LoaderDelayMs < 0 {
		c.LoaderDelayMs = 0
	}
	if c.CellWidthPx <= 0 {
		c.CellWidthPx = def.CellWidthPx
	}
	if c.Carousels == nil {
		c.Carousels = def.Carousels
	}
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}
	return loadConfigFrom(configDir)
}

func loadConfigFrom(configDir string) *Config {
	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfigTo(configDir, defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	config.normalize()
	return &config
}

func saveConfigTo(configDir string, config *Config) error {
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

// SaveConfig writes the configuration to the config directory.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return saveConfigTo(configDir, config)
}
