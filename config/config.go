package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"notecal/grid"
	"notecal/render"
)

const (
	DefaultWeeksBefore = 3
	DefaultWeeksAfter  = 44
	DefaultPageSize    = "A4"
	DefaultTitle       = "Calendrier"
)

// Config is the window and page setup read from config.json or config.yaml.
type Config struct {
	WeeksBefore int    `json:"weeks_before" yaml:"weeks_before"`
	WeeksAfter  int    `json:"weeks_after" yaml:"weeks_after"`
	PageSize    string `json:"page_size,omitempty" yaml:"page_size,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
}

func Default() *Config {
	return &Config{
		WeeksBefore: DefaultWeeksBefore,
		WeeksAfter:  DefaultWeeksAfter,
		PageSize:    DefaultPageSize,
		Title:       DefaultTitle,
	}
}

func getConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "notecal"), nil
}

// DefaultPath is ~/.config/notecal/config.json.
func DefaultPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the config at path. A missing file yields the defaults. Files
// ending in .yaml or .yml are decoded as YAML, anything else as JSON.
func Load(path string) (*Config, error) {
	config := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(b, config)
	} else {
		err = json.Unmarshal(b, config)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse config %s: %v", grid.ErrInvalidArgument, path, err)
	}

	if config.PageSize == "" {
		config.PageSize = DefaultPageSize
	}
	if config.Title == "" {
		config.Title = DefaultTitle
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.WeeksBefore < 0 {
		return fmt.Errorf("%w: weeks_before must be non-negative, got %d", grid.ErrInvalidArgument, c.WeeksBefore)
	}
	if c.WeeksAfter < 0 {
		return fmt.Errorf("%w: weeks_after must be non-negative, got %d", grid.ErrInvalidArgument, c.WeeksAfter)
	}
	if c.WeeksBefore >= grid.MaxWeeks || c.WeeksAfter >= grid.MaxWeeks-c.WeeksBefore {
		return fmt.Errorf("%w: window must stay under %d weeks", grid.ErrInvalidArgument, grid.MaxWeeks)
	}
	if !render.ValidPageSize(c.PageSize) {
		return fmt.Errorf("%w: unsupported page_size %q", grid.ErrInvalidArgument, c.PageSize)
	}
	return nil
}

func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		if err := enc.Encode(config); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(config)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
