package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	Calendar CalendarConfig `json:"calendar"`
	Levels   LevelConfig    `json:"levels"`
	Filters  FilterConfig   `json:"filters"`
	Render   RenderConfig   `json:"render"`
}

// CalendarConfig holds timezone and grid layout options.
type CalendarConfig struct {
	TimezoneOffsetMinutes int    `json:"timezoneOffsetMinutes"` // Fixed target offset, not DST-aware
	UseCommitOffset       bool   `json:"useCommitOffset"`       // Pick each commit's day in its author's own timezone
	WeekStartDay          string `json:"weekStartDay"`          // "sunday" .. "saturday"
	MinYear               int    `json:"minYear"`               // 0: now - 100
	MaxYear               int    `json:"maxYear"`               // 0: now + 100
	MaxCellCount          int    `json:"maxCellCount"`          // 0: builtin ceiling
}

// LevelConfig holds intensity bucketing options.
type LevelConfig struct {
	Count      int    `json:"count"`      // Total levels including level 0, >= 2
	Mode       string `json:"mode"`       // "fixed" or "quantile"
	Thresholds []int  `json:"thresholds"` // Fixed mode: exactly count-2 ascending values
}

// FilterConfig holds commit filtering options.
type FilterConfig struct {
	Include []string `json:"include"` // Path globs a commit must touch
	Exclude []string `json:"exclude"` // Path globs that never count
	Authors []string `json:"authors"` // Author name/email substrings
}

// RenderConfig holds presentation options.
type RenderConfig struct {
	// Glyphs maps levels to runes for the text renderer, lowest level
	// first. Longer than needed is fine; too short falls back to the
	// default ramp.
	Glyphs string `json:"glyphs"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			TimezoneOffsetMinutes: 0,
			WeekStartDay:          "sunday",
		},
		Levels: LevelConfig{
			Count: 5,
			Mode:  "quantile",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
			Authors: []string{},
		},
		Render: RenderConfig{
			Glyphs: "·░▒▓█",
		},
	}
}

// ParseWeekday converts a configured week start day name to a weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unknown week start day %q", name)
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".commitcal.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".commitcal.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".commitcal.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
