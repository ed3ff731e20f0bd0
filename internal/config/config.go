// Package config loads the deck tool's own settings from config.toml.
package config

import "github.com/conn-castle/deck-builder/internal/brand"

// Config is the tool-level configuration. Profile configs override parts of it per deck.
type Config struct {
	ProfilesDir     string         `toml:"profiles_dir"`
	DefaultTemplate string         `toml:"default_template"`
	LayoutIndices   map[string]int `toml:"layout_indices"`
	Theme           ThemeConfig    `toml:"theme"`
	Logging         LoggingConfig  `toml:"logging"`
	Warnings        WarningsConfig `toml:"warnings"`
}

// ThemeConfig customizes the rendering theme.
type ThemeConfig struct {
	BrandName string `toml:"brand_name,omitempty" yaml:"brand_name,omitempty"`
	Font      string `toml:"font,omitempty" yaml:"font,omitempty"`
	// Colors maps palette keys (accent, available, ...) to hex values.
	Colors map[string]string `toml:"colors,omitempty" yaml:"colors,omitempty"`
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	Level string `toml:"level"`
	// Format is "console" or "json".
	Format string `toml:"format"`
}

// WarningsConfig controls how build warnings reach the terminal.
type WarningsConfig struct {
	NoiseMode string `toml:"noise_mode"`
}

// IsZero reports whether no theme setting is present.
func (t ThemeConfig) IsZero() bool {
	return t.BrandName == "" && t.Font == "" && len(t.Colors) == 0
}

// Apply returns base customized with the theme settings.
func (t ThemeConfig) Apply(base brand.Theme) (brand.Theme, error) {
	return base.Customize(t.BrandName, t.Font, t.Colors)
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		ProfilesDir: DefaultProfilesDir,
		Logging:     LoggingConfig{Level: "info", Format: "console"},
		Warnings:    WarningsConfig{NoiseMode: "default"},
	}
}

// MergeLayoutIndices overlays profile-level indices on the tool-level ones.
// Neither input is modified.
func MergeLayoutIndices(global, profile map[string]int) map[string]int {
	out := make(map[string]int, len(global)+len(profile))
	for k, v := range global {
		out[k] = v
	}
	for k, v := range profile {
		out[k] = v
	}
	return out
}
