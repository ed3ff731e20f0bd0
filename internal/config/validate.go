package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/conn-castle/deck-builder/internal/brand"
	"github.com/conn-castle/deck-builder/internal/layout"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Validate ensures the config is consistent. Empty enum values mean the default.
func (c *Config) Validate(path string) error {
	if level := strings.ToLower(strings.TrimSpace(c.Logging.Level)); level != "" && !allows("logging.level", level) {
		return fmt.Errorf(messages.ConfigLoggingLevelInvalidFmt, path, c.Logging.Level)
	}
	if format := strings.ToLower(strings.TrimSpace(c.Logging.Format)); format != "" && !allows("logging.format", format) {
		return fmt.Errorf(messages.ConfigLoggingFormatInvalidFmt, path, c.Logging.Format)
	}
	if mode := strings.ToLower(strings.TrimSpace(c.Warnings.NoiseMode)); mode != "" && !allows("warnings.noise_mode", mode) {
		return fmt.Errorf(messages.ConfigWarningNoiseModeInvalidFmt, path, c.Warnings.NoiseMode)
	}
	if err := ValidateLayoutIndices(path, c.LayoutIndices); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return fmt.Errorf(messages.ConfigThemeInvalidFmt, path, err)
	}
	return nil
}

// ValidateTheme reports unknown color keys and malformed colors.
func ValidateTheme(t ThemeConfig) error {
	_, err := t.Apply(brand.Default())
	return err
}

// ValidateLayoutIndices rejects unknown roles and negative indices.
// Out-of-range indices are only known against a template and stay warnings.
func ValidateLayoutIndices(path string, indices map[string]int) error {
	valid := map[string]bool{}
	for _, r := range layout.Roles() {
		valid[string(r)] = true
	}
	keys := make([]string, 0, len(indices))
	for k := range indices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !valid[k] {
			return fmt.Errorf(messages.ConfigLayoutRoleInvalidFmt, path, k)
		}
		if indices[k] < 0 {
			return fmt.Errorf(messages.ConfigLayoutIndexNegativeFmt, path, k, indices[k])
		}
	}
	return nil
}
