package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/deck-builder/internal/messages"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "DECK_CONFIG"

// DefaultProfilesDir is where profiles live unless profiles_dir says otherwise.
const DefaultProfilesDir = "~/.deck-builder/profiles"

const defaultConfigPath = "~/.deck-builder/config.toml"

// Paths holds resolved locations for the config file and profiles.
type Paths struct {
	ConfigPath  string
	ProfilesDir string
}

// getenv is a test seam.
var getenv = os.Getenv

// ConfigPath picks the config file: the flag value, then $DECK_CONFIG, then the default.
func ConfigPath(flag string) (string, error) {
	candidate := flag
	if candidate == "" {
		candidate = getenv(EnvConfigPath)
	}
	if candidate == "" {
		candidate = defaultConfigPath
	}
	return Expand(candidate)
}

// Expand resolves a leading "~" and makes the path absolute.
func Expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFailedFmt, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFailedFmt, path, err)
	}
	return abs, nil
}

// ResolvePaths resolves the profiles directory named by cfg. A relative
// profiles_dir is taken relative to the config file's directory.
func ResolvePaths(configPath string, cfg *Config) (Paths, error) {
	dir := cfg.ProfilesDir
	if dir == "" {
		dir = DefaultProfilesDir
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigExpandPathFailedFmt, dir, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(filepath.Dir(configPath), expanded)
	}
	return Paths{ConfigPath: configPath, ProfilesDir: filepath.Clean(expanded)}, nil
}
